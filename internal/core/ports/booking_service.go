package ports

import (
	"context"
	"time"
)

// CreateBookingInput carries all data needed to create a new booking.
// UserID comes from the authenticated caller, never from the payload.
type CreateBookingInput struct {
	SpaceID   string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Guests    int
}

// UpdateBookingInput carries a change to a pending booking's date range or
// guest count. The same constraints as creation apply.
type UpdateBookingInput struct {
	BookingID string
	Actor     Actor
	StartDate time.Time
	EndDate   time.Time
	Guests    int
}

// Actor identifies the authenticated caller for ownership checks.
type Actor struct {
	UserID string
	Role   string
}

// BookingResult is the booking view returned by the service.
type BookingResult struct {
	ID          string
	SpaceID     string
	UserID      string
	StartDate   time.Time
	EndDate     time.Time
	Guests      int
	TotalPrice  float64
	Status      string
	CreatedAt   time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time
}

// InvoiceResult is the simulated payment confirmation returned by Pay.
type InvoiceResult struct {
	InvoiceID string
	BookingID string
	Amount    float64
	Status    string
	IssuedAt  time.Time
}

// ListBookingsInput carries all parameters for the list endpoint.
type ListBookingsInput struct {
	Actor   Actor
	SpaceID string
	Status  string
	Page    int
	Limit   int
}

// ListBookingsResult is returned by List.
type ListBookingsResult struct {
	Items      []BookingResult
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BookingService defines the booking lifecycle use cases.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*BookingResult, error)
	Get(ctx context.Context, bookingID string, actor Actor) (*BookingResult, error)
	List(ctx context.Context, input ListBookingsInput) (*ListBookingsResult, error)
	Update(ctx context.Context, input UpdateBookingInput) (*BookingResult, error)
	// Pay transitions a pending booking to confirmed and returns the
	// simulated invoice. A booking can be paid at most once.
	Pay(ctx context.Context, bookingID string, actor Actor) (*InvoiceResult, error)
	// Cancel transitions a pending booking to cancelled.
	Cancel(ctx context.Context, bookingID string, actor Actor) (*BookingResult, error)
}
