package ports

import (
	"context"
	"time"

	"github.com/spaceshare/rental-api/internal/core/domain"
)

// ListBookingsFilter carries the query parameters for listing bookings.
// UserID is enforced by the service layer for non-admin callers.
type ListBookingsFilter struct {
	UserID  string // empty = no filter (admin); non-empty = scoped to user
	SpaceID string // optional
	Status  string // optional: filter by booking status
	Page    int    // 1-based
	Limit   int    // max rows per page (capped at 100 by the service)
}

// BookingRepository defines persistence operations for bookings.
// The two conditional updates are the atomic compare-and-set primitives the
// lifecycle relies on: each matches only while status is still pending, so
// two racing writers cannot both succeed.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// List returns a page of bookings matching filter and the total count.
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, int64, error)

	// UpdateStatusIfPending sets status to next only if the current status is
	// pending. Returns false when no pending booking with that id matched.
	UpdateStatusIfPending(ctx context.Context, id string, next domain.BookingStatus, at time.Time) (bool, error)

	// UpdateDetailsIfPending replaces the date range, guest count, and total
	// price only while the booking is still pending. Returns false when no
	// pending booking with that id matched.
	UpdateDetailsIfPending(ctx context.Context, id string, start, end time.Time, guests int, totalPrice float64, at time.Time) (bool, error)

	// HasConfirmedBooking reports whether the user holds at least one
	// confirmed booking for the space.
	HasConfirmedBooking(ctx context.Context, userID, spaceID string) (bool, error)
}
