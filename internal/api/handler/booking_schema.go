package handler

import "time"

type createBookingRequest struct {
	SpaceID   string    `json:"space_id"   validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`
	Guests    int       `json:"guests"     validate:"required,gte=1"`
}

type updateBookingRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`
	Guests    int       `json:"guests"     validate:"required,gte=1"`
}

type bookingResponse struct {
	ID          string     `json:"id"`
	SpaceID     string     `json:"space_id"`
	UserID      string     `json:"user_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Guests      int        `json:"guests"`
	TotalPrice  float64    `json:"total_price"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// invoiceResponse is the simulated payment confirmation returned by pay.
type invoiceResponse struct {
	InvoiceID string    `json:"invoice_id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	IssuedAt  time.Time `json:"issued_at"`
}

type listBookingsResponse struct {
	Data       []bookingResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
