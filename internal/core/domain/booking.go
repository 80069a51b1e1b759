package domain

import (
	"math"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// Confirmed and cancelled are terminal: they have no outgoing edges.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending: {StatusConfirmed, StatusCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// Booking is the core aggregate: a reservation of a Space by a User for a
// date range. Bookings are never physically deleted; cancellation is a
// status transition.
type Booking struct {
	ID          string        `json:"id" bson:"_id"`
	SpaceID     string        `json:"space_id" bson:"space_id"`
	UserID      string        `json:"user_id" bson:"user_id"`
	StartDate   time.Time     `json:"start_date" bson:"start_date"`
	EndDate     time.Time     `json:"end_date" bson:"end_date"`
	Guests      int           `json:"guests" bson:"guests"`
	TotalPrice  float64       `json:"total_price" bson:"total_price"`
	Status      BookingStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
	ConfirmedAt *time.Time    `json:"confirmed_at,omitempty" bson:"confirmed_at,omitempty"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty" bson:"cancelled_at,omitempty"`
}

// Nights returns the number of nights covered by [start, end).
// A partial trailing day counts as a full night. Returns 0 when the
// range is empty or inverted.
func Nights(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// TotalPrice computes nightly price × nights, rounded to cents.
func TotalPrice(nightlyPrice float64, nights int) float64 {
	return math.Round(nightlyPrice*float64(nights)*100) / 100
}
