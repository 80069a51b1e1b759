package domain

import "time"

// InvoiceStatusPaid is the only status a simulated invoice can hold.
const InvoiceStatusPaid = "paid"

// Invoice is the simulated payment confirmation returned when a booking is
// confirmed. The amount always equals the booking's stored total price.
type Invoice struct {
	ID        string    `json:"invoice_id" bson:"_id"`
	BookingID string    `json:"booking_id" bson:"booking_id"`
	Amount    float64   `json:"amount" bson:"amount"`
	Status    string    `json:"status" bson:"status"`
	IssuedAt  time.Time `json:"issued_at" bson:"issued_at"`
}
