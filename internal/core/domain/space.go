package domain

import "time"

// Space is a rentable listing with a nightly price and a guest capacity.
type Space struct {
	ID           string    `json:"id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	NightlyPrice float64   `json:"nightly_price" bson:"nightly_price"`
	Location     string    `json:"location" bson:"location"`
	Capacity     int       `json:"capacity" bson:"capacity"`
	Amenities    string    `json:"amenities" bson:"amenities"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
