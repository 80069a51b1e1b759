package domain

import "time"

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of a space. Reviews are immutable after
// creation; there is no update operation.
type Review struct {
	ID        string    `json:"id" bson:"_id"`
	SpaceID   string    `json:"space_id" bson:"space_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
