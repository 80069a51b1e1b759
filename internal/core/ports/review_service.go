package ports

import (
	"context"
	"time"
)

// CreateReviewInput carries all data needed to create a review.
// UserID comes from the authenticated caller.
type CreateReviewInput struct {
	SpaceID string
	UserID  string
	Rating  int
	Comment string
}

// ReviewResult is the review view returned by the service.
type ReviewResult struct {
	ID        string
	SpaceID   string
	UserID    string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// ListReviewsInput carries all parameters for the list endpoint.
type ListReviewsInput struct {
	SpaceID string
	Page    int
	Limit   int
}

// ListReviewsResult is returned by List.
type ListReviewsResult struct {
	Items      []ReviewResult
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ReviewService defines review use cases. Reviews are create-and-read only.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*ReviewResult, error)
	List(ctx context.Context, input ListReviewsInput) (*ListReviewsResult, error)
}
