package ports

import (
	"context"

	"github.com/spaceshare/rental-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
// Reviews are immutable: there is no update or delete.
type ReviewRepository interface {
	// Create inserts a review. Returns domain.ErrDuplicateReview when the
	// user has already reviewed the space.
	Create(ctx context.Context, r *domain.Review) error
	// ListBySpace returns a page of reviews for the space and the total count.
	ListBySpace(ctx context.Context, spaceID string, page, limit int) ([]*domain.Review, int64, error)
}
