package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spaceshare/rental-api/internal/core/domain"
	"github.com/spaceshare/rental-api/internal/core/ports"
)

type reviewService struct {
	reviews  ports.ReviewRepository
	spaces   ports.SpaceRepository
	bookings ports.BookingRepository
	log      zerolog.Logger
}

// NewReviewService returns a ReviewService implementation.
func NewReviewService(reviews ports.ReviewRepository, spaces ports.SpaceRepository, bookings ports.BookingRepository, log zerolog.Logger) ports.ReviewService {
	return &reviewService{reviews: reviews, spaces: spaces, bookings: bookings, log: log}
}

// Create persists a review. The author must hold a confirmed booking for the
// space, and may review a given space only once. Reviews are immutable.
func (s *reviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*ports.ReviewResult, error) {
	if input.Rating < domain.MinRating || input.Rating > domain.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", domain.ErrValidation, domain.MinRating, domain.MaxRating)
	}

	if _, err := s.spaces.FindByID(ctx, input.SpaceID); err != nil {
		return nil, err
	}

	stayed, err := s.bookings.HasConfirmedBooking(ctx, input.UserID, input.SpaceID)
	if err != nil {
		return nil, err
	}
	if !stayed {
		return nil, fmt.Errorf("%w: reviews require a confirmed booking for the space", domain.ErrForbidden)
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		SpaceID:   input.SpaceID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("review_id", review.ID).
		Str("space_id", review.SpaceID).
		Int("rating", review.Rating).
		Msg("review created")

	return toReviewResult(review), nil
}

func (s *reviewService) List(ctx context.Context, input ports.ListReviewsInput) (*ports.ListReviewsResult, error) {
	if input.SpaceID == "" {
		return nil, fmt.Errorf("%w: space_id is required", domain.ErrValidation)
	}
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.reviews.ListBySpace(ctx, input.SpaceID, page, limit)
	if err != nil {
		return nil, err
	}

	results := make([]ports.ReviewResult, len(items))
	for i, r := range items {
		results[i] = *toReviewResult(r)
	}
	return &ports.ListReviewsResult{
		Items:      results,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func toReviewResult(r *domain.Review) *ports.ReviewResult {
	return &ports.ReviewResult{
		ID:        r.ID,
		SpaceID:   r.SpaceID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
