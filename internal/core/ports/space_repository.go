package ports

import (
	"context"

	"github.com/spaceshare/rental-api/internal/core/domain"
)

// ListSpacesFilter carries the query parameters for listing spaces.
type ListSpacesFilter struct {
	Location string // optional: partial match on location
	Page     int    // 1-based
	Limit    int    // max rows per page (capped at 100 by the service)
}

// SpaceRepository defines persistence operations for spaces.
type SpaceRepository interface {
	Create(ctx context.Context, s *domain.Space) error
	FindByID(ctx context.Context, id string) (*domain.Space, error)
	// List returns a page of spaces matching filter and the total count.
	List(ctx context.Context, filter ListSpacesFilter) ([]*domain.Space, int64, error)
	Update(ctx context.Context, s *domain.Space) error
	Delete(ctx context.Context, id string) error
}
