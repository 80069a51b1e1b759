package ports

import (
	"context"
	"time"
)

// SpaceInput carries the writable fields of a space, used for both create
// and update.
type SpaceInput struct {
	Title        string
	Description  string
	NightlyPrice float64
	Location     string
	Capacity     int
	Amenities    string
}

// SpaceResult is the space view returned by the service.
type SpaceResult struct {
	ID           string
	Title        string
	Description  string
	NightlyPrice float64
	Location     string
	Capacity     int
	Amenities    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ListSpacesInput carries all parameters for the list endpoint.
type ListSpacesInput struct {
	Location string
	Page     int
	Limit    int
}

// ListSpacesResult is returned by List.
type ListSpacesResult struct {
	Items      []SpaceResult
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SpaceService defines CRUD use cases for spaces.
type SpaceService interface {
	Create(ctx context.Context, input SpaceInput) (*SpaceResult, error)
	Get(ctx context.Context, id string) (*SpaceResult, error)
	List(ctx context.Context, input ListSpacesInput) (*ListSpacesResult, error)
	Update(ctx context.Context, id string, input SpaceInput) (*SpaceResult, error)
	Delete(ctx context.Context, id string) error
}
