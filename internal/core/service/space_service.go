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

// Cache abstracts the read-through space cache (Redis).
type Cache interface {
	// Get unmarshals the cached value for key into dst and reports whether
	// the key was present.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type spaceService struct {
	repo     ports.SpaceRepository
	cache    Cache
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewSpaceService returns a SpaceService implementation. cache may be nil,
// in which case all reads go to the repository.
func NewSpaceService(repo ports.SpaceRepository, cache Cache, cacheTTL time.Duration, log zerolog.Logger) ports.SpaceService {
	return &spaceService{repo: repo, cache: cache, cacheTTL: cacheTTL, log: log}
}

func (s *spaceService) Create(ctx context.Context, input ports.SpaceInput) (*ports.SpaceResult, error) {
	if err := validateSpaceInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	space := &domain.Space{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		NightlyPrice: input.NightlyPrice,
		Location:     input.Location,
		Capacity:     input.Capacity,
		Amenities:    input.Amenities,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, space); err != nil {
		s.log.Error().Err(err).Msg("failed to create space")
		return nil, err
	}

	s.log.Info().Str("space_id", space.ID).Str("title", space.Title).Msg("space created")
	return toSpaceResult(space), nil
}

// Get reads through the cache: on a miss the space is fetched from the store
// and cached for cacheTTL. Cache failures degrade to a plain store read.
func (s *spaceService) Get(ctx context.Context, id string) (*ports.SpaceResult, error) {
	if s.cache != nil {
		var cached domain.Space
		hit, err := s.cache.Get(ctx, spaceCacheKey(id), &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("space_id", id).Msg("cache read failed")
		} else if hit {
			return toSpaceResult(&cached), nil
		}
	}

	space, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, spaceCacheKey(id), space, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("space_id", id).Msg("cache write failed")
		}
	}
	return toSpaceResult(space), nil
}

func (s *spaceService) List(ctx context.Context, input ports.ListSpacesInput) (*ports.ListSpacesResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.repo.List(ctx, ports.ListSpacesFilter{
		Location: input.Location,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	results := make([]ports.SpaceResult, len(items))
	for i, sp := range items {
		results[i] = *toSpaceResult(sp)
	}
	return &ports.ListSpacesResult{
		Items:      results,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *spaceService) Update(ctx context.Context, id string, input ports.SpaceInput) (*ports.SpaceResult, error) {
	if err := validateSpaceInput(input); err != nil {
		return nil, err
	}

	space, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	space.Title = input.Title
	space.Description = input.Description
	space.NightlyPrice = input.NightlyPrice
	space.Location = input.Location
	space.Capacity = input.Capacity
	space.Amenities = input.Amenities
	space.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, space); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	s.log.Info().Str("space_id", id).Msg("space updated")
	return toSpaceResult(space), nil
}

func (s *spaceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info().Str("space_id", id).Msg("space deleted")
	return nil
}

func (s *spaceService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, spaceCacheKey(id)); err != nil {
		s.log.Warn().Err(err).Str("space_id", id).Msg("cache invalidation failed")
	}
}

func spaceCacheKey(id string) string {
	return "space:" + id
}

func validateSpaceInput(input ports.SpaceInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.NightlyPrice <= 0 {
		return fmt.Errorf("%w: nightly price must be positive", domain.ErrValidation)
	}
	if input.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", domain.ErrValidation)
	}
	return nil
}

func toSpaceResult(sp *domain.Space) *ports.SpaceResult {
	return &ports.SpaceResult{
		ID:           sp.ID,
		Title:        sp.Title,
		Description:  sp.Description,
		NightlyPrice: sp.NightlyPrice,
		Location:     sp.Location,
		Capacity:     sp.Capacity,
		Amenities:    sp.Amenities,
		CreatedAt:    sp.CreatedAt,
		UpdatedAt:    sp.UpdatedAt,
	}
}
