package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/spaceshare/rental-api/internal/core/domain"
	"github.com/spaceshare/rental-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub cache
// ---------------------------------------------------------------------------

type stubCache struct {
	store  map[string][]byte
	getErr error
	hits   int
	misses int
	dels   []string
}

func newStubCache() *stubCache {
	return &stubCache{store: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.store[key]
	if !ok {
		c.misses++
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, dst)
}

func (c *stubCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *stubCache) Del(_ context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

func spaceInput() ports.SpaceInput {
	return ports.SpaceInput{
		Title:        "Canal loft",
		Description:  "Bright loft by the canal",
		NightlyPrice: 120.00,
		Location:     "Amsterdam",
		Capacity:     3,
		Amenities:    "wifi, kitchen",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSpaceService_CreateAndGet(t *testing.T) {
	repo := newStubSpaceRepo()
	svc := NewSpaceService(repo, nil, 0, zerolog.Nop())

	created, err := svc.Create(context.Background(), spaceInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "Canal loft" || got.Capacity != 3 {
		t.Errorf("unexpected space: %+v", got)
	}
}

func TestSpaceService_Create_Validation(t *testing.T) {
	svc := NewSpaceService(newStubSpaceRepo(), nil, 0, zerolog.Nop())

	cases := []ports.SpaceInput{
		{Title: "", NightlyPrice: 100, Capacity: 2},
		{Title: "x", NightlyPrice: 0, Capacity: 2},
		{Title: "x", NightlyPrice: -5, Capacity: 2},
		{Title: "x", NightlyPrice: 100, Capacity: 0},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestSpaceService_Get_ReadThroughCache(t *testing.T) {
	repo := newStubSpaceRepo()
	cache := newStubCache()
	svc := NewSpaceService(repo, cache, 15*time.Minute, zerolog.Nop())

	created, err := svc.Create(context.Background(), spaceInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// First read misses and populates the cache.
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if cache.misses != 1 {
		t.Errorf("expected one cache miss, got %d", cache.misses)
	}

	// Second read is served from the cache even after the store record
	// disappears.
	delete(repo.byID, created.ID)
	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "Canal loft" {
		t.Errorf("unexpected cached space: %+v", got)
	}
	if cache.hits != 1 {
		t.Errorf("expected one cache hit, got %d", cache.hits)
	}
}

func TestSpaceService_Get_CacheErrorFallsBackToStore(t *testing.T) {
	repo := newStubSpaceRepo()
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	svc := NewSpaceService(repo, cache, time.Minute, zerolog.Nop())

	created, err := svc.Create(context.Background(), spaceInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("expected store fallback, got %v", err)
	}
}

func TestSpaceService_Update_InvalidatesCache(t *testing.T) {
	repo := newStubSpaceRepo()
	cache := newStubCache()
	svc := NewSpaceService(repo, cache, time.Minute, zerolog.Nop())

	created, _ := svc.Create(context.Background(), spaceInput())
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	input := spaceInput()
	input.Title = "Renamed loft"
	updated, err := svc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "Renamed loft" {
		t.Errorf("unexpected title: %s", updated.Title)
	}
	if len(cache.dels) != 1 {
		t.Errorf("expected one cache invalidation, got %v", cache.dels)
	}

	// The next read must observe the new title, not the stale cache entry.
	got, _ := svc.Get(context.Background(), created.ID)
	if got.Title != "Renamed loft" {
		t.Errorf("stale read after update: %s", got.Title)
	}
}

func TestSpaceService_Delete_UnknownSpace(t *testing.T) {
	svc := NewSpaceService(newStubSpaceRepo(), nil, 0, zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrSpaceNotFound) {
		t.Fatalf("expected ErrSpaceNotFound, got %v", err)
	}
}
