package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

type cachedSpace struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client), mr
}

func TestCache_SetThenGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	in := cachedSpace{ID: "space_1", Title: "Loft", Price: 150}
	if err := cache.Set(ctx, "space:space_1", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out cachedSpace
	found, err := cache.Get(ctx, "space:space_1", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatalf("expected a cache hit")
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

func TestCache_MissingKeyIsNotAnError(t *testing.T) {
	cache, _ := newTestCache(t)

	var out cachedSpace
	found, err := cache.Get(context.Background(), "space:nope", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatalf("expected a miss")
	}
}

func TestCache_EntryExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "space:space_1", cachedSpace{ID: "space_1"}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	var out cachedSpace
	found, err := cache.Get(ctx, "space:space_1", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatalf("expected the entry to have expired")
	}
}

func TestCache_Del(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "space:space_1", cachedSpace{ID: "space_1"}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Del(ctx, "space:space_1"); err != nil {
		t.Fatalf("del: %v", err)
	}

	var out cachedSpace
	found, err := cache.Get(ctx, "space:space_1", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatalf("expected the entry to be gone")
	}

	// deleting an absent key is a no-op
	if err := cache.Del(ctx, "space:nope"); err != nil {
		t.Fatalf("del absent: %v", err)
	}
}
