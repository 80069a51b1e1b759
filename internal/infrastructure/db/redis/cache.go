package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spaceshare/rental-api/internal/api/metrics"
)

// Cache is a JSON value cache backed by Redis. Keys are owned by the caller;
// a missing key is not an error.
type Cache struct {
	client *redis.Client
}

// NewCache creates a Cache wrapping the given Redis client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get unmarshals the cached value for key into dst and reports whether the
// key was present.
func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOpsTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		metrics.CacheOpsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.CacheOpsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("cache decode: %w", err)
	}
	metrics.CacheOpsTotal.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores v under key as JSON with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		metrics.CacheOpsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("cache set: %w", err)
	}
	metrics.CacheOpsTotal.WithLabelValues("set").Inc()
	return nil
}

// Del removes key. Deleting an absent key is a no-op.
func (c *Cache) Del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		metrics.CacheOpsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("cache del: %w", err)
	}
	metrics.CacheOpsTotal.WithLabelValues("del").Inc()
	return nil
}
