// Package cache provides a Redis-based result cache with cache-aside pattern.
// Conversions and evaluations are idempotent, so identical requests can be
// served from the cache; singleflight collapses concurrent identical fills.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Cache provides caching operations using Redis.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	group  singleflight.Group
	stats  *Stats
}

// Stats tracks cache statistics.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Sets   uint64 `json:"sets"`
	Errors uint64 `json:"errors"`
}

// StatsSnapshot is a point-in-time view of the statistics.
type StatsSnapshot struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	Sets    uint64  `json:"sets"`
	Errors  uint64  `json:"errors"`
	HitRate float64 `json:"hit_rate"`
}

// New creates a new cache instance.
func New(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		stats:  &Stats{},
	}
}

// Get retrieves a value from the cache.
// Returns a boolean indicating if it was found (cache hit).
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	fullKey := c.prefix + key

	data, err := c.client.Get(ctx, fullKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			atomic.AddUint64(&c.stats.Misses, 1)
			return false, nil // Cache miss
		}
		atomic.AddUint64(&c.stats.Errors, 1)
		return false, fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		atomic.AddUint64(&c.stats.Errors, 1)
		return false, fmt.Errorf("cache unmarshal error: %w", err)
	}

	atomic.AddUint64(&c.stats.Hits, 1)
	return true, nil
}

// Set stores a value in the cache with the default TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	fullKey := c.prefix + key

	data, err := json.Marshal(value)
	if err != nil {
		atomic.AddUint64(&c.stats.Errors, 1)
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.client.Set(ctx, fullKey, data, c.ttl).Err(); err != nil {
		atomic.AddUint64(&c.stats.Errors, 1)
		return fmt.Errorf("cache set error: %w", err)
	}

	atomic.AddUint64(&c.stats.Sets, 1)
	return nil
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. Concurrent calls for the same key share a single computation.
func (c *Cache) GetOrCompute(ctx context.Context, key string, dest interface{}, compute func() (interface{}, error)) error {
	found, err := c.Get(ctx, key, dest)
	if err == nil && found {
		return nil
	}
	// Fall through on cache errors: the computation is the source of truth.

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		v, err := compute()
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, v); err != nil {
			// A failed write only costs a future recomputation.
			return v, nil
		}
		return v, nil
	})
	if err != nil {
		return err
	}

	// Round-trip through JSON to fill dest uniformly for shared results.
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	return json.Unmarshal(data, dest)
}

// Ping verifies the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Snapshot returns current cache statistics.
func (c *Cache) Snapshot() StatsSnapshot {
	hits := atomic.LoadUint64(&c.stats.Hits)
	misses := atomic.LoadUint64(&c.stats.Misses)

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return StatsSnapshot{
		Hits:    hits,
		Misses:  misses,
		Sets:    atomic.LoadUint64(&c.stats.Sets),
		Errors:  atomic.LoadUint64(&c.stats.Errors),
		HitRate: hitRate,
	}
}
