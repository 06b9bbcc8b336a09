package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/streamvista/localekit/core/locale"
)

// Cache stores detected countries keyed by client IP so repeated resolutions
// skip the provider round-trip. Failures are treated as misses by the chain.
type Cache interface {
	Get(ctx context.Context, ip string) (locale.CountryCode, error)
	Set(ctx context.Context, ip string, country locale.CountryCode) error
}

const redisKeyPrefix = "geo:country:"

// RedisCache is a Redis-backed Cache with per-entry TTL.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCache creates a cache on top of an existing Redis client.
// A non-positive ttl disables expiry.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached country for ip, or ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, ip string) (locale.CountryCode, error) {
	val, err := c.client.Get(ctx, redisKeyPrefix+ip).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("geo cache get: %w", err)
	}

	country, err := locale.ParseCountry(val)
	if err != nil {
		// Corrupt entry, treat as miss rather than propagating garbage.
		return "", ErrCacheMiss
	}
	return country, nil
}

// Set stores the country for ip.
func (c *RedisCache) Set(ctx context.Context, ip string, country locale.CountryCode) error {
	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, redisKeyPrefix+ip, string(country), ttl).Err(); err != nil {
		return fmt.Errorf("geo cache set: %w", err)
	}
	return nil
}
