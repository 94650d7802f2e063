// Package redis caches public tracking lookups in Redis.
package redis

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tracking:"

// TrackingCache stores rendered tracking responses keyed by tracking code.
// All failures are logged and swallowed: the cache is advisory and lookups
// fall back to the database when it misbehaves.
type TrackingCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewTrackingCache creates a cache backed by the given Redis client.
func NewTrackingCache(client *redis.Client, logger *slog.Logger) *TrackingCache {
	return &TrackingCache{
		client: client,
		logger: logger.With(slog.String("component", "tracking_cache")),
	}
}

// Get returns the cached payload for the code, or ("", false) on a miss.
func (c *TrackingCache) Get(ctx context.Context, trackingCode string) (string, bool) {
	val, err := c.client.Get(ctx, keyPrefix+trackingCode).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache get failed",
				slog.String("tracking_code", trackingCode), slog.Any("error", err))
		}
		return "", false
	}
	return val, true
}

// Set stores the payload under the code for the given TTL.
func (c *TrackingCache) Set(ctx context.Context, trackingCode, payload string, ttl time.Duration) {
	if err := c.client.Set(ctx, keyPrefix+trackingCode, payload, ttl).Err(); err != nil {
		c.logger.Warn("cache set failed",
			slog.String("tracking_code", trackingCode), slog.Any("error", err))
	}
}

// Invalidate drops the cached payload for the code.
func (c *TrackingCache) Invalidate(ctx context.Context, trackingCode string) {
	if err := c.client.Del(ctx, keyPrefix+trackingCode).Err(); err != nil {
		c.logger.Warn("cache invalidate failed",
			slog.String("tracking_code", trackingCode), slog.Any("error", err))
	}
}
