package adapter

import (
	"context"
	"time"

	"readiness-engine/internal/cache"
	"readiness-engine/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Submission throttle: at most Limit attempts per Window per fingerprint.
// Duplicate inserts from retried submissions are tolerated elsewhere; this
// throttle is the mitigation, not exactly-once delivery.
const (
	RateLimitWindow = time.Hour
	RateLimitMax    = 5
)

// RedisRateLimiter implements domain.RateLimiter with an INCR counter that
// expires after the window. The window is fixed, not sliding per attempt:
// the TTL starts with the first attempt of the bucket.
type RedisRateLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int64
}

// NewRedisRateLimiter creates a limiter with the default window and budget.
func NewRedisRateLimiter(client *redis.Client) domain.RateLimiter {
	return &RedisRateLimiter{client: client, window: RateLimitWindow, limit: RateLimitMax}
}

// Allow implements domain.RateLimiter. Every call counts as an attempt,
// including denied ones; a hammering client does not get fresh budget.
func (r *RedisRateLimiter) Allow(ctx context.Context, fingerprint string) (bool, error) {
	key := cache.GenerateCacheKey("limiter", "submissions", fingerprint)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= r.limit, nil
}
