package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// GetOrLoad returns the cached value for key, or calls load and caches its result.
// Cache failures are logged and never fail the read.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var cached T
	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
	} else if found {
		return cached, nil
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if err := c.Set(ctx, key, v, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
	return v, nil
}

// Invalidate deletes keys, logging instead of failing.
func Invalidate(ctx context.Context, c Cache, keys ...string) {
	if err := c.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("Cache invalidation failed")
	}
}

// InvalidatePattern deletes every key matching pattern, logging instead of failing.
func InvalidatePattern(ctx context.Context, c Cache, pattern string) {
	if err := c.DeletePattern(ctx, pattern); err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("Cache invalidation failed")
	}
}
