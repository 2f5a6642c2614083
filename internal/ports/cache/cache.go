package cache

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SerializedCache holds serialized entity shapes keyed by entity and id. The
// database stays authoritative; entries are dropped on every write.
type SerializedCache interface {
	// Get decodes the cached value into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// Key builds the cache key of one entity row, e.g. "photofeed:user:7".
func Key(entity string, id uint) string {
	return fmt.Sprintf("photofeed:%s:%d", entity, id)
}

// Fetch returns the cached value under key, or calls load and caches its
// result. A nil cache or a failing cache falls back to load.
func Fetch[T any](ctx context.Context, c SerializedCache, logger *zap.Logger, key string, load func() (T, error)) (T, error) {
	if c == nil {
		return load()
	}

	var cached T
	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		return cached, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if err := c.Set(ctx, key, v); err != nil {
		logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

// Invalidate drops keys after a write. Failures are logged, not returned.
func Invalidate(ctx context.Context, c SerializedCache, logger *zap.Logger, keys ...string) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
