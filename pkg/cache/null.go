package cache

import "context"

// NullCache satisfies Cache without storing anything. It backs the
// --no-cache flag so callers never branch on a nil cache.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() *NullCache { return &NullCache{} }

// Get implements Cache.
func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, ctx.Err()
}

// Set implements Cache.
func (*NullCache) Set(ctx context.Context, key string, data []byte) error {
	return ctx.Err()
}

// Delete implements Cache.
func (*NullCache) Delete(ctx context.Context, key string) error {
	return ctx.Err()
}

// Close implements Cache.
func (*NullCache) Close() error { return nil }
