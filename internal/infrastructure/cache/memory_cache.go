package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryCache is the in-process backend, a thin wrapper over go-cache with
// per-entry TTLs and periodic expired-entry sweeping.
type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates the in-process response cache.
func NewMemoryCache() ResponseCache {
	return &memoryCache{
		store: gocache.New(gocache.NoExpiration, time.Minute),
	}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false, nil
	}
	return v.([]byte), true, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	c.store.Set(key, payload, ttl)
	return nil
}

func (c *memoryCache) Flush(ctx context.Context) error {
	c.store.Flush()
	return nil
}
