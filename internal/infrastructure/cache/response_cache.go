// Package cache provides the bounded-TTL response cache used by the HTTP
// layer to memoize route responses by canonical query key. Two backends are
// available: an in-process store (the default) and Redis for deployments
// where several service replicas should share one cache.
package cache

import (
	"context"
	"time"

	"github.com/JulienRip/riskbanking/internal/config"
	"github.com/JulienRip/riskbanking/pkg/errors"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// ResponseCache stores opaque response payloads under string keys with a
// per-entry time-to-live. Implementations must be safe for concurrent use.
type ResponseCache interface {
	// Get returns the payload for key, and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores payload under key for ttl.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Flush drops every entry.
	Flush(ctx context.Context) error
}

// New selects a cache backend from configuration.
func New(cfg *config.CacheConfig, log logger.Logger) (ResponseCache, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryCache(), nil
	case "redis":
		return NewRedisCache(&cfg.Redis, log)
	default:
		return nil, errors.ErrInternal("unknown cache backend: " + cfg.Backend)
	}
}
