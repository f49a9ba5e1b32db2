package dataset

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/JulienRip/riskbanking/pkg/logger"
)

// Store caches loaded tables by path in a small bounded LRU. There is no
// freshness guarantee: a file changed on disk after first load is not
// observed until its entry is evicted or invalidated.
type Store interface {
	// Load returns the table for a path, reading from disk at most once per
	// cached entry. A missing file yields an empty table, not an error.
	Load(ctx context.Context, path string) (*Table, error)

	// Invalidate drops the cache entry for one path.
	Invalidate(path string)

	// Purge drops all cache entries.
	Purge()
}

type store struct {
	cache  *lru.Cache[string, *Table]
	group  singleflight.Group
	loader func(path string) (*Table, error)
	log    logger.Logger
}

// NewStore creates a dataset store holding at most capacity distinct paths.
func NewStore(capacity int, log logger.Logger) (Store, error) {
	cache, err := lru.New[string, *Table](capacity)
	if err != nil {
		return nil, err
	}
	return &store{
		cache:  cache,
		loader: LoadCSV,
		log:    log.WithComponent("dataset"),
	}, nil
}

func (s *store) Load(ctx context.Context, path string) (*Table, error) {
	if table, ok := s.cache.Get(path); ok {
		return table, nil
	}

	// Collapse concurrent loads of the same path into a single disk read.
	v, err, _ := s.group.Do(path, func() (interface{}, error) {
		if table, ok := s.cache.Get(path); ok {
			return table, nil
		}
		table, err := s.loader(path)
		if err != nil {
			return nil, err
		}
		s.log.Info(ctx, "dataset loaded",
			logger.String("path", path),
			logger.Int("rows", table.Len()))
		s.cache.Add(path, table)
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

func (s *store) Invalidate(path string) {
	s.cache.Remove(path)
}

func (s *store) Purge() {
	s.cache.Purge()
}
