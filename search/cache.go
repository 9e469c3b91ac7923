package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/gridwalk/grid"
)

// DefaultCacheSize is the number of results kept by NewCache(0).
const DefaultCacheSize = 64

// cacheKey identifies a run: the board layout and the algorithm.
type cacheKey struct {
	layout string
	algo   Algorithm
}

// Cache memoizes search results per (layout, algorithm). Because Search is
// deterministic and ignores cell flags, re-running an unchanged board can
// be answered from memory. Results are cloned on the way in and out, so
// callers may not corrupt cached entries. Safe for concurrent use.
type Cache struct {
	entries *lru.Cache[cacheKey, *Result]
	logger  *slog.Logger
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewCache creates a Cache holding up to size results. A non-positive size
// falls back to DefaultCacheSize.
func NewCache(size int, logger *slog.Logger) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if logger == nil {
		logger = discardLogger
	}
	entries, err := lru.New[cacheKey, *Result](size)
	if err != nil {
		return nil, fmt.Errorf("search: create cache: %w", err)
	}
	return &Cache{entries: entries, logger: logger}, nil
}

// Search returns the cached result for g and algo, running Search on a miss.
// Errors are never cached.
func (c *Cache) Search(ctx context.Context, g *grid.Grid, algo Algorithm) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	key := cacheKey{layout: g.Fingerprint(), algo: algo}
	if res, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		c.logger.Debug("search cache hit", slog.String("algorithm", algo.String()))
		return res.Clone(), nil
	}
	c.misses.Add(1)

	res, err := Search(g, algo, WithContext(ctx), WithLogger(c.logger))
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, res.Clone())
	return res, nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached result.
func (c *Cache) Purge() {
	c.entries.Purge()
}

// Stats returns hit and miss counters since creation.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
