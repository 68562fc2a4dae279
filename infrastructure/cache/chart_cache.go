package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultMaxSize = 1024
	defaultTTL     = time.Hour
)

// HitRecorder receives cache lookups
type HitRecorder interface {
	RecordCacheHit(hit bool)
}

// Config configures the chart cache
type Config struct {
	// MaxSize is the maximum number of charts kept.
	MaxSize int
	// TTL applies to entries stored without an explicit TTL.
	TTL time.Duration
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// ChartCache is a bounded LRU cache for calculated charts behind the query
// bus caching middleware. Charts are immutable, so cached pointers are
// shared between callers.
type ChartCache struct {
	items    *lru.Cache[string, entry]
	ttl      time.Duration
	recorder HitRecorder
	now      func() time.Time
}

// NewChartCache creates a cache. Non-positive values fall back to defaults.
// recorder may be nil.
func NewChartCache(cfg Config, recorder HitRecorder) (*ChartCache, error) {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultMaxSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	items, err := lru.New[string, entry](cfg.MaxSize)
	if err != nil {
		return nil, err
	}
	return &ChartCache{
		items:    items,
		ttl:      cfg.TTL,
		recorder: recorder,
		now:      time.Now,
	}, nil
}

// Get retrieves a value. Expired entries are evicted and reported as misses.
func (c *ChartCache) Get(_ context.Context, key string) (interface{}, bool) {
	e, ok := c.items.Get(key)
	if ok && !c.now().Before(e.expiresAt) {
		c.items.Remove(key)
		ok = false
	}
	c.record(ok)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores a value with a TTL in seconds. A non-positive TTL uses the
// cache default.
func (c *ChartCache) Set(_ context.Context, key string, value interface{}, ttl int) error {
	d := time.Duration(ttl) * time.Second
	if d <= 0 {
		d = c.ttl
	}
	c.items.Add(key, entry{value: value, expiresAt: c.now().Add(d)})
	return nil
}

// Delete removes a value from cache
func (c *ChartCache) Delete(_ context.Context, key string) error {
	c.items.Remove(key)
	return nil
}

// Clear removes all values from cache
func (c *ChartCache) Clear(_ context.Context) error {
	c.items.Purge()
	return nil
}

// Len returns the number of stored entries, including expired ones not yet
// evicted.
func (c *ChartCache) Len() int {
	return c.items.Len()
}

func (c *ChartCache) record(hit bool) {
	if c.recorder != nil {
		c.recorder.RecordCacheHit(hit)
	}
}
