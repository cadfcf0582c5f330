package catalog

import (
	"sync"
	"time"
)

// DefaultFreshnessWindow is how long a cached category listing is
// served before a fresh read is forced.
const DefaultFreshnessWindow = 5 * time.Minute

type cacheEntry struct {
	catalog   *Catalog
	fetchedAt time.Time
}

// CategoryCache keeps recent catalog responses keyed by category so
// repeat reads inside the freshness window skip the read service
// entirely. It is advisory only: never persisted, never a source of
// truth. The clock is injectable for tests.
type CategoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	window  time.Duration
	now     func() time.Time
}

func NewCategoryCache(window time.Duration) *CategoryCache {
	if window <= 0 {
		window = DefaultFreshnessWindow
	}
	return &CategoryCache{
		entries: make(map[string]cacheEntry),
		window:  window,
		now:     time.Now,
	}
}

// Get returns the cached catalog for a category while the entry is
// younger than the freshness window.
func (c *CategoryCache) Get(category string) (*Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[category]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.window {
		return nil, false
	}
	return entry.catalog, true
}

func (c *CategoryCache) Put(category string, catalog *Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[category] = cacheEntry{catalog: catalog, fetchedAt: c.now()}
}

// Invalidate forces the next read for the category to bypass the
// cache regardless of entry age.
func (c *CategoryCache) Invalidate(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, category)
}

func (c *CategoryCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Size returns the number of cached categories.
func (c *CategoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
