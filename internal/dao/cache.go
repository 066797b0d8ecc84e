package dao

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is the default time-to-live for cached pages.
const DefaultCacheTTL = 30 * time.Second

// cacheEntry holds a cached page with its timestamp.
type cacheEntry struct {
	page      Page
	timestamp time.Time
}

// PageCache provides TTL-based caching for fetched pages.
type PageCache struct {
	data map[string]cacheEntry
	ttl  time.Duration
	now  func() time.Time
	mx   sync.RWMutex
}

// NewPageCache creates a new PageCache with the specified TTL.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get retrieves a cached page for the given key.
// Returns false if the key is not found or the entry has expired.
func (c *PageCache) Get(key string) (Page, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return Page{}, false
	}

	if c.now().Sub(entry.timestamp) > c.ttl {
		return Page{}, false
	}

	return entry.page, true
}

// Set stores a page in the cache with the given key.
func (c *PageCache) Set(key string, page Page) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.data[key] = cacheEntry{
		page:      page,
		timestamp: c.now(),
	}
}

// InvalidatePrefix removes all cache entries whose keys start with the given prefix.
func (c *PageCache) InvalidatePrefix(prefix string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
}

// Clear removes all entries from the cache.
func (c *PageCache) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.data = make(map[string]cacheEntry)
}

// CachedSource serves pages from a cache before hitting its source.
type CachedSource struct {
	Source
	name  string
	cache *PageCache
}

// NewCachedSource wraps src; name namespaces the cache keys.
func NewCachedSource(name string, src Source, cache *PageCache) *CachedSource {
	return &CachedSource{Source: src, name: name, cache: cache}
}

// Load implements Source.
func (c *CachedSource) Load(ctx context.Context, cursor string) (Page, error) {
	key := c.cacheKey(cursor)
	if page, ok := c.cache.Get(key); ok {
		return page, nil
	}

	page, err := c.Source.Load(ctx, cursor)
	if err != nil {
		return Page{}, err
	}
	c.cache.Set(key, page)

	return page, nil
}

// Invalidate drops every cached page of this source.
func (c *CachedSource) Invalidate() {
	c.cache.InvalidatePrefix(c.name + ":")
}

func (c *CachedSource) cacheKey(cursor string) string {
	return c.name + ":" + cursor
}
