// Package memory provides in-process implementations of the driven ports,
// used as the default page cache and as test doubles for configuration.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/tabula/internal/core/ports/driven"
)

// Ensure PageCache implements the interface.
var _ driven.PageCache = (*PageCache)(nil)

type cachedPage struct {
	payload   []byte
	expiresAt time.Time
}

// PageCache is an in-memory implementation of driven.PageCache.
// Expired entries are dropped on read.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]cachedPage
	now   func() time.Time
}

// NewPageCache creates a new in-memory page cache.
func NewPageCache() *PageCache {
	return &PageCache{
		pages: make(map[string]cachedPage),
		now:   time.Now,
	}
}

// Get returns the payload stored under key.
func (c *PageCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	page, ok := c.pages[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !page.expiresAt.IsZero() && !c.now().Before(page.expiresAt) {
		c.mu.Lock()
		delete(c.pages, key)
		c.mu.Unlock()
		return nil, false, nil
	}

	out := make([]byte, len(page.payload))
	copy(out, page.payload)
	return out, true, nil
}

// Set stores payload under key.
func (c *PageCache) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	page := cachedPage{payload: stored}
	if ttl > 0 {
		page.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[key] = page
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// Close drops every entry.
func (c *PageCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = make(map[string]cachedPage)
	return nil
}
