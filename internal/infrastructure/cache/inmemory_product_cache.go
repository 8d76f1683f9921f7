package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
)

// InMemoryProductCache implements ProductCache with a process-local map.
// Used in development and as a fallback when Redis is not configured.
type InMemoryProductCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]entry
	ttl     time.Duration
}

// NewInMemoryProductCache creates an in-memory product cache
func NewInMemoryProductCache(ttl time.Duration) *InMemoryProductCache {
	return &InMemoryProductCache{
		entries: make(map[uuid.UUID]entry),
		ttl:     ttl,
	}
}

// Get returns the cached product, or nil on a miss or expired entry
func (c *InMemoryProductCache) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, id)
		c.mu.Unlock()
		return nil, nil
	}

	return e.product, nil
}

// Set stores a product for the configured TTL
func (c *InMemoryProductCache) Set(ctx context.Context, product *catalog.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[product.ID] = entry{
		product:   product,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// Invalidate drops a product from the cache
func (c *InMemoryProductCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

var _ ProductCache = (*InMemoryProductCache)(nil)
