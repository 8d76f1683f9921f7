package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
)

// ProductCache caches catalog reads in front of the product repository.
// A cache miss or backend failure is never an error; callers fall through
// to the repository.
type ProductCache interface {
	// Get returns the cached product, or nil on a miss
	Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	// Set stores a product for the configured TTL
	Set(ctx context.Context, product *catalog.Product) error
	// Invalidate drops a product from the cache
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// NopProductCache is a ProductCache that caches nothing
type NopProductCache struct{}

// Get always misses
func (NopProductCache) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return nil, nil
}

// Set does nothing
func (NopProductCache) Set(ctx context.Context, product *catalog.Product) error {
	return nil
}

// Invalidate does nothing
func (NopProductCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return nil
}

// entry is a cached product with its expiry
type entry struct {
	product   *catalog.Product
	expiresAt time.Time
}
