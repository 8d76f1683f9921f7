package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/config"
)

const productKeyPrefix = "catalog:product:"

// RedisProductCache implements ProductCache backed by Redis, suitable when
// several instances serve the same catalog
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProductCache connects to Redis and returns a product cache
func NewRedisProductCache(cfg config.RedisConfig, ttl time.Duration) (*RedisProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisProductCache{client: client, ttl: ttl}, nil
}

// NewRedisProductCacheWithClient wraps an existing Redis client
func NewRedisProductCacheWithClient(client *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl}
}

// Get returns the cached product, or nil on a miss
func (c *RedisProductCache) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	data, err := c.client.Get(ctx, productKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var product catalog.Product
	if err := json.Unmarshal(data, &product); err != nil {
		// A corrupt entry is treated as a miss and dropped
		_ = c.client.Del(ctx, productKeyPrefix+id.String()).Err()
		return nil, nil
	}

	return &product, nil
}

// Set stores a product for the configured TTL
func (c *RedisProductCache) Set(ctx context.Context, product *catalog.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productKeyPrefix+product.ID.String(), data, c.ttl).Err()
}

// Invalidate drops a product from the cache
func (c *RedisProductCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, productKeyPrefix+id.String()).Err()
}

var _ ProductCache = (*RedisProductCache)(nil)
