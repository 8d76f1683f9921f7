package cache

import (
	"time"

	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewProductCache builds the product cache from configuration. Redis is used
// when enabled and reachable; otherwise the process-local cache serves.
func NewProductCache(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) ProductCache {
	if !cfg.Enabled {
		return NewInMemoryProductCache(ttl)
	}

	redisCache, err := NewRedisProductCache(cfg, ttl)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory product cache", zap.Error(err))
		return NewInMemoryProductCache(ttl)
	}

	logger.Info("using redis product cache", zap.String("addr", cfg.Addr()))
	return redisCache
}
