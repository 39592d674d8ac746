package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/salespulse/backend/internal/infrastructure/config"
)

// NewStore creates the cache store selected by configuration. When the
// redis backend is requested but unreachable, it falls back to the
// in-memory store unless fallback is disabled.
func NewStore(cfg config.CacheConfig, redisCfg config.RedisConfig, logger *zap.Logger, allowFallback bool) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case "redis":
		store, err := NewRedisStore(redisCfg)
		if err != nil {
			if !allowFallback {
				return nil, fmt.Errorf("failed to create Redis cache store: %w", err)
			}
			logger.Warn("Redis unavailable, falling back to in-memory cache",
				zap.String("addr", redisCfg.Addr()),
				zap.Error(err),
			)
			return NewInMemoryStore(), nil
		}
		logger.Info("Using Redis cache store", zap.String("addr", redisCfg.Addr()))
		return store, nil

	case "memory":
		return NewInMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
