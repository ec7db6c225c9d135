package cache

import (
	"context"

	"go.uber.org/zap"

	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/erp/orderflow/internal/infrastructure/config"
)

// NewIdempotencyStore returns a Redis store when Redis is enabled and reachable,
// and a MemoryStore otherwise
func NewIdempotencyStore(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) shared.IdempotencyStore {
	if !cfg.Enabled {
		logger.Info("using in-memory idempotency store")
		return NewMemoryStore()
	}

	store, err := NewRedisStore(ctx, cfg)
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-memory idempotency store",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewMemoryStore()
	}

	logger.Info("using redis idempotency store", zap.String("addr", cfg.Addr()))
	return store
}
