package bootstrap

import (
	"context"
	"log/slog"

	"car-rental/internal/infra/cache"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore connects to Redis when REDIS_ADDR is set. Without it
// Idempotency-Key headers are accepted but not enforced.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.IdempotencyStore, error) {
	if !cfg.Redis.Enabled() {
		logger.Warn("REDIS_ADDR not set, idempotency keys are ignored")
		return cache.NoopIdempotencyStore{}, nil
	}

	rdb, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	logger.Info("idempotency store connected", "addr", cfg.Redis.Addr)
	return cache.NewRedisIdempotencyStore(rdb, cfg), nil
}
