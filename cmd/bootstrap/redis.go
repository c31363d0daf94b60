package bootstrap

import (
	"context"
	"log/slog"

	"sinistro-sync/internal/infra/cache"
	"sinistro-sync/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCacheStore,
	),
)

// NewCacheStore returns a Redis-backed store when REDIS_ADDR is set and a
// no-op store otherwise.
func NewCacheStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.Store {
	if !cfg.Redis.Enabled() {
		logger.Info("redis not configured, pipeline cache disabled")
		return cache.NopStore{}
	}

	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// an unreachable cache only degrades to direct API calls
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisStore(client)
}
