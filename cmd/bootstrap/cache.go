package bootstrap

import (
	"context"
	"log/slog"

	"parkbuddy/internal/infra/cache"
	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewStatsCache,
	),
)

// NewStatsCache returns nil when REDIS_ADDR is unset; stats are then read
// straight from the store.
func NewStatsCache(lc fx.Lifecycle, cfg config.Config) (queries.StatsCache, error) {
	if !cfg.Cache.Enabled() {
		slog.Info("stats cache disabled")
		return nil, nil
	}

	rdb, err := cache.NewClient(context.Background(), cfg.Cache)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	slog.Info("stats cache enabled", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL)
	return cache.NewRedisCache(rdb, cache.WithPrefix(cfg.Cache.Prefix), cache.WithTTL(cfg.Cache.TTL)), nil
}
