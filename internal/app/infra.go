package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/sorriso_backend/config"
	"github.com/Alijeyrad/sorriso_backend/internal/store"
	"github.com/Alijeyrad/sorriso_backend/pkg/observability"
	redispkg "github.com/Alijeyrad/sorriso_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideMetrics),
	fx.Provide(ProvideStore),
)

// ProvideRedis returns nil when redis is disabled.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	rdb, err := redispkg.NewRedis(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideStore(lc fx.Lifecycle, cfg *config.Config, rdb *redis.Client) (store.Store, error) {
	var client redis.UniversalClient
	if rdb != nil {
		client = rdb
	}

	st, err := store.Open(cfg.Storage, cfg.Storage.Driver, client)
	if err != nil {
		return nil, err
	}
	slog.Info("document store ready",
		"driver", cfg.Storage.Driver,
		"encrypted", cfg.Storage.EncryptionKey != "",
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return st.Close()
		},
	})
	return st, nil
}

// ProvideOTel returns nil when observability is disabled.
func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), cfg.Observability, cfg.Server.Environment)
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

// ProvideMetrics depends on the provider so instruments bind to the real
// meter provider when one is installed.
func ProvideMetrics(_ *observability.Provider) (*observability.DiaryMetrics, error) {
	return observability.NewDiaryMetrics()
}
