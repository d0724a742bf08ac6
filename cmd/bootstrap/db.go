package bootstrap

import (
	"context"
	"log/slog"

	"golden-key-funnel/internal/infra/db"
	"golden-key-funnel/internal/infra/redis"
	"golden-key-funnel/internal/infra/resultstore"
	"golden-key-funnel/internal/pkg/config"

	"go.uber.org/fx"
)

// StorageModule provides the two scopes of the result carrier. A disabled backend falls
// back to process memory so the funnel still runs on a single node.
var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.ResultTags(`name:"session"`),
		),
		fx.Annotate(
			NewDurableStore,
			fx.ResultTags(`name:"durable"`),
		),
	),
)

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (resultstore.Store, error) {
	if !cfg.Redis.Enabled {
		logger.Warn("redis disabled, session scope kept in memory")
		return resultstore.NewMemoryStore(resultstore.BySession), nil
	}

	client, err := redis.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return resultstore.NewSessionStore(client, cfg.ResultStore.SessionTTL, logger), nil
}

func NewDurableStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (resultstore.Store, error) {
	if !cfg.DB.Enabled {
		logger.Warn("database disabled, durable scope kept in memory")
		return resultstore.NewMemoryStore(resultstore.ByVisitor), nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return resultstore.NewDurableStore(pool, logger), nil
}
