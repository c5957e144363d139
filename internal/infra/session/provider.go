package session

import (
	"context"
	"log/slog"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/domain/constants"
	"github.com/thenextech/shoploc-back-end/internal/domain/lifecycle"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the SessionStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates the SessionStore selected by session.store.
func NewStore(params StoreParams) (repository.SessionStore, error) {
	cfg := params.Config.Session
	logger := params.Logger

	switch cfg.Store {
	case constants.SessionStoreMemory:
		logger.Info("Using in-memory session store")

		return NewMemoryStore(cfg.TTL), nil

	case constants.SessionStoreRedis:
		redisCfg := params.Config.Redis
		if redisCfg == nil || redisCfg.Addr == "" {
			return nil, errors.New("redis.addr is required for the redis session store")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping Redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				logger.Info("Closing Redis session store")

				return client.Close()
			},
		})

		logger.Info("Using Redis session store", slog.String("addr", redisCfg.Addr))

		return NewRedisStore(client, cfg.TTL, logger), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", cfg.Store)
	}
}

// Module provides the session store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
