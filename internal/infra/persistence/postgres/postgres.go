// Package postgres stores users, catalog and orders through GORM.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/domain/lifecycle"
	"github.com/thenextech/shoploc-back-end/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and replica connections and ties the pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}
	conn.Config.TranslateError = true

	// Use cases that need atomicity open their own transaction through txManager.
	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config.Env.Debug),
	})

	pool, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to access postgres pool")
	}

	watch := &poolWatcher{pool: pool, logger: params.Logger, interval: poolCheckInterval}
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()
			if err := pool.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "failed to ping postgres")
			}
			watch.start()

			return nil
		},
		OnStop: func(context.Context) error {
			watch.stop()

			return pool.Close()
		},
	})

	return db, nil
}

// Pool exposes the database/sql pool behind db for health checks and metrics.
func Pool(db *gorm.DB) (*sql.DB, error) {
	pool, err := db.DB()

	return pool, errors.Wrap(err, "failed to access postgres pool")
}

// Migrate creates or updates the shoploc tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return errors.Wrap(db.WithContext(ctx).AutoMigrate(model.All()...), "failed to migrate schema")
}

// poolWatcher logs when requests had to queue for a free connection.
type poolWatcher struct {
	pool     *sql.DB
	logger   *slog.Logger
	interval time.Duration
	cancel   context.CancelFunc
}

func (w *poolWatcher) start() {
	if w.logger == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go w.run(ctx)
}

func (w *poolWatcher) stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *poolWatcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.pool.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := w.pool.Stats()
			w.report(ctx, last, now)
			last = now
		}
	}
}

func (w *poolWatcher) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "postgres pool saturated",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
