package main

import (
	"context"
	"log/slog"

	"github.com/thenextech/shoploc-back-end/config"
	logs "github.com/thenextech/shoploc-back-end/internal/infra/log"
	"github.com/thenextech/shoploc-back-end/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				db     *gorm.DB
				logger *slog.Logger
			)

			app := fx.New(
				fx.NopLogger,
				fx.Provide(
					config.New,
					logs.New,
					postgres.New,
				),
				fx.Populate(&db, &logger),
			)
			if err := app.Err(); err != nil {
				return errors.Wrap(err, "failed to build migration dependencies")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if err := app.Start(ctx); err != nil {
				return errors.Wrap(err, "failed to connect to the database")
			}
			defer func() {
				if err := app.Stop(context.Background()); err != nil {
					logger.Warn("Failed to close database", slog.Any("error", err))
				}
			}()

			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			logger.Info("Schema migrated")

			return nil
		},
	}
}
