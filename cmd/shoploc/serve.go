package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/delivery"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/middleware"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/router/handler"
	"github.com/thenextech/shoploc-back-end/internal/infra/auth"
	logs "github.com/thenextech/shoploc-back-end/internal/infra/log"
	"github.com/thenextech/shoploc-back-end/internal/infra/mail"
	"github.com/thenextech/shoploc-back-end/internal/infra/metrics"
	"github.com/thenextech/shoploc-back-end/internal/infra/persistence/postgres"
	"github.com/thenextech/shoploc-back-end/internal/infra/pubsub"
	"github.com/thenextech/shoploc-back-end/internal/infra/qrcode"
	"github.com/thenextech/shoploc-back-end/internal/infra/session"
	"github.com/thenextech/shoploc-back-end/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			fx.New(
				injectInfra(),
				injectRepo(),
				injectService(),
				injectUsecase(),
				injectMiddleware(),
				injectHandler(),
				injectDelivery(),
				fx.Invoke(
					watchDBPool,
					startServer,
				),
			).Run()

			return nil
		},
	}
}

func watchDBPool(m *metrics.Metrics, pool *sql.DB) error {
	return m.WatchDB(pool)
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.Pool,
		),
		metrics.Module,
		session.Module,
		mail.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewOrderLineRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewCodeGenerator,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewOrderLineService,
			impl.NewStorefrontService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewMetricsMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewOrderLineHandler,
			handler.NewStorefrontHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
