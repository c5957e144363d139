// Command notifier receives order line events pushed by Pub/Sub and emails
// the merchant who owns the ordered product.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/delivery"
	"github.com/thenextech/shoploc-back-end/internal/delivery/worker"
	"github.com/thenextech/shoploc-back-end/internal/delivery/worker/handler"
	logs "github.com/thenextech/shoploc-back-end/internal/infra/log"
	"github.com/thenextech/shoploc-back-end/internal/infra/mail"
	"github.com/thenextech/shoploc-back-end/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

func main() {
	fx.New(notifier(), fx.Invoke(runDeliveries)).Run()
}

// notifier needs only the user table, to look up the merchant's address.
func notifier() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewUserRepository,
			handler.NewPushHandler,
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		mail.Module,
	)
}

type deliveriesParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// runDeliveries exits the process with code 1 when a server cannot keep serving.
func runDeliveries(ctx context.Context, params deliveriesParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			params.Logger.Error("Notifier stopped serving", slog.Any("error", err))
			if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				os.Exit(1)
			}
		}()
	}
}
