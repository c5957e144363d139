// Package worker serves the Pub/Sub push endpoint of the notifier process.
package worker

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/delivery"
	"github.com/thenextech/shoploc-back-end/internal/delivery/middleware"
	"github.com/thenextech/shoploc-back-end/internal/delivery/worker/handler"
	"github.com/thenextech/shoploc-back-end/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Pub/Sub caps a push body at 10MB; order line events are far smaller.
	pushBodyLimit     = "1M"
	readHeaderTimeout = 5 * time.Second
)

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

type notifierServer struct {
	addr   string
	logger *slog.Logger
	http   *nethttp.Server
}

// NewServer exposes POST /push for the order line subscription and GET /health
// for the platform probe.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &notifierServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Worker.Port)),
		logger: params.Logger,
		http: &nethttp.Server{
			Handler:           routes(params),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}

	params.Lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv, nil
}

func routes(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func (s *notifierServer) Serve(context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.addr)
	}

	s.logger.Info("Notifier listening for push deliveries", slog.String("addr", ln.Addr().String()))
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return errors.Wrap(err, "notifier server stopped")
	}

	return nil
}

func (s *notifierServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Notifier shutting down")

	return errors.WithStack(s.http.Shutdown(ctx))
}
