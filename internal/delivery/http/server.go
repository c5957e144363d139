// Package http serves the shoploc JSON API.
package http

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"strconv"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/delivery"
	sharedmiddleware "github.com/thenextech/shoploc-back-end/internal/delivery/middleware"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/middleware"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/router"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/validator"
	"github.com/thenextech/shoploc-back-end/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc                fx.Lifecycle
	Cfg               *config.Config
	Logger            *slog.Logger
	ErrorMiddleware   *middleware.ErrorMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
	RouterParams      router.RouterParams
}

type apiServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger,
		echo:   NewEcho(params),
	}
	params.Lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv, nil
}

// NewEcho returns the API with its middleware chain and every route registered.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	e.Validator = validator.New()

	timeouts := params.Cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(chain(params)...)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

// chain is applied in order. The metrics and logger middlewares render errors
// themselves, so the status they record is the one sent to the client.
func chain(params ServerParams) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echomiddleware.Recover(),
		sharedmiddleware.NewRequestIDMiddleware(params.Logger).Process,
		params.MetricsMiddleware.Handle,
		sharedmiddleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		cors(params.Cfg.HTTP.AllowedOrigins),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
	}
}

// cors lets the listed front ends send the session cookie. Without a list any
// origin may call the API, but browsers will not attach credentials.
func cors(origins []string) echo.MiddlewareFunc {
	if len(origins) == 0 {
		return echomiddleware.CORS()
	}

	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderXRequestID},
	})
}

func (s *apiServer) Serve(context.Context) error {
	s.logger.Info("API listening", slog.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return errors.Wrap(err, "api server stopped")
	}

	return nil
}

func (s *apiServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("API shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
