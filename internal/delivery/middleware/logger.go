package middleware

import (
	"log/slog"
	"time"

	"github.com/thenextech/shoploc-back-end/config"
	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes the access log. Requests answered with 4xx or 5xx
// are always logged, the rest only when env.debug is set.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle hands errors to the echo error handler itself so the logged status is final.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		level := levelForStatus(c.Response().Status)
		if level == slog.LevelInfo && !m.debug {
			return nil
		}

		req := c.Request()
		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
			slog.String("path", req.URL.Path),
			slog.Int("status", c.Response().Status),
			slog.Int64("bytes_out", c.Response().Size),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
			slog.String("session", string(deliverycontext.AuthState(c).Kind())),
		}
		if ua := req.UserAgent(); ua != "" {
			attrs = append(attrs, slog.String("user_agent", ua))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		// The context logger already carries request_id.
		deliverycontext.LoggerFrom(req.Context(), m.logger).LogAttrs(req.Context(), level, "http request", attrs...)

		return nil
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
