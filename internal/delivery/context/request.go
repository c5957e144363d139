// Package context carries per-request values between echo middleware,
// handlers and the services they call.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type key string

const (
	keyRequestID key = "request_id"
	keyLogger    key = "logger"
	keySessionID key = "session_id"
	keyAuthState key = "auth_state"
)

// HeaderXRequestID carries the correlation id across the API, the publisher and the worker.
const HeaderXRequestID = "X-Request-Id"

// WithRequest returns ctx tagged with requestID and a logger bound to it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, keyRequestID, requestID)

	return context.WithValue(ctx, keyLogger, logger.With(slog.String("request_id", requestID)))
}

// BindRequest tags both the echo context and its request context with requestID.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(keyRequestID), requestID)
	c.SetRequest(c.Request().WithContext(WithRequest(c.Request().Context(), requestID, logger)))
}

// RequestID returns the id bound by BindRequest, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

// RequestIDFrom returns the id stored by WithRequest, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// LoggerFrom returns the request logger stored in ctx, or fallback.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
