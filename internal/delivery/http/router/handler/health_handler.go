package handler

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewHealthHandler(pool *sql.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: pool, logger: logger}
}

// Check answers 503 while the database cannot be reached, so the load
// balancer stops routing to this instance.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		deliverycontext.LoggerFrom(ctx, h.logger).Warn("Health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": "down"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "database": "up"})
}
