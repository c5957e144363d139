package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func checkHealth(db Pinger) *httptest.ResponseRecorder {
	h := &HealthHandler{db: db, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	_ = h.Check(c)

	return rec
}

func TestHealthHandler_Up(t *testing.T) {
	rec := checkHealth(pingFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)

		return nil
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	rec := checkHealth(pingFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") }))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable","database":"down"}`, rec.Body.String())
}
