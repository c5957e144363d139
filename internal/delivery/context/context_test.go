package context

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindRequest(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	c := newEchoContext()
	assert.Empty(t, RequestID(c))

	BindRequest(c, "req-1", base)

	assert.Equal(t, "req-1", RequestID(c))
	ctx := c.Request().Context()
	assert.Equal(t, "req-1", RequestIDFrom(ctx))

	LoggerFrom(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestLoggerFromFallsBack(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestAuthStateDefaultsToAnonymous(t *testing.T) {
	c := newEchoContext()
	assert.Equal(t, entity.AuthStateAnonymous, AuthState(c).Kind())
	assert.Empty(t, SessionID(c))

	BindSession(c, "sid", entity.Authenticated{UserEmail: "a@x.com", Role: entity.RoleClient, UserID: 3})

	assert.Equal(t, "sid", SessionID(c))
	assert.True(t, AuthState(c).IsAuthenticatedAs(entity.RoleClient))

	BindSession(c, "sid", nil)
	assert.Equal(t, entity.AuthStateAnonymous, AuthState(c).Kind())
}
