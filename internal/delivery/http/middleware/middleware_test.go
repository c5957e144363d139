package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/thenextech/shoploc-back-end/config"
	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/infra/session"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   domainerrors.ErrorResponse
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrLogin, "login"),
			wantStatus: http.StatusUnauthorized,
			wantBody:   domainerrors.ErrorResponse{Error: "Identifiant ou mot de passe incorrect", Code: "LOGIN_ERROR"},
		},
		{
			name:       "not found",
			err:        domainerrors.NewNotFoundError(domainerrors.EntityProduct, 8),
			wantStatus: http.StatusNotFound,
			wantBody:   domainerrors.ErrorResponse{Error: "Product not found with ID: 8", Code: "PRODUCT_NOT_FOUND"},
		},
		{
			name:       "echo client error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   domainerrors.ErrorResponse{Error: "Method Not Allowed", Code: "HTTP_ERROR"},
		},
		{
			name:       "echo error without text",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, errors.New("too big")),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   domainerrors.ErrorResponse{Error: "Request Entity Too Large", Code: "HTTP_ERROR"},
		},
		{
			name:       "echo server error hides cause",
			err:        echo.NewHTTPError(http.StatusBadGateway, "upstream at 10.0.0.3 refused"),
			wantStatus: http.StatusBadGateway,
			wantBody:   domainerrors.ErrorResponse{Error: domainerrors.ErrInternalError.Message(), Code: "HTTP_ERROR"},
		},
		{
			name:       "plain error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   domainerrors.NewErrorResponse(domainerrors.ErrInternalError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := translate(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestHandleHTTPError_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/client/dashboard", nil), rec)

	NewErrorMiddleware(discard()).HandleHTTPError(domainerrors.ErrUnauthorized, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleHTTPError_LogsClientErrorDetails(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/merchant/category?id=3", nil), rec)

	err := errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("category still has products"), "failed to delete category")
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "category still has products")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Request rejected", entry["msg"])
	assert.Equal(t, "VALIDATION_FAILED", entry["code"])
	assert.Equal(t, "category still has products", entry["details"])
	assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
}

type sessionFixture struct {
	store *session.MemoryStore
	mw    *SessionMiddleware
	e     *echo.Echo
}

func newSessionFixture() *sessionFixture {
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: "SID", TTL: time.Hour}}
	f := &sessionFixture{store: session.NewMemoryStore(time.Hour), e: echo.New()}
	f.mw = NewSessionMiddleware(f.store, cfg, discard())

	f.e.Use(f.mw.Load)
	f.e.GET("/merchant/dashboard", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.SessionID(c))
	}, f.mw.RequireRole(entity.RoleMerchant))

	return f
}

func (f *sessionFixture) get(cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/merchant/dashboard", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func TestSessionMiddleware_AnonymousGetsLoginURL(t *testing.T) {
	f := newSessionFixture()

	rec := f.get(nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHORIZED_ERROR", body.Code)
	assert.Equal(t, "/merchant/login", body.URL)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "SID", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddleware_ReusesAuthenticatedSession(t *testing.T) {
	f := newSessionFixture()
	id := session.NewID()
	require.NoError(t, f.store.Save(context.Background(), id, entity.Authenticated{
		UserEmail: "shop@x.com",
		Role:      entity.RoleMerchant,
		UserID:    4,
	}))

	rec := f.get(&http.Cookie{Name: "SID", Value: id})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, rec.Body.String())
}

func TestSessionMiddleware_WrongRoleOrForgedCookie(t *testing.T) {
	f := newSessionFixture()
	id := session.NewID()
	require.NoError(t, f.store.Save(context.Background(), id, entity.Authenticated{
		UserEmail: "me@x.com",
		Role:      entity.RoleClient,
		UserID:    2,
	}))

	assert.Equal(t, http.StatusUnauthorized, f.get(&http.Cookie{Name: "SID", Value: id}).Code)

	rec := f.get(&http.Cookie{Name: "SID", Value: "not-a-uuid"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEqual(t, "not-a-uuid", rec.Result().Cookies()[0].Value)
}
