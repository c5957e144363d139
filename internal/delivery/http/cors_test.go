package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func preflight(mw echo.MiddlewareFunc, origin string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(mw)
	e.POST("/client/login", func(c echo.Context) error { return c.NoContent(nethttp.StatusOK) })

	req := httptest.NewRequest(nethttp.MethodOptions, "/client/login", nil)
	req.Header.Set(echo.HeaderOrigin, origin)
	req.Header.Set(echo.HeaderAccessControlRequestMethod, nethttp.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestCORS_ListedOriginGetsCredentials(t *testing.T) {
	rec := preflight(cors([]string{"https://shoploc.example"}), "https://shoploc.example")

	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	assert.Equal(t, "https://shoploc.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestCORS_UnlistedOriginIsNotEchoed(t *testing.T) {
	rec := preflight(cors([]string{"https://shoploc.example"}), "https://evil.example")

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORS_DefaultAllowsAnyOriginWithoutCredentials(t *testing.T) {
	rec := preflight(cors(nil), "https://anywhere.example")

	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}
