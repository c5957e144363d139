// Package middleware contains the echo middleware of the shoploc API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/thenextech/shoploc-back-end/config"
	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/infra/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware binds each request to a server-side session through the
// session cookie and loads its AuthState.
type SessionMiddleware struct {
	store  repository.SessionStore
	cfg    *config.SessionConfig
	logger *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(store repository.SessionStore, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{store: store, cfg: cfg.Session, logger: logger}
}

// Load issues a session id when the request has none, refreshes the cookie
// and stores the session id and AuthState on the echo context.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := ""
		if cookie, err := c.Cookie(m.cfg.CookieName); err == nil {
			if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
				sessionID = cookie.Value
			}
		}
		if sessionID == "" {
			sessionID = session.NewID()
		}

		c.SetCookie(&http.Cookie{
			Name:     m.cfg.CookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(m.cfg.TTL.Seconds()),
			HttpOnly: true,
			Secure:   m.cfg.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		state, err := m.store.Load(c.Request().Context(), sessionID)
		if err != nil {
			return errors.Wrap(err, "failed to load session")
		}

		deliverycontext.BindSession(c, sessionID, state)

		return next(c)
	}
}

// RequireRole rejects the request with 401 and the role's login url unless
// the session completed verification for role. It must run after Load.
func (m *SessionMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deliverycontext.AuthState(c).IsAuthenticatedAs(role) {
				return next(c)
			}

			body := domainerrors.NewErrorResponse(domainerrors.ErrUnauthorized)
			body.URL = "/" + role.String() + "/login"

			return c.JSON(http.StatusUnauthorized, body)
		}
	}
}
