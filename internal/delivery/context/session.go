package context

import (
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// BindSession records the session id and its state for the current request.
func BindSession(c echo.Context, sessionID string, state entity.AuthState) {
	c.Set(string(keySessionID), sessionID)
	c.Set(string(keyAuthState), entity.StateOrAnonymous(state))
}

// SessionID returns the id bound by BindSession, or "" outside role groups.
func SessionID(c echo.Context) string {
	id, _ := c.Get(string(keySessionID)).(string)

	return id
}

// AuthState returns the state bound by BindSession. Unbound requests are Anonymous.
func AuthState(c echo.Context) entity.AuthState {
	state, _ := c.Get(string(keyAuthState)).(entity.AuthState)

	return entity.StateOrAnonymous(state)
}
