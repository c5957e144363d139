// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
)

// LoginInput defines the credentials submitted on the login form.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase drives the two-step login of one browser session:
// password check, emailed code, then Authenticated.
type AuthUsecase interface {
	// State returns the session's current AuthState.
	State(ctx context.Context, sessionID string) (entity.AuthState, error)
	// Login checks the credentials for role, emails a fresh code and moves the
	// session to PendingVerification. The session is unchanged on failure.
	Login(ctx context.Context, sessionID string, role entity.Role, input LoginInput) error
	// Verify compares code with the pending one and authenticates the session on match.
	Verify(ctx context.Context, sessionID string, role entity.Role, code string) error
	// Logout resets the session to Anonymous.
	Logout(ctx context.Context, sessionID string) error
}
