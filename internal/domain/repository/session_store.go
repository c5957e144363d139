package repository

import (
	"context"
	"errors"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
)

// ErrSessionConflict is returned when an atomic update kept losing to concurrent writers.
var ErrSessionConflict = errors.New("session updated concurrently")

// SessionStore keeps the AuthState of each browser session, keyed by the
// session id carried in the cookie. Unknown ids load as entity.Anonymous.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (entity.AuthState, error)
	Save(ctx context.Context, sessionID string, state entity.AuthState) error
	Delete(ctx context.Context, sessionID string) error

	// Update applies fn to the current state and stores its result as one
	// atomic step. A nil state from fn leaves the stored state untouched. The
	// error from fn is returned unchanged, after any write.
	Update(ctx context.Context, sessionID string, fn func(entity.AuthState) (entity.AuthState, error)) error
}
