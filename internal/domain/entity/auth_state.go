package entity

import "time"

// AuthStateKind discriminates the variants of AuthState.
type AuthStateKind string

const (
	AuthStateAnonymous     AuthStateKind = "anonymous"
	AuthStatePending       AuthStateKind = "pending"
	AuthStateAuthenticated AuthStateKind = "authenticated"
)

// AuthState is the login state attached to one browser session. It is one of
// Anonymous, PendingVerification or Authenticated.
type AuthState interface {
	Kind() AuthStateKind
	// IsAuthenticatedAs reports whether the session completed verification for role.
	IsAuthenticatedAs(role Role) bool
	// Email returns the email bound to the session, empty when anonymous.
	Email() string

	sealed()
}

// Anonymous is a session with no login in progress.
type Anonymous struct{}

func (Anonymous) Kind() AuthStateKind           { return AuthStateAnonymous }
func (Anonymous) IsAuthenticatedAs(_ Role) bool { return false }
func (Anonymous) Email() string                 { return "" }
func (Anonymous) sealed()                       {}

// PendingVerification is a session whose password check passed and which
// waits for the emailed code.
type PendingVerification struct {
	UserEmail string
	Role      Role
	Code      string
	IssuedAt  time.Time
	Attempts  int
}

func (PendingVerification) Kind() AuthStateKind           { return AuthStatePending }
func (PendingVerification) IsAuthenticatedAs(_ Role) bool { return false }
func (p PendingVerification) Email() string               { return p.UserEmail }
func (PendingVerification) sealed()                       {}

// Expired reports whether the code is older than ttl. A non-positive ttl never expires.
func (p PendingVerification) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}

	return now.Sub(p.IssuedAt) > ttl
}

// SameCode reports whether p and other were issued by the same login.
func (p PendingVerification) SameCode(other PendingVerification) bool {
	return p.UserEmail == other.UserEmail && p.Role == other.Role &&
		p.Code == other.Code && p.IssuedAt.Equal(other.IssuedAt)
}

// Authenticated is a session that completed both login steps.
type Authenticated struct {
	UserEmail string
	Role      Role
	UserID    int64
}

func (Authenticated) Kind() AuthStateKind                { return AuthStateAuthenticated }
func (a Authenticated) IsAuthenticatedAs(role Role) bool { return a.Role == role }
func (a Authenticated) Email() string                    { return a.UserEmail }
func (Authenticated) sealed()                            {}

// StateOrAnonymous maps a nil state to Anonymous.
func StateOrAnonymous(state AuthState) AuthState {
	if state == nil {
		return Anonymous{}
	}

	return state
}
