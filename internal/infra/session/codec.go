// Package session implements repository.SessionStore in memory and on Redis.
package session

import (
	"encoding/json"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// record is the stored form of an AuthState. Kind selects which fields apply.
type record struct {
	Kind     entity.AuthStateKind `json:"kind"`
	Email    string               `json:"email,omitempty"`
	Role     entity.Role          `json:"role,omitempty"`
	Code     string               `json:"code,omitempty"`
	IssuedAt time.Time            `json:"issued_at,omitzero"`
	Attempts int                  `json:"attempts,omitempty"`
	UserID   int64                `json:"user_id,omitempty"`
}

func encodeState(state entity.AuthState) ([]byte, error) {
	var rec record

	switch s := entity.StateOrAnonymous(state).(type) {
	case entity.Anonymous:
		rec.Kind = entity.AuthStateAnonymous
	case entity.PendingVerification:
		rec = record{
			Kind:     entity.AuthStatePending,
			Email:    s.UserEmail,
			Role:     s.Role,
			Code:     s.Code,
			IssuedAt: s.IssuedAt,
			Attempts: s.Attempts,
		}
	case entity.Authenticated:
		rec = record{
			Kind:   entity.AuthStateAuthenticated,
			Email:  s.UserEmail,
			Role:   s.Role,
			UserID: s.UserID,
		}
	default:
		return nil, errors.Errorf("unsupported auth state %T", state)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "marshal auth state")
	}

	return data, nil
}

func decodeState(data []byte) (entity.AuthState, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(err, "unmarshal auth state")
	}

	switch rec.Kind {
	case entity.AuthStateAnonymous:
		return entity.Anonymous{}, nil
	case entity.AuthStatePending:
		return entity.PendingVerification{
			UserEmail: rec.Email,
			Role:      rec.Role,
			Code:      rec.Code,
			IssuedAt:  rec.IssuedAt,
			Attempts:  rec.Attempts,
		}, nil
	case entity.AuthStateAuthenticated:
		return entity.Authenticated{
			UserEmail: rec.Email,
			Role:      rec.Role,
			UserID:    rec.UserID,
		}, nil
	default:
		return nil, errors.Errorf("unknown auth state kind %q", rec.Kind)
	}
}
