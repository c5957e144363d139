package service

import "github.com/thenextech/shoploc-back-end/internal/domain/entity"

// AuthMetrics records outcomes of the login flow.
type AuthMetrics interface {
	LoginAttempt(role entity.Role, success bool)
	VerificationAttempt(role entity.Role, success bool)
	Registration(role entity.Role, success bool)
}
