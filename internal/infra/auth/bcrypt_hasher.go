// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode/utf8"

	"github.com/thenextech/shoploc-back-end/config"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt rejects inputs longer than 72 bytes.
const maxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher builds the hasher from auth.bcryptCost and passwordPolicy.minLength.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	minLength := 0
	if cfg.PasswordPolicy != nil {
		minLength = cfg.PasswordPolicy.MinLength
	}

	return NewBcryptHasherWithCost(cost, minLength)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost and minimum length.
func NewBcryptHasherWithCost(cost, minLength int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, minLength: minLength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the minimum length and the bcrypt input limit.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return errors.WithStack(domainerrors.ErrRegister.WithDetails(
			fmt.Sprintf("password must be at least %d characters long", h.minLength),
		))
	}
	if len(password) > maxPasswordBytes {
		return errors.WithStack(domainerrors.ErrRegister.WithDetails(
			fmt.Sprintf("password must be at most %d bytes long", maxPasswordBytes),
		))
	}

	return nil
}
