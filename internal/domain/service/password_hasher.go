// Package service declares the domain capabilities backed by infrastructure:
// hashing, login codes, QR codes, mail and event publishing.
package service

// PasswordHasher stores and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password produced hash.
	Check(password, hash string) bool
	// ValidatePasswordStrength enforces the registration password policy.
	ValidatePasswordStrength(password string) error
}
