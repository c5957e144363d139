// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user of any role.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmailAndRole retrieves the account registered with email under role.
	FindByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.User, error)

	// ExistsByEmail reports whether any account already uses email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user and fills its ID.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies names, birthday and role profile of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user together with its orders and their lines.
	Delete(ctx context.Context, id int64) error
}
