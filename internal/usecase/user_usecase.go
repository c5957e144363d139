package usecase

import (
	"context"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register an account of either role.
type RegisterInput struct {
	Role      entity.Role
	FirstName string
	LastName  string
	Email     string
	Password  string
	Birthday  *time.Time
	Phone     string
	StoreName string // Merchant only
	Address   string // Merchant only
}

// UpdateProfileInput defines the editable profile fields. Empty strings keep the stored value.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Birthday  *time.Time
	Phone     string
	StoreName string
	Address   string
}

// --- Output DTOs ---

// UserOutput is the public view of an account, never carrying the password hash.
type UserOutput struct {
	ID            int64       `json:"userId"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Email         string      `json:"email"`
	Birthday      string      `json:"birthday,omitempty"`
	Role          entity.Role `json:"role"`
	Phone         string      `json:"phone,omitempty"`
	LoyaltyPoints *int        `json:"loyaltyPoints,omitempty"`
	StoreName     string      `json:"storeName,omitempty"`
	Address       string      `json:"address,omitempty"`
}

// UserUsecase defines registration and profile management.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*UserOutput, error)
	GetUser(ctx context.Context, userID int64) (*UserOutput, error)
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*UserOutput, error)
	// DeleteAccount removes the user with its orders and their lines.
	DeleteAccount(ctx context.Context, userID int64) error
}
