// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an account of either role. Exactly one of Client or Merchant is set,
// matching Role.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string // Unique across both roles.
	Birthday     *time.Time
	PasswordHash string
	Role         Role
	Client       *ClientProfile   // Set when Role is RoleClient.
	Merchant     *MerchantProfile // Set when Role is RoleMerchant.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClientProfile holds data specific to the client role.
type ClientProfile struct {
	Phone         string
	LoyaltyPoints int
}

// MerchantProfile holds data specific to the merchant role.
type MerchantProfile struct {
	StoreName string
	Address   string
	Phone     string
}

// IsClient reports whether the user is a client account.
func (u *User) IsClient() bool {
	return u != nil && u.Role == RoleClient
}

// IsMerchant reports whether the user is a merchant account.
func (u *User) IsMerchant() bool {
	return u != nil && u.Role == RoleMerchant
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
