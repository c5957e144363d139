// Package entity holds the shoploc business objects: accounts, catalog and orders.
package entity

// Role separates shoppers from shop owners. It is fixed at registration.
type Role string

const (
	RoleClient   Role = "client"
	RoleMerchant Role = "merchant"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleClient || r == RoleMerchant
}

// Roles lists every valid role, in route registration order.
func Roles() []Role {
	return []Role{RoleClient, RoleMerchant}
}
