package domain

import "time"

// Role determines which percentage discount, if any, a principal is
// eligible for.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleCashier  Role = "CASHIER"
	RoleCustomer Role = "CUSTOMER"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleCashier, RoleCustomer:
		return true
	}
	return false
}

// Principal is the authenticated actor making a pricing request. It is
// supplied by the auth layer and passed explicitly into the core; the core
// never reads it from ambient state and never mutates it.
type Principal struct {
	UserID           string    `json:"userID"`
	Role             Role      `json:"role"`
	AccountCreatedAt time.Time `json:"accountCreatedAt"`
}
