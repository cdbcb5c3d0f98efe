package domain

import "strings"

// Role identifies what kind of account a user holds. It is assigned once at
// registration and embedded in every token; authorization decisions read it
// from the token only.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleCustomer   Role = "CUSTOMER"
	RoleRestaurant Role = "RESTAURANT"
	RoleDelivery   Role = "DELIVERY"
)

// ParseRole maps a request-supplied string onto the closed role set.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(value)))
	switch role {
	case RoleAdmin, RoleCustomer, RoleRestaurant, RoleDelivery:
		return role, true
	}
	return "", false
}

// Valid reports whether the role belongs to the closed set. Used when
// validating roles decoded from tokens.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}
