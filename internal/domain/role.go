package domain

import "fmt"

// Role is the authorization level of an account
type Role string

const (
	RoleUser  Role = "user"  // Regular player
	RoleAdmin Role = "admin" // Sets the target number
)

// ParseRole converts request input into a Role, empty meaning user
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "", RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}
