package domain

import "fmt"

// Role is the fixed capability class of an account. The set is closed:
// the three values below are seeded once and never created at runtime.
type Role string

const (
	RoleUser    Role = "USER"
	RoleSupport Role = "SUPPORT"
	RoleManager Role = "MANAGER"
)

// Roles lists every valid role.
var Roles = []Role{RoleUser, RoleSupport, RoleManager}

// Valid reports whether r is one of the three seeded roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleSupport, RoleManager:
		return true
	}
	return false
}

// ParseRole resolves a role by name.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}
