package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles. Only RoleAdmin and RoleHOD are valid.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleHOD   Role = "HOD"
)

// Roles lists every valid role
var Roles = []Role{RoleAdmin, RoleHOD}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHOD:
		return true
	default:
		return false
	}
}

// ParseRole converts a raw string into a Role, rejecting unknown values
func ParseRole(raw string) (Role, error) {
	role := Role(strings.TrimSpace(raw))
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return role, nil
}

// DefaultCycle is used when a contribution is submitted without a cycle
const DefaultCycle = "default"
