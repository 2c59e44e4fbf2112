package user

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ValidRoles lists every role accepted on registration.
var ValidRoles = []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

func IsValidRole(r string) bool {
	for _, role := range ValidRoles {
		if string(role) == r {
			return true
		}
	}
	return false
}

// IsElevated reports whether the role bypasses ownership checks.
// Admin and HR can act on any employee's records.
func IsElevated(r Role) bool {
	return r == RoleAdmin || r == RoleHR
}

// IsManagerial reports whether the role may review team-scoped resources.
func IsManagerial(r Role) bool {
	return r == RoleManager || IsElevated(r)
}
