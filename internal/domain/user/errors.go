package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrUserInactive          = errors.New("user account is deactivated")
	ErrInvalidRole           = errors.New("invalid role")
	ErrAdminAccessRequired   = errors.New("admin role required")
	ErrAdminOrHRRequired     = errors.New("admin or HR role required")
	ErrManagerAccessRequired = errors.New("manager role or higher required")
)
