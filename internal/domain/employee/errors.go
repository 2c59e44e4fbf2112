package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrProfileNotFound     = errors.New("employee profile not found for current user")
	ErrEmployeeCodeExists  = errors.New("employee code already exists")
	ErrUserAlreadyLinked   = errors.New("user already has an employee profile")
	ErrManagerNotFound     = errors.New("manager not found")
	ErrInvalidGender       = errors.New("gender must be male, female or other")
	ErrUnauthorized        = errors.New("unauthorized to access this employee")
	ErrCannotDeleteSelf    = errors.New("cannot delete your own employee record")
	ErrFutureJoiningDate   = errors.New("date of joining cannot be in the future")
)
