package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrMemberExists    = errors.New("employee is already a member of this project")
	ErrMemberNotFound  = errors.New("project member not found")
	ErrInvalidStatus   = errors.New("invalid project status")
	ErrInvalidRole     = errors.New("member role must be project_manager, team_lead or member")
	ErrUnauthorized    = errors.New("unauthorized to modify this project")
)
