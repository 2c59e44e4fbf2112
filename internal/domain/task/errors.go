package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrCommentNotFound   = errors.New("task comment not found")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInvalidPriority   = errors.New("invalid task priority")
	ErrAssigneeNotMember = errors.New("assignee is not a member of this project")
	ErrUnauthorized      = errors.New("unauthorized to modify this task")
)
