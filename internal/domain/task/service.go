package task

import "context"

type TaskService interface {
	// ListTasks lists tasks with filters, scoped to projects the caller can see.
	ListTasks(ctx context.Context, filter TaskFilter) (ListTaskResponse, error)

	// Board groups a project's tasks into Kanban columns by status.
	Board(ctx context.Context, projectID string) (BoardResponse, error)

	// GetTask returns one task.
	GetTask(ctx context.Context, id string) (TaskResponse, error)

	// CreateTask creates a task in a project the caller can write to;
	// the assignee must belong to that project.
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)

	// UpdateTask applies the permission cascade: admin/hr, project manager,
	// project creator and task creator edit everything; assignees only
	// status, progress and estimated hours.
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)

	// DeleteTask removes a task (admin/hr, project manager, project creator
	// or task creator).
	DeleteTask(ctx context.Context, id string) error

	// ListComments returns a task's comments oldest first.
	ListComments(ctx context.Context, taskID string) ([]CommentResponse, error)

	// AddComment posts a comment as the current employee.
	AddComment(ctx context.Context, req CommentRequest) (CommentResponse, error)

	// UpdateComment edits a comment (author only).
	UpdateComment(ctx context.Context, req CommentRequest) (CommentResponse, error)

	// DeleteComment removes a comment (author or admin/hr).
	DeleteComment(ctx context.Context, taskID, commentID string) error
}
