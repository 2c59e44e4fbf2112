package task

import "context"

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (TaskWithDetails, error)
	Create(ctx context.Context, t Task) (Task, error)
	Update(ctx context.Context, t Task) error
	Delete(ctx context.Context, id string) error
	// List returns tasks matching the filter. When visibleTo is non-empty,
	// results are limited to projects that employee created or belongs to.
	List(ctx context.Context, filter TaskFilter, visibleTo string) ([]TaskWithDetails, int64, error)
	// ListByProject returns every task of one project ordered by priority
	// then creation time; used for the board view.
	ListByProject(ctx context.Context, projectID string) ([]TaskWithDetails, error)
}

type CommentRepository interface {
	GetComment(ctx context.Context, id string) (Comment, error)
	ListComments(ctx context.Context, taskID string) ([]CommentWithAuthor, error)
	CreateComment(ctx context.Context, c Comment) (Comment, error)
	UpdateComment(ctx context.Context, id string, text string) error
	DeleteComment(ctx context.Context, id string) error
}
