package task

import "time"

type Task struct {
	ID             string
	ProjectID      string
	AssigneeID     *string
	CreatedBy      string
	Title          string
	Description    *string
	Status         Status
	Priority       Priority
	Progress       int
	EstimatedHours *float64
	DueDate        *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
)

// BoardColumns is the Kanban column order.
var BoardColumns = []Status{
	StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusCompleted,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// TaskWithDetails joins display names for list and board views.
type TaskWithDetails struct {
	Task
	ProjectName  string
	AssigneeName *string
	CreatorName  string
}

type Comment struct {
	ID         string
	TaskID     string
	EmployeeID string
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CommentWithAuthor struct {
	Comment
	AuthorName string
}
