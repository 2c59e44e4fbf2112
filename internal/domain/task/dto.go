package task

import "github.com/corestack-app/corestack-backend-go/internal/pkg/validator"

var (
	validStatuses   = []string{"backlog", "todo", "in_progress", "review", "completed"}
	validPriorities = []string{"low", "medium", "high", "urgent"}
)

type CreateTaskRequest struct {
	ProjectID      string   `json:"project_id"`
	Title          string   `json:"title"`
	Description    *string  `json:"description,omitempty"`
	AssigneeID     *string  `json:"assignee_id,omitempty"`
	Status         string   `json:"status,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	Progress       int      `json:"progress,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 200 characters",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of backlog, todo, in_progress, review, completed",
		})
	}
	if r.Priority != "" && !validator.IsInSlice(r.Priority, validPriorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of low, medium, high, urgent",
		})
	}

	if r.Progress < 0 || r.Progress > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if r.EstimatedHours != nil && *r.EstimatedHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "estimated_hours",
			Message: "estimated_hours must not be negative",
		})
	}

	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskRequest struct {
	ID             string   `json:"-"`
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	AssigneeID     *string  `json:"assignee_id,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Priority       *string  `json:"priority,omitempty"`
	Progress       *int     `json:"progress,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
}

// RestrictToAssigneeFields drops every field an assignee may not change.
// Assignees can only move status, progress and estimated hours.
func (r *UpdateTaskRequest) RestrictToAssigneeFields() {
	r.Title = nil
	r.Description = nil
	r.AssigneeID = nil
	r.Priority = nil
	r.DueDate = nil
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil {
		if validator.IsEmpty(*r.Title) {
			errs = append(errs, validator.ValidationError{
				Field:   "title",
				Message: "title must not be empty",
			})
		}
		if len(*r.Title) > 200 {
			errs = append(errs, validator.ValidationError{
				Field:   "title",
				Message: "title must not exceed 200 characters",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of backlog, todo, in_progress, review, completed",
		})
	}
	if r.Priority != nil && !validator.IsInSlice(*r.Priority, validPriorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of low, medium, high, urgent",
		})
	}

	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if r.EstimatedHours != nil && *r.EstimatedHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "estimated_hours",
			Message: "estimated_hours must not be negative",
		})
	}

	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CommentRequest struct {
	TaskID    string `json:"-"`
	CommentID string `json:"-"`
	Comment   string `json:"comment"`
}

func (r *CommentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskFilter struct {
	ProjectID  string
	AssigneeID string
	Status     string
	Priority   string
	Search     string
	Page       int
	Limit      int
}

type TaskResponse struct {
	ID             string   `json:"id"`
	ProjectID      string   `json:"project_id"`
	ProjectName    string   `json:"project_name,omitempty"`
	Title          string   `json:"title"`
	Description    *string  `json:"description,omitempty"`
	AssigneeID     *string  `json:"assignee_id,omitempty"`
	AssigneeName   *string  `json:"assignee_name,omitempty"`
	CreatedBy      string   `json:"created_by"`
	CreatorName    string   `json:"creator_name,omitempty"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	Progress       int      `json:"progress"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
	CompletedAt    *string  `json:"completed_at,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

type ListTaskResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalItems int64          `json:"total_items"`
	TotalPages int            `json:"total_pages"`
}

// BoardColumn is one Kanban lane.
type BoardColumn struct {
	Status string         `json:"status"`
	Tasks  []TaskResponse `json:"tasks"`
}

type BoardResponse struct {
	ProjectID string        `json:"project_id"`
	Columns   []BoardColumn `json:"columns"`
}

type CommentResponse struct {
	ID         string `json:"id"`
	TaskID     string `json:"task_id"`
	EmployeeID string `json:"employee_id"`
	AuthorName string `json:"author_name,omitempty"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
