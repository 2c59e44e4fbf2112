package project

import "github.com/corestack-app/corestack-backend-go/internal/pkg/validator"

var (
	validStatuses    = []string{"planning", "in_progress", "on_hold", "completed", "cancelled"}
	validMemberRoles = []string{"project_manager", "team_lead", "member"}
)

type CreateProjectRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Budget      *string  `json:"budget,omitempty"`
	MemberIDs   []string `json:"member_ids,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of planning, in_progress, on_hold, completed, cancelled",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProjectRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Budget      *string `json:"budget,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of planning, in_progress, on_hold, completed, cancelled",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddMemberRequest struct {
	ProjectID  string `json:"-"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role,omitempty"`
}

func (r *AddMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Role != "" && !validator.IsInSlice(r.Role, validMemberRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be project_manager, team_lead or member",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateMemberRoleRequest struct {
	ProjectID  string `json:"-"`
	EmployeeID string `json:"-"`
	Role       string `json:"role"`
}

func (r *UpdateMemberRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Role, validMemberRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be project_manager, team_lead or member",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProjectFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}

type ProjectResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    *string          `json:"description,omitempty"`
	Status         string           `json:"status"`
	StartDate      *string          `json:"start_date,omitempty"`
	EndDate        *string          `json:"end_date,omitempty"`
	Budget         *string          `json:"budget,omitempty"`
	CreatedBy      string           `json:"created_by"`
	CreatorName    string           `json:"creator_name,omitempty"`
	MemberCount    int              `json:"member_count"`
	TaskCount      int              `json:"task_count"`
	CompletionRate float64          `json:"completion_rate"`
	Members        []MemberResponse `json:"members,omitempty"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

type MemberResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code"`
	EmployeeName string  `json:"employee_name"`
	Position     *string `json:"position,omitempty"`
	Role         string  `json:"role"`
	JoinedAt     string  `json:"joined_at"`
}

type ListProjectResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalItems int64             `json:"total_items"`
	TotalPages int               `json:"total_pages"`
}
