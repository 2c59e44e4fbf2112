package leave

import "github.com/corestack-app/corestack-backend-go/internal/pkg/validator"

var validTypes = []string{
	"annual", "sick", "personal", "maternity",
	"paternity", "bereavement", "unpaid", "other",
}

type CreateLeaveRequest struct {
	Type      string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Days      float64 `json:"days,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of annual, sick, personal, maternity, paternity, bereavement, unpaid, other",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveRequest struct {
	ID        string   `json:"-"`
	Type      *string  `json:"leave_type,omitempty"`
	StartDate *string  `json:"start_date,omitempty"`
	EndDate   *string  `json:"end_date,omitempty"`
	Days      *float64 `json:"days,omitempty"`
	Reason    *string  `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && !validator.IsInSlice(*r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is invalid",
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
	if r.Days != nil && *r.Days <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ActionRequest struct {
	ID     string  `json:"-"`
	Action string  `json:"action"`
	Note   *string `json:"note,omitempty"`
}

func (r *ActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{"approve", "reject"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be approve or reject",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveFilter struct {
	EmployeeID string
	Status     string
	Type       string
	StartDate  string
	EndDate    string
	Page       int
	Limit      int
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Type         string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         float64 `json:"days"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
	ReviewerName *string `json:"reviewer_name,omitempty"`
	ReviewedAt   *string `json:"reviewed_at,omitempty"`
	ReviewNote   *string `json:"review_note,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ListLeaveResponse struct {
	Requests   []LeaveResponse `json:"requests"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalItems int64           `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

type BalanceEntry struct {
	Type     string  `json:"leave_type"`
	Entitled float64 `json:"entitled"`
	Taken    float64 `json:"taken"`
	Pending  float64 `json:"pending"`
	Balance  float64 `json:"balance"`
	Unit     string  `json:"unit"`
}

type BalanceResponse struct {
	EmployeeID     string         `json:"employee_id"`
	EmployeeName   string         `json:"employee_name"`
	YearsOfService int            `json:"years_of_service"`
	Balances       []BalanceEntry `json:"leave_balances"`
}
