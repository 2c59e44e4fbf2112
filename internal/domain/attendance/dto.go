package attendance

import (
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/pkg/validator"
)

var (
	validStatuses  = []string{"present", "absent", "half_day"}
	validWorkFroms = []string{"office", "home", "remote"}
)

type ClockInRequest struct {
	WorkFrom string  `json:"work_from,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkFrom != "" && !validator.IsInSlice(r.WorkFrom, validWorkFroms) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_from",
			Message: "work_from must be office, home or remote",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type RecordRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clock_in,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
	Status     string  `json:"status"`
	WorkFrom   string  `json:"work_from,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present, absent or half_day",
		})
	}

	if r.WorkFrom != "" && !validator.IsInSlice(r.WorkFrom, validWorkFroms) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_from",
			Message: "work_from must be office, home or remote",
		})
	}

	var clockIn, clockOut *time.Time
	if r.ClockIn != nil {
		if parsed, ok := validator.IsValidDateTime(*r.ClockIn); ok {
			clockIn = &parsed
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be an ISO8601 timestamp",
			})
		}
	}
	if r.ClockOut != nil {
		if parsed, ok := validator.IsValidDateTime(*r.ClockOut); ok {
			clockOut = &parsed
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be an ISO8601 timestamp",
			})
		}
	}
	if r.ClockOut != nil && r.ClockIn == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out requires clock_in",
		})
	}
	if clockIn != nil && clockOut != nil && !clockOut.After(*clockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be after clock_in",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRecordRequest struct {
	ID       string  `json:"-"`
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
	Status   *string `json:"status,omitempty"`
	WorkFrom *string `json:"work_from,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present, absent or half_day",
		})
	}
	if r.WorkFrom != nil && !validator.IsInSlice(*r.WorkFrom, validWorkFroms) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_from",
			Message: "work_from must be office, home or remote",
		})
	}
	var clockIn, clockOut *time.Time
	if r.ClockIn != nil {
		if parsed, ok := validator.IsValidDateTime(*r.ClockIn); ok {
			clockIn = &parsed
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be an ISO8601 timestamp",
			})
		}
	}
	if r.ClockOut != nil {
		if parsed, ok := validator.IsValidDateTime(*r.ClockOut); ok {
			clockOut = &parsed
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be an ISO8601 timestamp",
			})
		}
	}
	// Partial updates are checked against the stored record by the service.
	if clockIn != nil && clockOut != nil && !clockOut.After(*clockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be after clock_in",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HistoryFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Status     string
	Page       int
	Limit      int
}

type ReportFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clock_in,omitempty"`
	ClockOut     *string `json:"clock_out,omitempty"`
	Status       string  `json:"status"`
	WorkFrom     string  `json:"work_from"`
	Notes        *string `json:"notes,omitempty"`
	HoursWorked  float64 `json:"hours_worked"`
}

type StatusResponse struct {
	ClockedIn  bool                `json:"clocked_in"`
	ClockedOut bool                `json:"clocked_out"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

type ListAttendanceResponse struct {
	Records    []AttendanceResponse `json:"records"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalItems int64                `json:"total_items"`
	TotalPages int                  `json:"total_pages"`
}

type SummaryResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	PresentDays  int     `json:"present_days"`
	AbsentDays   int     `json:"absent_days"`
	HalfDays     int     `json:"half_days"`
	TotalHours   float64 `json:"total_hours"`
}

type ReportResponse struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Summaries []SummaryResponse `json:"summaries"`
}
