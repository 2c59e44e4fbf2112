package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	GetByID(ctx context.Context, id string) (LeaveRequestWithEmployee, error)
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, req LeaveRequest) error
	List(ctx context.Context, filter LeaveFilter, employeeIDs []string) ([]LeaveRequestWithEmployee, int64, error)
	// HasOverlap reports whether the employee already has a pending or
	// approved request intersecting [start, end]. excludeID skips the
	// request being edited.
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)
	// SumDays totals days for an employee, type, status and year.
	SumDays(ctx context.Context, employeeID string, leaveType Type, status Status, year int) (float64, error)
}
