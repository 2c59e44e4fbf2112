package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	Create(ctx context.Context, record Attendance) (Attendance, error)
	Update(ctx context.Context, record Attendance) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter HistoryFilter) ([]AttendanceWithEmployee, int64, error)
	Summarize(ctx context.Context, employeeIDs []string, start, end time.Time) ([]Summary, error)
	BulkCreateAbsences(ctx context.Context, records []Attendance) error
	EmployeeIDsWithRecordOn(ctx context.Context, date time.Time) (map[string]bool, error)
}
