package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (total int, active int, err error)
	DepartmentDistribution(ctx context.Context) ([]DepartmentCount, error)
	// AttendanceOn counts attendance statuses for one date. employeeIDs
	// narrows the count to a team; nil means everyone.
	AttendanceOn(ctx context.Context, date time.Time, employeeIDs []string) (AttendanceToday, error)
	CountPendingLeave(ctx context.Context, employeeIDs []string) (int, error)
	ProjectsByStatus(ctx context.Context, visibleTo string) ([]StatusCount, error)
	TasksByStatus(ctx context.Context, assigneeID string) ([]StatusCount, error)
	AttendanceTrend(ctx context.Context, start, end time.Time, employeeIDs []string) ([]TrendPoint, error)
	EmployeeMonthStats(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (present int, absent int, hours float64, err error)
	CountOpenTasks(ctx context.Context, assigneeID string) (open int, dueThisWeek int, err error)
	ProjectStats(ctx context.Context, visibleTo string) ([]ProjectStat, error)
}
