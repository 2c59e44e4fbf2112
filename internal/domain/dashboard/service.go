package dashboard

import "context"

type DashboardService interface {
	// Summary dispatches on the caller's role: admin/hr get the org view,
	// managers the team view, employees their personal view.
	Summary(ctx context.Context) (SummaryResponse, error)

	// AttendanceStats returns the daily attendance series for a period
	// (week, month or year), scoped by role.
	AttendanceStats(ctx context.Context, period string) (AttendanceStatsResponse, error)

	// ProjectStats returns per-status counts and per-project completion.
	ProjectStats(ctx context.Context) (ProjectStatsResponse, error)
}
