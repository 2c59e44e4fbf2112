package postgresql

import (
	"context"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/dashboard"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE u.is_active)
		FROM employees e
		JOIN users u ON u.id = e.user_id
	`

	var total, active int
	if err := q.QueryRow(ctx, query).Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

// DepartmentDistribution implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) DepartmentDistribution(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, COUNT(e.id)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id, d.name
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]dashboard.DepartmentCount, 0)
	for rows.Next() {
		var dc dashboard.DepartmentCount
		if err := rows.Scan(&dc.DepartmentID, &dc.DepartmentName, &dc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}

	return counts, rows.Err()
}

// AttendanceOn implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) AttendanceOn(ctx context.Context, date time.Time, employeeIDs []string) (dashboard.AttendanceToday, error) {
	q := GetQuerier(ctx, r.db)

	// NULL employee filter means the whole active workforce.
	query := `
		SELECT COUNT(a.id) FILTER (WHERE a.status = 'present'),
		       COUNT(a.id) FILTER (WHERE a.status = 'absent'),
		       COUNT(a.id) FILTER (WHERE a.status = 'half_day'),
		       COUNT(e.id) FILTER (WHERE a.id IS NULL)
		FROM employees e
		JOIN users u ON u.id = e.user_id AND u.is_active
		LEFT JOIN attendances a ON a.employee_id = e.id AND a.date = $1
		WHERE $2::uuid[] IS NULL OR e.id = ANY($2)
	`

	var today dashboard.AttendanceToday
	var ids interface{}
	if len(employeeIDs) > 0 {
		ids = employeeIDs
	}

	err := q.QueryRow(ctx, query, date, ids).Scan(
		&today.Present,
		&today.Absent,
		&today.HalfDay,
		&today.NotClocked,
	)
	if err != nil {
		return dashboard.AttendanceToday{}, err
	}

	return today, nil
}

// CountPendingLeave implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeave(ctx context.Context, employeeIDs []string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE status = 'pending'
		  AND ($1::uuid[] IS NULL OR employee_id = ANY($1))
	`

	var ids interface{}
	if len(employeeIDs) > 0 {
		ids = employeeIDs
	}

	var count int
	if err := q.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ProjectsByStatus implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ProjectsByStatus(ctx context.Context, visibleTo string) ([]dashboard.StatusCount, error) {
	query := `
		SELECT p.status, COUNT(*)
		FROM projects p
		WHERE NULLIF($1, '')::uuid IS NULL OR p.created_by = NULLIF($1, '')::uuid OR EXISTS(
			SELECT 1 FROM project_members pm WHERE pm.project_id = p.id AND pm.employee_id = NULLIF($1, '')::uuid)
		GROUP BY p.status
		ORDER BY p.status
	`

	return r.collectStatusCounts(ctx, query, visibleTo)
}

// TasksByStatus implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) TasksByStatus(ctx context.Context, assigneeID string) ([]dashboard.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM tasks
		WHERE NULLIF($1, '')::uuid IS NULL OR assignee_id = NULLIF($1, '')::uuid
		GROUP BY status
		ORDER BY status
	`

	rows, err := q.Query(ctx, query, assigneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]dashboard.StatusCount, 0)
	for rows.Next() {
		var sc dashboard.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}

	return counts, rows.Err()
}

// AttendanceTrend implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) AttendanceTrend(ctx context.Context, start, end time.Time, employeeIDs []string) ([]dashboard.TrendPoint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(a.date, 'YYYY-MM-DD'),
		       COUNT(*) FILTER (WHERE a.status = 'present'),
		       COUNT(*) FILTER (WHERE a.status = 'absent'),
		       COUNT(*) FILTER (WHERE a.status = 'half_day')
		FROM attendances a
		WHERE a.date BETWEEN $1 AND $2
		  AND ($3::uuid[] IS NULL OR a.employee_id = ANY($3))
		GROUP BY a.date
		ORDER BY a.date
	`

	var ids interface{}
	if len(employeeIDs) > 0 {
		ids = employeeIDs
	}

	rows, err := q.Query(ctx, query, start, end, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]dashboard.TrendPoint, 0)
	for rows.Next() {
		var p dashboard.TrendPoint
		if err := rows.Scan(&p.Date, &p.Present, &p.Absent, &p.HalfDay); err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

// EmployeeMonthStats implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) EmployeeMonthStats(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (int, int, float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'present'),
		       COUNT(*) FILTER (WHERE status = 'absent'),
		       COALESCE(SUM(EXTRACT(EPOCH FROM (clock_out - clock_in)) / 3600), 0)
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`

	var present, absent int
	var hours float64
	err := q.QueryRow(ctx, query, employeeID, monthStart, monthEnd).Scan(&present, &absent, &hours)
	if err != nil {
		return 0, 0, 0, err
	}

	return present, absent, hours, nil
}

// CountOpenTasks implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountOpenTasks(ctx context.Context, assigneeID string) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE due_date IS NOT NULL
		           AND due_date BETWEEN CURRENT_DATE AND CURRENT_DATE + 7)
		FROM tasks
		WHERE assignee_id = $1 AND status != 'completed'
	`

	var open, dueThisWeek int
	if err := q.QueryRow(ctx, query, assigneeID).Scan(&open, &dueThisWeek); err != nil {
		return 0, 0, err
	}
	return open, dueThisWeek, nil
}

// ProjectStats implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ProjectStats(ctx context.Context, visibleTo string) ([]dashboard.ProjectStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.status,
		       COUNT(t.id),
		       COUNT(t.id) FILTER (WHERE t.status = 'completed'),
		       COUNT(t.id) FILTER (WHERE t.status != 'completed'
		           AND t.due_date IS NOT NULL AND t.due_date < CURRENT_DATE)
		FROM projects p
		LEFT JOIN tasks t ON t.project_id = p.id
		WHERE NULLIF($1, '')::uuid IS NULL OR p.created_by = NULLIF($1, '')::uuid OR EXISTS(
			SELECT 1 FROM project_members pm WHERE pm.project_id = p.id AND pm.employee_id = NULLIF($1, '')::uuid)
		GROUP BY p.id, p.name, p.status
		ORDER BY p.created_at DESC
	`

	rows, err := q.Query(ctx, query, visibleTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]dashboard.ProjectStat, 0)
	for rows.Next() {
		var s dashboard.ProjectStat
		if err := rows.Scan(&s.ProjectID, &s.Name, &s.Status, &s.TaskCount, &s.CompletedTasks, &s.OverdueTasks); err != nil {
			return nil, err
		}
		if s.TaskCount > 0 {
			rate := float64(s.CompletedTasks) / float64(s.TaskCount) * 100
			s.CompletionRate = float64(int(rate*100+0.5)) / 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

func (r *dashboardRepositoryImpl) collectStatusCounts(ctx context.Context, query string, args ...interface{}) ([]dashboard.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]dashboard.StatusCount, 0)
	for rows.Next() {
		var sc dashboard.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}

	return counts, rows.Err()
}
