package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/dashboard"
	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employee.EmployeeRepository
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		EmployeeRepository:  employeeRepo,
	}
}

type actor struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

func actorFromContext(ctx context.Context) (actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	a := actor{}
	a.UserID, _ = claims["user_id"].(string)
	a.EmployeeID, _ = claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)
	a.Role = user.Role(roleStr)

	return a, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Summary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.SummaryResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	switch {
	case user.IsElevated(caller.Role):
		summary, err := s.adminSummary(ctx)
		if err != nil {
			return dashboard.SummaryResponse{}, err
		}
		return dashboard.SummaryResponse{Role: string(caller.Role), Admin: summary}, nil

	case caller.Role == user.RoleManager:
		summary, err := s.managerSummary(ctx, caller)
		if err != nil {
			return dashboard.SummaryResponse{}, err
		}
		return dashboard.SummaryResponse{Role: string(caller.Role), Manager: summary}, nil

	default:
		summary, err := s.employeeSummary(ctx, caller)
		if err != nil {
			return dashboard.SummaryResponse{}, err
		}
		return dashboard.SummaryResponse{Role: string(caller.Role), Employee: summary}, nil
	}
}

func (s *DashboardServiceImpl) adminSummary(ctx context.Context) (*dashboard.AdminSummary, error) {
	total, active, err := s.DashboardRepository.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	departments, err := s.DashboardRepository.DepartmentDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get department distribution: %w", err)
	}

	attendanceToday, err := s.DashboardRepository.AttendanceOn(ctx, today(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance counts: %w", err)
	}

	pendingLeave, err := s.DashboardRepository.CountPendingLeave(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending leave: %w", err)
	}

	projects, err := s.DashboardRepository.ProjectsByStatus(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	tasks, err := s.DashboardRepository.TasksByStatus(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	return &dashboard.AdminSummary{
		TotalEmployees:  total,
		ActiveEmployees: active,
		Departments:     departments,
		AttendanceToday: attendanceToday,
		PendingLeave:    pendingLeave,
		Projects:        projects,
		Tasks:           tasks,
	}, nil
}

func (s *DashboardServiceImpl) managerSummary(ctx context.Context, caller actor) (*dashboard.ManagerSummary, error) {
	if caller.EmployeeID == "" {
		return nil, employee.ErrProfileNotFound
	}

	team, err := s.EmployeeRepository.ListByManagerID(ctx, caller.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}

	teamIDs := make([]string, 0, len(team))
	for _, e := range team {
		teamIDs = append(teamIDs, e.ID)
	}

	summary := &dashboard.ManagerSummary{TeamSize: len(team)}

	if len(teamIDs) > 0 {
		summary.TeamAttendanceToday, err = s.DashboardRepository.AttendanceOn(ctx, today(), teamIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to get team attendance: %w", err)
		}

		summary.TeamPendingLeave, err = s.DashboardRepository.CountPendingLeave(ctx, teamIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to count team pending leave: %w", err)
		}
	}

	summary.Projects, err = s.DashboardRepository.ProjectsByStatus(ctx, caller.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	summary.Tasks, err = s.DashboardRepository.TasksByStatus(ctx, caller.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	return summary, nil
}

func (s *DashboardServiceImpl) employeeSummary(ctx context.Context, caller actor) (*dashboard.EmployeeSummary, error) {
	if caller.EmployeeID == "" {
		return nil, employee.ErrProfileNotFound
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	present, absent, hours, err := s.DashboardRepository.EmployeeMonthStats(ctx, caller.EmployeeID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get month stats: %w", err)
	}

	pendingLeave, err := s.DashboardRepository.CountPendingLeave(ctx, []string{caller.EmployeeID})
	if err != nil {
		return nil, fmt.Errorf("failed to count pending leave: %w", err)
	}

	open, dueThisWeek, err := s.DashboardRepository.CountOpenTasks(ctx, caller.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count open tasks: %w", err)
	}

	myTasks, err := s.DashboardRepository.TasksByStatus(ctx, caller.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	return &dashboard.EmployeeSummary{
		PresentDaysThisMonth: present,
		AbsentDaysThisMonth:  absent,
		HoursThisMonth:       hours,
		PendingLeave:         pendingLeave,
		OpenTasks:            open,
		TasksDueThisWeek:     dueThisWeek,
		MyTasks:              myTasks,
	}, nil
}

// AttendanceStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) AttendanceStats(ctx context.Context, period string) (dashboard.AttendanceStatsResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return dashboard.AttendanceStatsResponse{}, err
	}

	end := today()
	var start time.Time
	switch period {
	case "year":
		start = end.AddDate(-1, 0, 1)
	case "month":
		start = end.AddDate(0, -1, 1)
	default:
		period = "week"
		start = end.AddDate(0, 0, -6)
	}

	var scope []string
	switch {
	case user.IsElevated(caller.Role):
		// Whole organization.
	case caller.Role == user.RoleManager:
		team, err := s.EmployeeRepository.ListByManagerID(ctx, caller.EmployeeID)
		if err != nil {
			return dashboard.AttendanceStatsResponse{}, fmt.Errorf("failed to list team: %w", err)
		}
		scope = []string{caller.EmployeeID}
		for _, e := range team {
			scope = append(scope, e.ID)
		}
	default:
		if caller.EmployeeID == "" {
			return dashboard.AttendanceStatsResponse{}, employee.ErrProfileNotFound
		}
		scope = []string{caller.EmployeeID}
	}

	series, err := s.DashboardRepository.AttendanceTrend(ctx, start, end, scope)
	if err != nil {
		return dashboard.AttendanceStatsResponse{}, fmt.Errorf("failed to get attendance trend: %w", err)
	}

	// Half days count as half presence.
	var presence, records float64
	for _, p := range series {
		presence += float64(p.Present) + float64(p.HalfDay)*0.5
		records += float64(p.Present + p.Absent + p.HalfDay)
	}
	rate := 0.0
	if records > 0 {
		rate = float64(int(presence/records*100*100+0.5)) / 100
	}

	return dashboard.AttendanceStatsResponse{
		Period:      period,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Series:      series,
		AverageRate: rate,
	}, nil
}

// ProjectStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ProjectStats(ctx context.Context) (dashboard.ProjectStatsResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return dashboard.ProjectStatsResponse{}, err
	}

	visibleTo := ""
	if !user.IsElevated(caller.Role) {
		if caller.EmployeeID == "" {
			return dashboard.ProjectStatsResponse{}, employee.ErrProfileNotFound
		}
		visibleTo = caller.EmployeeID
	}

	byStatus, err := s.DashboardRepository.ProjectsByStatus(ctx, visibleTo)
	if err != nil {
		return dashboard.ProjectStatsResponse{}, fmt.Errorf("failed to count projects: %w", err)
	}

	projects, err := s.DashboardRepository.ProjectStats(ctx, visibleTo)
	if err != nil {
		return dashboard.ProjectStatsResponse{}, fmt.Errorf("failed to get project stats: %w", err)
	}

	return dashboard.ProjectStatsResponse{
		ByStatus: byStatus,
		Projects: projects,
	}, nil
}
