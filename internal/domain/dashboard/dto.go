package dashboard

// DepartmentCount is one slice of the headcount distribution.
type DepartmentCount struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Count          int    `json:"count"`
}

type AttendanceToday struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	HalfDay    int `json:"half_day"`
	NotClocked int `json:"not_clocked_in"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// AdminSummary is the org-wide dashboard for admin and HR.
type AdminSummary struct {
	TotalEmployees  int               `json:"total_employees"`
	ActiveEmployees int               `json:"active_employees"`
	Departments     []DepartmentCount `json:"departments"`
	AttendanceToday AttendanceToday   `json:"attendance_today"`
	PendingLeave    int               `json:"pending_leave_requests"`
	Projects        []StatusCount     `json:"projects_by_status"`
	Tasks           []StatusCount     `json:"tasks_by_status"`
}

// ManagerSummary adds the team view for managers.
type ManagerSummary struct {
	TeamSize            int             `json:"team_size"`
	TeamAttendanceToday AttendanceToday `json:"team_attendance_today"`
	TeamPendingLeave    int             `json:"team_pending_leave_requests"`
	Projects            []StatusCount   `json:"projects_by_status"`
	Tasks               []StatusCount   `json:"tasks_by_status"`
}

// EmployeeSummary is the personal dashboard.
type EmployeeSummary struct {
	PresentDaysThisMonth int           `json:"present_days_this_month"`
	AbsentDaysThisMonth  int           `json:"absent_days_this_month"`
	HoursThisMonth       float64       `json:"hours_this_month"`
	PendingLeave         int           `json:"pending_leave_requests"`
	OpenTasks            int           `json:"open_tasks"`
	TasksDueThisWeek     int           `json:"tasks_due_this_week"`
	MyTasks              []StatusCount `json:"my_tasks_by_status"`
}

type SummaryResponse struct {
	Role     string           `json:"role"`
	Admin    *AdminSummary    `json:"admin,omitempty"`
	Manager  *ManagerSummary  `json:"manager,omitempty"`
	Employee *EmployeeSummary `json:"employee,omitempty"`
}

// TrendPoint is one day in the attendance series.
type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	HalfDay int    `json:"half_day"`
}

type AttendanceStatsResponse struct {
	Period      string       `json:"period"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Series      []TrendPoint `json:"series"`
	AverageRate float64      `json:"average_attendance_rate"`
}

type ProjectStat struct {
	ProjectID      string  `json:"project_id"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	TaskCount      int     `json:"task_count"`
	CompletedTasks int     `json:"completed_tasks"`
	OverdueTasks   int     `json:"overdue_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

type ProjectStatsResponse struct {
	ByStatus []StatusCount `json:"by_status"`
	Projects []ProjectStat `json:"projects"`
}
