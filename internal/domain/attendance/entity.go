package attendance

import "time"

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     Status
	WorkFrom   WorkFrom
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HoursWorked returns the clocked duration in hours, rounded to two decimals.
func (a Attendance) HoursWorked() float64 {
	if a.ClockIn == nil || a.ClockOut == nil {
		return 0
	}
	hours := a.ClockOut.Sub(*a.ClockIn).Hours()
	return float64(int(hours*100+0.5)) / 100
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
)

type WorkFrom string

const (
	WorkFromOffice WorkFrom = "office"
	WorkFromHome   WorkFrom = "home"
	WorkFromRemote WorkFrom = "remote"
)

// AttendanceWithEmployee carries the employee name for admin/manager listings.
type AttendanceWithEmployee struct {
	Attendance
	EmployeeCode string
	EmployeeName string
}

// Summary aggregates one employee's attendance over a date range.
type Summary struct {
	EmployeeID   string
	EmployeeName string
	PresentDays  int
	AbsentDays   int
	HalfDays     int
	TotalHours   float64
}
