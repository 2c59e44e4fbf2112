package employee

import "time"

type Employee struct {
	ID           string
	UserID       string
	DepartmentID *string
	ManagerID    *string
	EmployeeCode string
	FirstName    string
	LastName     string
	Position     *string
	Gender       *Gender
	DateOfBirth  *time.Time
	DateOfJoining time.Time
	PhoneNumber  *string
	Address      *string
	ProfileImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name the way the frontend displays it.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// EmployeeWithDetails joins the names of related records for list/detail views.
type EmployeeWithDetails struct {
	Employee
	Email          string
	Role           string
	IsActive       bool
	DepartmentName *string
	ManagerName    *string
}
