package employee

import "context"

// EmployeeService defines business logic for employee operations.
type EmployeeService interface {
	// GetEmployee retrieves a single employee (self, own manager, or admin/hr).
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates the user account and employee profile in one
	// transaction (admin/hr only).
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates a record; employees may only touch their own
	// contact fields, admin/hr may change everything.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee and deactivates the linked user
	// (admin/hr only, never your own record).
	DeleteEmployee(ctx context.Context, id string) error

	// ListEmployees lists employees with search and filters.
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
}
