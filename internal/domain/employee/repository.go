package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (EmployeeWithDetails, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	ExistsByCode(ctx context.Context, employeeCode string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeWithDetails, int64, error)
	ListActive(ctx context.Context) ([]Employee, error)
	ListByManagerID(ctx context.Context, managerID string) ([]Employee, error)
	IsManagerOf(ctx context.Context, managerID string, employeeID string) (bool, error)
}
