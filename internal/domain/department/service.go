package department

import "context"

type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
}
