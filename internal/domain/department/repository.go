package department

import "context"

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, dept Department) (Department, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (Department, error)
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, id string) (int, error)
}
