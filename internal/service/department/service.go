package department

import (
	"context"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(repo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{DepartmentRepository: repo}
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		count, err := s.DepartmentRepository.CountEmployees(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count employees: %w", err)
		}
		responses = append(responses, toDepartmentResponse(d, count))
	}

	return responses, nil
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	exists, err := s.DepartmentRepository.ExistsByName(ctx, req.Name)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return department.DepartmentResponse{}, department.ErrDepartmentNameExists
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return toDepartmentResponse(created, 0), nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	current, err := s.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil && *req.Name != current.Name {
		exists, err := s.DepartmentRepository.ExistsByName(ctx, *req.Name)
		if err != nil {
			return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
		}
		if exists {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
	}

	updated, err := s.DepartmentRepository.Update(ctx, req.ID, req)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	count, err := s.DepartmentRepository.CountEmployees(ctx, updated.ID)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	return toDepartmentResponse(updated, count), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.DepartmentRepository.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.DepartmentRepository.CountEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return department.ErrDepartmentHasEmployees
	}

	return s.DepartmentRepository.Delete(ctx, id)
}

func toDepartmentResponse(d department.Department, employeeCount int) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		EmployeeCount: employeeCount,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
	}
}
