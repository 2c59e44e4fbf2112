package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/department"
	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/corestack-app/corestack-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	department.DepartmentRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepo,
		UserRepository:       userRepo,
		DepartmentRepository: departmentRepo,
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

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !user.IsElevated(caller.Role) && caller.EmployeeID != id {
		allowed := false
		if caller.Role == user.RoleManager && caller.EmployeeID != "" {
			allowed, err = s.EmployeeRepository.IsManagerOf(ctx, caller.EmployeeID, id)
			if err != nil {
				return employee.EmployeeResponse{}, fmt.Errorf("failed to check manager relation: %w", err)
			}
		}
		if !allowed {
			return employee.EmployeeResponse{}, employee.ErrUnauthorized
		}
	}

	found, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(found), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dateOfJoining, _ := time.Parse("2006-01-02", req.DateOfJoining)
	if dateOfJoining.After(time.Now()) {
		return employee.EmployeeResponse{}, employee.ErrFutureJoiningDate
	}

	emailExists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return employee.EmployeeResponse{}, user.ErrEmailExists
	}

	codeExists, err := s.EmployeeRepository.ExistsByCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if codeExists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.ManagerID != nil {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := employee.Employee{
		DepartmentID:  req.DepartmentID,
		ManagerID:     req.ManagerID,
		EmployeeCode:  req.EmployeeCode,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Position:      req.Position,
		DateOfJoining: dateOfJoining,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		ProfileImage:  req.ProfileImage,
	}
	if req.Gender != nil {
		g := employee.Gender(*req.Gender)
		newEmployee.Gender = &g
	}
	if req.DateOfBirth != nil {
		dob, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		newEmployee.DateOfBirth = &dob
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdUser, err := s.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         role,
			IsActive:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user account: %w", err)
		}

		newEmployee.UserID = createdUser.ID
		created, err = s.EmployeeRepository.Create(txCtx, newEmployee)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployeeUnchecked(ctx, created.ID)
}

// GetEmployeeUnchecked loads a full employee response without permission
// checks; used after writes where access was already verified.
func (s *EmployeeServiceImpl) GetEmployeeUnchecked(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(found), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !user.IsElevated(caller.Role) {
		if caller.EmployeeID != req.ID || !req.SelfEditable() {
			return employee.EmployeeResponse{}, employee.ErrUnauthorized
		}
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.ManagerID != nil {
		if *req.ManagerID == req.ID {
			return employee.EmployeeResponse{}, employee.ErrUnauthorized
		}
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.EmployeeRepository.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployeeUnchecked(ctx, req.ID)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	if caller.EmployeeID == id {
		return employee.ErrCannotDeleteSelf
	}

	found, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.EmployeeRepository.Delete(txCtx, id); err != nil {
			return err
		}

		// The user account survives as a deactivated login.
		if err := s.UserRepository.SetActive(txCtx, found.UserID, false); err != nil {
			return fmt.Errorf("failed to deactivate user account: %w", err)
		}

		return nil
	})
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	// Managers see their team only unless a broader filter is elevated.
	if caller.Role == user.RoleManager && filter.ManagerID == "" {
		filter.ManagerID = caller.EmployeeID
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return employee.ListEmployeeResponse{
		Employees:  responses,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func toEmployeeResponse(e employee.EmployeeWithDetails) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		Email:          e.Email,
		Role:           e.Role,
		IsActive:       e.IsActive,
		EmployeeCode:   e.EmployeeCode,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Position:       e.Position,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		ManagerID:      e.ManagerID,
		ManagerName:    e.ManagerName,
		DateOfJoining:  e.DateOfJoining.Format("2006-01-02"),
		PhoneNumber:    e.PhoneNumber,
		Address:        e.Address,
		ProfileImage:   e.ProfileImage,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
	if e.Gender != nil {
		g := string(*e.Gender)
		resp.Gender = &g
	}
	if e.DateOfBirth != nil {
		dob := e.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	return resp
}
