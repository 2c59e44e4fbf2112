package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeDetailColumns = `
	e.id, e.user_id, e.department_id, e.manager_id, e.employee_code,
	e.first_name, e.last_name, e.position, e.gender, e.date_of_birth,
	e.date_of_joining, e.phone_number, e.address, e.profile_image,
	e.created_at, e.updated_at,
	u.email, u.role, u.is_active,
	d.name AS department_name,
	CASE WHEN m.id IS NULL THEN NULL ELSE m.first_name || ' ' || m.last_name END AS manager_name
`

const employeeDetailJoins = `
	FROM employees e
	JOIN users u ON u.id = e.user_id
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN employees m ON m.id = e.manager_id
`

func scanEmployeeWithDetails(row pgx.Row) (employee.EmployeeWithDetails, error) {
	var e employee.EmployeeWithDetails
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.DepartmentID,
		&e.ManagerID,
		&e.EmployeeCode,
		&e.FirstName,
		&e.LastName,
		&e.Position,
		&e.Gender,
		&e.DateOfBirth,
		&e.DateOfJoining,
		&e.PhoneNumber,
		&e.Address,
		&e.ProfileImage,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.Email,
		&e.Role,
		&e.IsActive,
		&e.DepartmentName,
		&e.ManagerName,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.EmployeeWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeDetailColumns + employeeDetailJoins + ` WHERE e.id = $1`

	found, err := scanEmployeeWithDetails(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeWithDetails{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeWithDetails{}, err
	}

	return found, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, department_id, manager_id, employee_code,
		       first_name, last_name, position, gender, date_of_birth,
		       date_of_joining, phone_number, address, profile_image,
		       created_at, updated_at
		FROM employees
		WHERE user_id = $1
	`

	found, err := r.scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrProfileNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, department_id, manager_id, employee_code,
		       first_name, last_name, position, gender, date_of_birth,
		       date_of_joining, phone_number, address, profile_image,
		       created_at, updated_at
		FROM employees
		WHERE employee_code = $1
	`

	found, err := r.scanEmployee(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// ExistsByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByCode(ctx context.Context, employeeCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_code = $1)`, employeeCode).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, user_id, department_id, manager_id, employee_code,
			first_name, last_name, position, gender, date_of_birth,
			date_of_joining, phone_number, address, profile_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, user_id, department_id, manager_id, employee_code,
		          first_name, last_name, position, gender, date_of_birth,
		          date_of_joining, phone_number, address, profile_image,
		          created_at, updated_at
	`

	created, err := r.scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.UserID,
		newEmployee.DepartmentID,
		newEmployee.ManagerID,
		newEmployee.EmployeeCode,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Position,
		newEmployee.Gender,
		newEmployee.DateOfBirth,
		newEmployee.DateOfJoining,
		newEmployee.PhoneNumber,
		newEmployee.Address,
		newEmployee.ProfileImage,
	))
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name    = COALESCE($1, first_name),
		    last_name     = COALESCE($2, last_name),
		    department_id = COALESCE($3::uuid, department_id),
		    manager_id    = COALESCE($4::uuid, manager_id),
		    position      = COALESCE($5, position),
		    gender        = COALESCE($6, gender),
		    date_of_birth = COALESCE($7::date, date_of_birth),
		    phone_number  = COALESCE($8, phone_number),
		    address       = COALESCE($9, address),
		    profile_image = COALESCE($10, profile_image),
		    updated_at    = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		req.FirstName,
		req.LastName,
		req.DepartmentID,
		req.ManagerID,
		req.Position,
		req.Gender,
		req.DateOfBirth,
		req.PhoneNumber,
		req.Address,
		req.ProfileImage,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeWithDetails, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		where += fmt.Sprintf(` AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_code ILIKE $%d OR u.email ILIKE $%d)`,
			argPos, argPos, argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.DepartmentID != "" {
		where += fmt.Sprintf(` AND e.department_id = $%d`, argPos)
		args = append(args, filter.DepartmentID)
		argPos++
	}
	if filter.ManagerID != "" {
		where += fmt.Sprintf(` AND e.manager_id = $%d`, argPos)
		args = append(args, filter.ManagerID)
		argPos++
	}

	countQuery := `SELECT COUNT(*)` + employeeDetailJoins + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + employeeDetailColumns + employeeDetailJoins + where +
		fmt.Sprintf(` ORDER BY e.employee_code LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := make([]employee.EmployeeWithDetails, 0)
	for rows.Next() {
		e, err := scanEmployeeWithDetails(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}

	return employees, total, rows.Err()
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.department_id, e.manager_id, e.employee_code,
		       e.first_name, e.last_name, e.position, e.gender, e.date_of_birth,
		       e.date_of_joining, e.phone_number, e.address, e.profile_image,
		       e.created_at, e.updated_at
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE u.is_active = TRUE
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectEmployees(rows)
}

// ListByManagerID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByManagerID(ctx context.Context, managerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, department_id, manager_id, employee_code,
		       first_name, last_name, position, gender, date_of_birth,
		       date_of_joining, phone_number, address, profile_image,
		       created_at, updated_at
		FROM employees
		WHERE manager_id = $1
		ORDER BY employee_code
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectEmployees(rows)
}

// IsManagerOf implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) IsManagerOf(ctx context.Context, managerID string, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var isManager bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1 AND manager_id = $2)`,
		employeeID, managerID,
	).Scan(&isManager)
	if err != nil {
		return false, err
	}
	return isManager, nil
}

func (r *employeeRepositoryImpl) scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.DepartmentID,
		&e.ManagerID,
		&e.EmployeeCode,
		&e.FirstName,
		&e.LastName,
		&e.Position,
		&e.Gender,
		&e.DateOfBirth,
		&e.DateOfJoining,
		&e.PhoneNumber,
		&e.Address,
		&e.ProfileImage,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := r.scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
