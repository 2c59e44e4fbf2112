package postgresql

import (
	"context"
	"errors"

	"github.com/corestack-app/corestack-backend-go/internal/domain/project"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type memberRepositoryImpl struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) project.MemberRepository {
	return &memberRepositoryImpl{db: db}
}

// GetMember implements project.MemberRepository.
func (r *memberRepositoryImpl) GetMember(ctx context.Context, projectID, employeeID string) (project.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, employee_id, role, joined_at
		FROM project_members
		WHERE project_id = $1 AND employee_id = $2
	`

	var m project.Member
	err := q.QueryRow(ctx, query, projectID, employeeID).Scan(
		&m.ID,
		&m.ProjectID,
		&m.EmployeeID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Member{}, project.ErrMemberNotFound
		}
		return project.Member{}, err
	}

	return m, nil
}

// ListMembers implements project.MemberRepository.
func (r *memberRepositoryImpl) ListMembers(ctx context.Context, projectID string) ([]project.MemberWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pm.id, pm.project_id, pm.employee_id, pm.role, pm.joined_at,
		       e.employee_code, e.first_name || ' ' || e.last_name AS employee_name, e.position
		FROM project_members pm
		JOIN employees e ON e.id = pm.employee_id
		WHERE pm.project_id = $1
		ORDER BY pm.joined_at
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]project.MemberWithEmployee, 0)
	for rows.Next() {
		var m project.MemberWithEmployee
		err := rows.Scan(
			&m.ID,
			&m.ProjectID,
			&m.EmployeeID,
			&m.Role,
			&m.JoinedAt,
			&m.EmployeeCode,
			&m.EmployeeName,
			&m.Position,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// AddMember implements project.MemberRepository.
func (r *memberRepositoryImpl) AddMember(ctx context.Context, m project.Member) (project.Member, error) {
	q := GetQuerier(ctx, r.db)

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	query := `
		INSERT INTO project_members (id, project_id, employee_id, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (project_id, employee_id) DO NOTHING
		RETURNING id, project_id, employee_id, role, joined_at
	`

	var added project.Member
	err := q.QueryRow(ctx, query, m.ID, m.ProjectID, m.EmployeeID, m.Role).Scan(
		&added.ID,
		&added.ProjectID,
		&added.EmployeeID,
		&added.Role,
		&added.JoinedAt,
	)
	if err != nil {
		// DO NOTHING returns no row when the pair already exists.
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Member{}, project.ErrMemberExists
		}
		return project.Member{}, err
	}

	return added, nil
}

// UpdateMemberRole implements project.MemberRepository.
func (r *memberRepositoryImpl) UpdateMemberRole(ctx context.Context, projectID, employeeID string, role project.MemberRole) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE project_members SET role = $1 WHERE project_id = $2 AND employee_id = $3`,
		role, projectID, employeeID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrMemberNotFound
	}
	return nil
}

// RemoveMember implements project.MemberRepository.
func (r *memberRepositoryImpl) RemoveMember(ctx context.Context, projectID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM project_members WHERE project_id = $1 AND employee_id = $2`,
		projectID, employeeID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrMemberNotFound
	}
	return nil
}

// IsMember implements project.MemberRepository.
func (r *memberRepositoryImpl) IsMember(ctx context.Context, projectID, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var isMember bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM project_members WHERE project_id = $1 AND employee_id = $2)`,
		projectID, employeeID,
	).Scan(&isMember)
	if err != nil {
		return false, err
	}
	return isMember, nil
}

// HasRole implements project.MemberRepository.
func (r *memberRepositoryImpl) HasRole(ctx context.Context, projectID, employeeID string, role project.MemberRole) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var hasRole bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM project_members WHERE project_id = $1 AND employee_id = $2 AND role = $3)`,
		projectID, employeeID, role,
	).Scan(&hasRole)
	if err != nil {
		return false, err
	}
	return hasRole, nil
}
