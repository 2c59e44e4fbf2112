package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/corestack-app/corestack-backend-go/internal/domain/project"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectDetailColumns = `
	p.id, p.name, p.description, p.status, p.start_date, p.end_date,
	p.budget, p.created_by, p.created_at, p.updated_at,
	c.first_name || ' ' || c.last_name AS creator_name,
	(SELECT COUNT(*) FROM project_members pm WHERE pm.project_id = p.id) AS member_count,
	(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id) AS task_total,
	(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id AND t.status = 'completed') AS task_completed,
	(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id AND t.status = 'in_progress') AS task_in_progress,
	(SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id AND t.status != 'completed'
		AND t.due_date IS NOT NULL AND t.due_date < CURRENT_DATE) AS task_overdue
`

func scanProjectWithDetails(row pgx.Row) (project.ProjectWithDetails, error) {
	var p project.ProjectWithDetails
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Status,
		&p.StartDate,
		&p.EndDate,
		&p.Budget,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.CreatorName,
		&p.MemberCount,
		&p.Stats.Total,
		&p.Stats.Completed,
		&p.Stats.InProgress,
		&p.Stats.Overdue,
	)
	return p, err
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.ProjectWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectDetailColumns + `
		FROM projects p
		JOIN employees c ON c.id = p.created_by
		WHERE p.id = $1
	`

	found, err := scanProjectWithDetails(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ProjectWithDetails{}, project.ErrProjectNotFound
		}
		return project.ProjectWithDetails{}, err
	}

	return found, nil
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO projects (id, name, description, status, start_date, end_date, budget, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, description, status, start_date, end_date, budget, created_by,
		          created_at, updated_at
	`

	var created project.Project
	err := q.QueryRow(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.Status,
		p.StartDate,
		p.EndDate,
		p.Budget,
		p.CreatedBy,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.Status,
		&created.StartDate,
		&created.EndDate,
		&created.Budget,
		&created.CreatedBy,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return project.Project{}, err
	}

	return created, nil
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, id string, req project.UpdateProjectRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name        = COALESCE($1, name),
		    description = COALESCE($2, description),
		    status      = COALESCE($3, status),
		    start_date  = COALESCE($4::date, start_date),
		    end_date    = COALESCE($5::date, end_date),
		    budget      = COALESCE($6::numeric, budget),
		    updated_at  = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		req.Name,
		req.Description,
		req.Status,
		req.StartDate,
		req.EndDate,
		req.Budget,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context, filter project.ProjectFilter, visibleTo string) ([]project.ProjectWithDetails, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if visibleTo != "" {
		where += fmt.Sprintf(` AND (p.created_by = $%d OR EXISTS(
			SELECT 1 FROM project_members pm WHERE pm.project_id = p.id AND pm.employee_id = $%d))`,
			argPos, argPos)
		args = append(args, visibleTo)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(` AND p.status = $%d`, argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(` AND p.name ILIKE $%d`, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	joins := `
		FROM projects p
		JOIN employees c ON c.id = p.created_by
	`

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*)`+joins+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + projectDetailColumns + joins + where +
		fmt.Sprintf(` ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	projects := make([]project.ProjectWithDetails, 0)
	for rows.Next() {
		p, err := scanProjectWithDetails(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
	}

	return projects, total, rows.Err()
}
