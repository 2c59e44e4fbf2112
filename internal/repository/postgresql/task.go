package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/corestack-app/corestack-backend-go/internal/domain/task"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskDetailColumns = `
	t.id, t.project_id, t.assignee_id, t.created_by, t.title, t.description,
	t.status, t.priority, t.progress, t.estimated_hours, t.due_date,
	t.completed_at, t.created_at, t.updated_at,
	p.name AS project_name,
	CASE WHEN a.id IS NULL THEN NULL ELSE a.first_name || ' ' || a.last_name END AS assignee_name,
	c.first_name || ' ' || c.last_name AS creator_name
`

const taskDetailJoins = `
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	JOIN employees c ON c.id = t.created_by
	LEFT JOIN employees a ON a.id = t.assignee_id
`

func scanTaskWithDetails(row pgx.Row) (task.TaskWithDetails, error) {
	var t task.TaskWithDetails
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.AssigneeID,
		&t.CreatedBy,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&t.Progress,
		&t.EstimatedHours,
		&t.DueDate,
		&t.CompletedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.ProjectName,
		&t.AssigneeName,
		&t.CreatorName,
	)
	return t, err
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.TaskWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskDetailColumns + taskDetailJoins + ` WHERE t.id = $1`

	found, err := scanTaskWithDetails(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.TaskWithDetails{}, task.ErrTaskNotFound
		}
		return task.TaskWithDetails{}, err
	}

	return found, nil
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	query := `
		INSERT INTO tasks (
			id, project_id, assignee_id, created_by, title, description,
			status, priority, progress, estimated_hours, due_date, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, project_id, assignee_id, created_by, title, description,
		          status, priority, progress, estimated_hours, due_date,
		          completed_at, created_at, updated_at
	`

	var created task.Task
	err := q.QueryRow(ctx, query,
		t.ID,
		t.ProjectID,
		t.AssigneeID,
		t.CreatedBy,
		t.Title,
		t.Description,
		t.Status,
		t.Priority,
		t.Progress,
		t.EstimatedHours,
		t.DueDate,
		t.CompletedAt,
	).Scan(
		&created.ID,
		&created.ProjectID,
		&created.AssigneeID,
		&created.CreatedBy,
		&created.Title,
		&created.Description,
		&created.Status,
		&created.Priority,
		&created.Progress,
		&created.EstimatedHours,
		&created.DueDate,
		&created.CompletedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return task.Task{}, err
	}

	return created, nil
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, assignee_id = $3, status = $4,
		    priority = $5, progress = $6, estimated_hours = $7, due_date = $8,
		    completed_at = $9, updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		t.Title,
		t.Description,
		t.AssigneeID,
		t.Status,
		t.Priority,
		t.Progress,
		t.EstimatedHours,
		t.DueDate,
		t.CompletedAt,
		t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context, filter task.TaskFilter, visibleTo string) ([]task.TaskWithDetails, int64, error) {
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
	if filter.ProjectID != "" {
		where += fmt.Sprintf(` AND t.project_id = $%d`, argPos)
		args = append(args, filter.ProjectID)
		argPos++
	}
	if filter.AssigneeID != "" {
		where += fmt.Sprintf(` AND t.assignee_id = $%d`, argPos)
		args = append(args, filter.AssigneeID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(` AND t.status = $%d`, argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Priority != "" {
		where += fmt.Sprintf(` AND t.priority = $%d`, argPos)
		args = append(args, filter.Priority)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(` AND t.title ILIKE $%d`, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*)`+taskDetailJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + taskDetailColumns + taskDetailJoins + where +
		fmt.Sprintf(` ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tasks := make([]task.TaskWithDetails, 0)
	for rows.Next() {
		t, err := scanTaskWithDetails(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, t)
	}

	return tasks, total, rows.Err()
}

// ListByProject implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]task.TaskWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskDetailColumns + taskDetailJoins + ` WHERE t.project_id = $1
		ORDER BY CASE t.priority
			WHEN 'urgent' THEN 0
			WHEN 'high' THEN 1
			WHEN 'medium' THEN 2
			ELSE 3
		END, t.created_at
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]task.TaskWithDetails, 0)
	for rows.Next() {
		t, err := scanTaskWithDetails(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}
