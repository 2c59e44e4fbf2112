package postgresql

import (
	"context"
	"errors"

	"github.com/corestack-app/corestack-backend-go/internal/domain/task"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type commentRepositoryImpl struct {
	db *database.DB
}

func NewCommentRepository(db *database.DB) task.CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// GetComment implements task.CommentRepository.
func (r *commentRepositoryImpl) GetComment(ctx context.Context, id string) (task.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, task_id, employee_id, comment, created_at, updated_at
		FROM task_comments
		WHERE id = $1
	`

	var c task.Comment
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.TaskID,
		&c.EmployeeID,
		&c.Comment,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Comment{}, task.ErrCommentNotFound
		}
		return task.Comment{}, err
	}

	return c, nil
}

// ListComments implements task.CommentRepository.
func (r *commentRepositoryImpl) ListComments(ctx context.Context, taskID string) ([]task.CommentWithAuthor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tc.id, tc.task_id, tc.employee_id, tc.comment, tc.created_at, tc.updated_at,
		       e.first_name || ' ' || e.last_name AS author_name
		FROM task_comments tc
		JOIN employees e ON e.id = tc.employee_id
		WHERE tc.task_id = $1
		ORDER BY tc.created_at
	`

	rows, err := q.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]task.CommentWithAuthor, 0)
	for rows.Next() {
		var c task.CommentWithAuthor
		err := rows.Scan(
			&c.ID,
			&c.TaskID,
			&c.EmployeeID,
			&c.Comment,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.AuthorName,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// CreateComment implements task.CommentRepository.
func (r *commentRepositoryImpl) CreateComment(ctx context.Context, c task.Comment) (task.Comment, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO task_comments (id, task_id, employee_id, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, task_id, employee_id, comment, created_at, updated_at
	`

	var created task.Comment
	err := q.QueryRow(ctx, query, c.ID, c.TaskID, c.EmployeeID, c.Comment).Scan(
		&created.ID,
		&created.TaskID,
		&created.EmployeeID,
		&created.Comment,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return task.Comment{}, err
	}

	return created, nil
}

// UpdateComment implements task.CommentRepository.
func (r *commentRepositoryImpl) UpdateComment(ctx context.Context, id string, text string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE task_comments SET comment = $1, updated_at = NOW() WHERE id = $2`,
		text, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrCommentNotFound
	}
	return nil
}

// DeleteComment implements task.CommentRepository.
func (r *commentRepositoryImpl) DeleteComment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM task_comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrCommentNotFound
	}
	return nil
}
