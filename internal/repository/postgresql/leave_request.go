package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/leave"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequestWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
		       lr.days, lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at,
		       lr.review_note, lr.created_at, lr.updated_at,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       CASE WHEN rv.id IS NULL THEN NULL ELSE rv.first_name || ' ' || rv.last_name END AS reviewer_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN employees rv ON rv.id = lr.reviewed_by
		WHERE lr.id = $1
	`

	var lr leave.LeaveRequestWithEmployee
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.Type,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Days,
		&lr.Reason,
		&lr.Status,
		&lr.ReviewedBy,
		&lr.ReviewedAt,
		&lr.ReviewNote,
		&lr.CreatedAt,
		&lr.UpdatedAt,
		&lr.EmployeeName,
		&lr.ReviewerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestWithEmployee{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestWithEmployee{}, err
	}

	return lr, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, leave_type, start_date, end_date, days, reason, status,
		          reviewed_by, reviewed_at, review_note, created_at, updated_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Days,
		req.Reason,
		req.Status,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.Type,
		&created.StartDate,
		&created.EndDate,
		&created.Days,
		&created.Reason,
		&created.Status,
		&created.ReviewedBy,
		&created.ReviewedAt,
		&created.ReviewNote,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET leave_type = $1, start_date = $2, end_date = $3, days = $4, reason = $5,
		    status = $6, reviewed_by = $7, reviewed_at = $8, review_note = $9,
		    updated_at = NOW()
		WHERE id = $10
	`

	tag, err := q.Exec(ctx, query,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Days,
		req.Reason,
		req.Status,
		req.ReviewedBy,
		req.ReviewedAt,
		req.ReviewNote,
		req.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter, employeeIDs []string) ([]leave.LeaveRequestWithEmployee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if len(employeeIDs) > 0 {
		where += fmt.Sprintf(` AND lr.employee_id = ANY($%d)`, argPos)
		args = append(args, employeeIDs)
		argPos++
	}
	if filter.EmployeeID != "" {
		where += fmt.Sprintf(` AND lr.employee_id = $%d`, argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(` AND lr.status = $%d`, argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Type != "" {
		where += fmt.Sprintf(` AND lr.leave_type = $%d`, argPos)
		args = append(args, filter.Type)
		argPos++
	}
	if filter.StartDate != "" {
		where += fmt.Sprintf(` AND lr.end_date >= $%d`, argPos)
		args = append(args, filter.StartDate)
		argPos++
	}
	if filter.EndDate != "" {
		where += fmt.Sprintf(` AND lr.start_date <= $%d`, argPos)
		args = append(args, filter.EndDate)
		argPos++
	}

	joins := `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN employees rv ON rv.id = lr.reviewed_by
	`

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*)`+joins+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
		       lr.days, lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at,
		       lr.review_note, lr.created_at, lr.updated_at,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       CASE WHEN rv.id IS NULL THEN NULL ELSE rv.first_name || ' ' || rv.last_name END AS reviewer_name
	` + joins + where + fmt.Sprintf(` ORDER BY lr.created_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequestWithEmployee, 0)
	for rows.Next() {
		var lr leave.LeaveRequestWithEmployee
		err := rows.Scan(
			&lr.ID,
			&lr.EmployeeID,
			&lr.Type,
			&lr.StartDate,
			&lr.EndDate,
			&lr.Days,
			&lr.Reason,
			&lr.Status,
			&lr.ReviewedBy,
			&lr.ReviewedAt,
			&lr.ReviewNote,
			&lr.CreatedAt,
			&lr.UpdatedAt,
			&lr.EmployeeName,
			&lr.ReviewerName,
		)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, lr)
	}

	return requests, total, rows.Err()
}

// HasOverlap implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
			  AND (NULLIF($4, '')::uuid IS NULL OR id != NULLIF($4, '')::uuid)
		)
	`

	var overlaps bool
	err := q.QueryRow(ctx, query, employeeID, start, end, excludeID).Scan(&overlaps)
	if err != nil {
		return false, err
	}
	return overlaps, nil
}

// SumDays implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) SumDays(ctx context.Context, employeeID string, leaveType leave.Type, status leave.Status, year int) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND leave_type = $2
		  AND status = $3
		  AND EXTRACT(YEAR FROM start_date) = $4
	`

	var total float64
	err := q.QueryRow(ctx, query, employeeID, leaveType, status, year).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
