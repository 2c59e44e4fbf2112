package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/attendance"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status, work_from, notes,
		       created_at, updated_at
		FROM attendances
		WHERE id = $1
	`

	found, err := r.scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return found, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status, work_from, notes,
		       created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	found, err := r.scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return found, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (id, employee_id, date, clock_in, clock_out, status, work_from, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, date, clock_in, clock_out, status, work_from, notes,
		          created_at, updated_at
	`

	created, err := r.scanAttendance(q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.Status,
		record.WorkFrom,
		record.Notes,
	))
	if err != nil {
		return attendance.Attendance{}, err
	}

	return created, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_in = $1, clock_out = $2, status = $3, work_from = $4, notes = $5,
		    updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		record.ClockIn,
		record.ClockOut,
		record.Status,
		record.WorkFrom,
		record.Notes,
		record.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.AttendanceWithEmployee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(` AND a.employee_id = $%d`, argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != "" {
		where += fmt.Sprintf(` AND a.date >= $%d`, argPos)
		args = append(args, filter.StartDate)
		argPos++
	}
	if filter.EndDate != "" {
		where += fmt.Sprintf(` AND a.date <= $%d`, argPos)
		args = append(args, filter.EndDate)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(` AND a.status = $%d`, argPos)
		args = append(args, filter.Status)
		argPos++
	}

	joins := `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
	`

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*)`+joins+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.status,
		       a.work_from, a.notes, a.created_at, a.updated_at,
		       e.employee_code, e.first_name || ' ' || e.last_name AS employee_name
	` + joins + where + fmt.Sprintf(` ORDER BY a.date DESC, e.employee_code LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]attendance.AttendanceWithEmployee, 0)
	for rows.Next() {
		var a attendance.AttendanceWithEmployee
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.Date,
			&a.ClockIn,
			&a.ClockOut,
			&a.Status,
			&a.WorkFrom,
			&a.Notes,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.EmployeeCode,
			&a.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, a)
	}

	return records, total, rows.Err()
}

// Summarize implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Summarize(ctx context.Context, employeeIDs []string, start, end time.Time) ([]attendance.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       COUNT(*) FILTER (WHERE a.status = 'present')  AS present_days,
		       COUNT(*) FILTER (WHERE a.status = 'absent')   AS absent_days,
		       COUNT(*) FILTER (WHERE a.status = 'half_day') AS half_days,
		       COALESCE(SUM(EXTRACT(EPOCH FROM (a.clock_out - a.clock_in)) / 3600), 0) AS total_hours
		FROM employees e
		JOIN attendances a ON a.employee_id = e.id
		WHERE e.id = ANY($1) AND a.date BETWEEN $2 AND $3
		GROUP BY e.id, e.first_name, e.last_name
		ORDER BY employee_name
	`

	rows, err := q.Query(ctx, query, employeeIDs, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]attendance.Summary, 0)
	for rows.Next() {
		var s attendance.Summary
		if err := rows.Scan(&s.EmployeeID, &s.EmployeeName, &s.PresentDays, &s.AbsentDays, &s.HalfDays, &s.TotalHours); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// BulkCreateAbsences implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) BulkCreateAbsences(ctx context.Context, records []attendance.Attendance) error {
	if len(records) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	// ON CONFLICT guards against a record created between the scan and the insert.
	query := `
		INSERT INTO attendances (id, employee_id, date, status, work_from, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	for _, record := range records {
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, query,
			record.ID,
			record.EmployeeID,
			record.Date,
			record.Status,
			record.WorkFrom,
			record.Notes,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// EmployeeIDsWithRecordOn implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) EmployeeIDsWithRecordOn(ctx context.Context, date time.Time) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM attendances WHERE date = $1`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}

	return ids, rows.Err()
}

func (r *attendanceRepositoryImpl) scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.ClockIn,
		&a.ClockOut,
		&a.Status,
		&a.WorkFrom,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
