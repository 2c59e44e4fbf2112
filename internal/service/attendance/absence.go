package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/attendance"
	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
)

// AbsenceMarker backfills absent records for employees who never clocked
// in on a working day. It runs from the cron scheduler.
type AbsenceMarker struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAbsenceMarker(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AbsenceMarker {
	return &AbsenceMarker{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// previousWorkday returns the most recent weekday strictly before ref.
func previousWorkday(ref time.Time) time.Time {
	d := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	d = d.AddDate(0, 0, -1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// Run marks every active employee without a record on the previous
// workday as absent.
func (m *AbsenceMarker) Run(ctx context.Context) error {
	date := previousWorkday(time.Now().UTC())

	active, err := m.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	recorded, err := m.attendanceRepo.EmployeeIDsWithRecordOn(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to load recorded employee IDs: %w", err)
	}

	note := "Marked absent automatically"
	records := make([]attendance.Attendance, 0)
	for _, e := range active {
		if recorded[e.ID] {
			continue
		}
		// Skip employees who joined after the target date.
		if e.DateOfJoining.After(date) {
			continue
		}
		records = append(records, attendance.Attendance{
			EmployeeID: e.ID,
			Date:       date,
			Status:     attendance.StatusAbsent,
			WorkFrom:   attendance.WorkFromOffice,
			Notes:      &note,
		})
	}

	if len(records) == 0 {
		return nil
	}

	if err := m.attendanceRepo.BulkCreateAbsences(ctx, records); err != nil {
		return fmt.Errorf("failed to create absence records: %w", err)
	}

	slog.Info("Absence records created", "date", date.Format("2006-01-02"), "count", len(records))
	return nil
}
