package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/attendance"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/corestack-app/corestack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/corestack-app/corestack-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceService() attendance.AttendanceService {
	return attendanceService.NewAttendanceService(
		postgresql.NewAttendanceRepository(testDB),
		postgresql.NewEmployeeRepository(testDB),
	)
}

func TestAttendanceClockInOncePerDay(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	svc := newAttendanceService()
	emp := createTestEmployee(t, ctx, "AT-001")
	actx := actorContext(t, ctx, emp.ID, user.RoleEmployee)

	first, err := svc.ClockIn(actx, attendance.ClockInRequest{})
	require.NoError(t, err)
	assert.NotNil(t, first.ClockIn)

	_, err = svc.ClockIn(actx, attendance.ClockInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceUpdateRecordClockOrdering(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	repo := postgresql.NewAttendanceRepository(testDB)
	emp := createTestEmployee(t, ctx, "AT-002")

	clockIn := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       day(2026, time.August, 24),
		ClockIn:    &clockIn,
		Status:     attendance.StatusPresent,
		WorkFrom:   attendance.WorkFromOffice,
	})
	require.NoError(t, err)

	svc := newAttendanceService()

	before := "2026-08-24T08:00:00Z"
	_, err = svc.UpdateRecord(ctx, attendance.UpdateRecordRequest{ID: created.ID, ClockOut: &before})
	assert.ErrorIs(t, err, attendance.ErrClockOutBeforeClockIn)

	after := "2026-08-24T17:30:00Z"
	updated, err := svc.UpdateRecord(ctx, attendance.UpdateRecordRequest{ID: created.ID, ClockOut: &after})
	require.NoError(t, err)
	assert.Equal(t, 8.5, updated.HoursWorked)
}
