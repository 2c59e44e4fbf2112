package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/leave"
	"github.com/corestack-app/corestack-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRepositoryHasOverlap(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	repo := postgresql.NewLeaveRepository(testDB)
	emp := createTestEmployee(t, ctx, "LV-001")

	_, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		Type:       leave.TypeAnnual,
		StartDate:  day(2026, time.September, 7),
		EndDate:    day(2026, time.September, 9),
		Days:       3,
		Status:     leave.StatusPending,
	})
	require.NoError(t, err)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"partial overlap", day(2026, time.September, 8), day(2026, time.September, 10), true},
		{"containing range", day(2026, time.September, 1), day(2026, time.September, 30), true},
		{"boundary day", day(2026, time.September, 9), day(2026, time.September, 9), true},
		{"after", day(2026, time.September, 10), day(2026, time.September, 12), false},
		{"before", day(2026, time.September, 4), day(2026, time.September, 6), false},
	}
	for _, tc := range cases {
		got, err := repo.HasOverlap(ctx, emp.ID, tc.start, tc.end, "")
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestLeaveRepositoryHasOverlap_ExcludesOwnRequest(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	repo := postgresql.NewLeaveRepository(testDB)
	emp := createTestEmployee(t, ctx, "LV-002")

	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		Type:       leave.TypeAnnual,
		StartDate:  day(2026, time.September, 7),
		EndDate:    day(2026, time.September, 9),
		Days:       3,
		Status:     leave.StatusPending,
	})
	require.NoError(t, err)

	// A request must not collide with itself during an update.
	got, err := repo.HasOverlap(ctx, emp.ID, day(2026, time.September, 7), day(2026, time.September, 9), created.ID)
	require.NoError(t, err)
	assert.False(t, got)

	// Other employees are unaffected.
	other := createTestEmployee(t, ctx, "LV-003")
	got, err = repo.HasOverlap(ctx, other.ID, day(2026, time.September, 7), day(2026, time.September, 9), "")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestLeaveRepositoryHasOverlap_IgnoresCancelled(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	repo := postgresql.NewLeaveRepository(testDB)
	emp := createTestEmployee(t, ctx, "LV-004")

	created, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		Type:       leave.TypeSick,
		StartDate:  day(2026, time.September, 7),
		EndDate:    day(2026, time.September, 9),
		Days:       3,
		Status:     leave.StatusPending,
	})
	require.NoError(t, err)

	created.Status = leave.StatusCancelled
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.HasOverlap(ctx, emp.ID, day(2026, time.September, 7), day(2026, time.September, 9), "")
	require.NoError(t, err)
	assert.False(t, got)
}
