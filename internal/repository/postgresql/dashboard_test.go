package postgresql_test

import (
	"context"
	"testing"

	"github.com/corestack-app/corestack-backend-go/internal/domain/dashboard"
	"github.com/corestack-app/corestack-backend-go/internal/domain/project"
	"github.com/corestack-app/corestack-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumCounts(counts []dashboard.StatusCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}

func TestDashboardProjectVisibility(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	repo := postgresql.NewDashboardRepository(testDB)
	projects := postgresql.NewProjectRepository(testDB)
	members := postgresql.NewMemberRepository(testDB)

	creator := createTestEmployee(t, ctx, "DB-001")
	member := createTestEmployee(t, ctx, "DB-002")
	outsider := createTestEmployee(t, ctx, "DB-003")

	p, err := projects.Create(ctx, project.Project{
		Name:      "Visibility Check",
		Status:    project.StatusPlanning,
		CreatedBy: creator.ID,
	})
	require.NoError(t, err)

	_, err = members.AddMember(ctx, project.Member{
		ProjectID:  p.ID,
		EmployeeID: member.ID,
		Role:       project.MemberRoleMember,
	})
	require.NoError(t, err)

	// Empty scope means org-wide.
	counts, err := repo.ProjectsByStatus(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, sumCounts(counts))

	for _, emp := range []string{creator.ID, member.ID} {
		counts, err = repo.ProjectsByStatus(ctx, emp)
		require.NoError(t, err)
		assert.Equal(t, 1, sumCounts(counts), "employee %s", emp)
	}

	counts, err = repo.ProjectsByStatus(ctx, outsider.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, sumCounts(counts))

	stats, err := repo.ProjectStats(ctx, outsider.ID)
	require.NoError(t, err)
	assert.Empty(t, stats)

	tasks, err := repo.TasksByStatus(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0, sumCounts(tasks))
}
