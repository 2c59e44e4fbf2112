package postgresql_test

import (
	"context"
	"testing"

	"github.com/corestack-app/corestack-backend-go/internal/domain/project"
	"github.com/corestack-app/corestack-backend-go/internal/domain/task"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/corestack-app/corestack-backend-go/internal/repository/postgresql"
	taskService "github.com/corestack-app/corestack-backend-go/internal/service/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskReassignment(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	truncateTables(t, ctx)

	projects := postgresql.NewProjectRepository(testDB)
	members := postgresql.NewMemberRepository(testDB)
	tasks := postgresql.NewTaskRepository(testDB)
	svc := taskService.NewTaskService(tasks, postgresql.NewCommentRepository(testDB), projects, members)

	creator := createTestEmployee(t, ctx, "PM-001")
	dev := createTestEmployee(t, ctx, "DEV-001")

	p, err := projects.Create(ctx, project.Project{
		Name:      "Platform Revamp",
		Status:    project.StatusInProgress,
		CreatedBy: creator.ID,
	})
	require.NoError(t, err)

	_, err = members.AddMember(ctx, project.Member{
		ProjectID:  p.ID,
		EmployeeID: dev.ID,
		Role:       project.MemberRoleMember,
	})
	require.NoError(t, err)

	created, err := tasks.Create(ctx, task.Task{
		ProjectID:  p.ID,
		AssigneeID: &dev.ID,
		CreatedBy:  creator.ID,
		Title:      "Wire up the board view",
		Status:     task.StatusTodo,
		Priority:   task.PriorityMedium,
	})
	require.NoError(t, err)

	actx := actorContext(t, ctx, creator.ID, user.RoleEmployee)

	// The project creator is a valid assignee without a membership row.
	updated, err := svc.UpdateTask(actx, task.UpdateTaskRequest{ID: created.ID, AssigneeID: &creator.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, creator.ID, *updated.AssigneeID)

	// Employees outside the project are not.
	outsider := createTestEmployee(t, ctx, "OUT-001")
	_, err = svc.UpdateTask(actx, task.UpdateTaskRequest{ID: created.ID, AssigneeID: &outsider.ID})
	assert.ErrorIs(t, err, task.ErrAssigneeNotMember)
}
