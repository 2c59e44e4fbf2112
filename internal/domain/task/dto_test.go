package task

import (
	"testing"

	"github.com/corestack-app/corestack-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskRequest_Validate(t *testing.T) {
	valid := CreateTaskRequest{
		ProjectID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Title:     "Ship the onboarding flow",
		Status:    "todo",
		Priority:  "high",
		Progress:  0,
	}
	assert.NoError(t, valid.Validate())
}

func TestCreateTaskRequest_Validate_CollectsAllErrors(t *testing.T) {
	negative := -1.5
	badDate := "15-01-2024"
	req := CreateTaskRequest{
		ProjectID:      "",
		Title:          "",
		Status:         "done",
		Priority:       "critical",
		Progress:       150,
		EstimatedHours: &negative,
		DueDate:        &badDate,
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := errs.ToMap()
	for _, field := range []string{"project_id", "title", "status", "priority", "progress", "estimated_hours", "due_date"} {
		assert.Contains(t, fields, field)
	}
}

func TestUpdateTaskRequest_Validate(t *testing.T) {
	status := "in_progress"
	progress := 40
	req := UpdateTaskRequest{Status: &status, Progress: &progress}
	assert.NoError(t, req.Validate())

	empty := "  "
	req = UpdateTaskRequest{Title: &empty}
	assert.Error(t, req.Validate())

	badStatus := "shipped"
	req = UpdateTaskRequest{Status: &badStatus}
	assert.Error(t, req.Validate())
}

func TestRestrictToAssigneeFields(t *testing.T) {
	title := "New title"
	assignee := "someone-else"
	priority := "urgent"
	due := "2026-09-01"
	status := "review"
	progress := 80
	hours := 6.5

	req := UpdateTaskRequest{
		Title:          &title,
		AssigneeID:     &assignee,
		Priority:       &priority,
		DueDate:        &due,
		Status:         &status,
		Progress:       &progress,
		EstimatedHours: &hours,
	}

	req.RestrictToAssigneeFields()

	assert.Nil(t, req.Title)
	assert.Nil(t, req.AssigneeID)
	assert.Nil(t, req.Priority)
	assert.Nil(t, req.DueDate)

	require.NotNil(t, req.Status)
	assert.Equal(t, "review", *req.Status)
	require.NotNil(t, req.Progress)
	assert.Equal(t, 80, *req.Progress)
	require.NotNil(t, req.EstimatedHours)
	assert.Equal(t, 6.5, *req.EstimatedHours)
}
