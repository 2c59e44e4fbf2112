package attendance

import (
	"testing"

	"github.com/corestack-app/corestack-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRecordRequest_Validate(t *testing.T) {
	req := RecordRequest{
		EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Date:       "2026-08-24",
		ClockIn:    strPtr("2026-08-24T09:00:00Z"),
		ClockOut:   strPtr("2026-08-24T17:30:00Z"),
		Status:     "present",
	}
	assert.NoError(t, req.Validate())
}

func TestRecordRequest_Validate_ClockOutBeforeClockIn(t *testing.T) {
	req := RecordRequest{
		EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Date:       "2026-08-24",
		ClockIn:    strPtr("2026-08-24T17:30:00Z"),
		ClockOut:   strPtr("2026-08-24T09:00:00Z"),
		Status:     "present",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "clock_out")
}

func TestRecordRequest_Validate_ClockOutWithoutClockIn(t *testing.T) {
	req := RecordRequest{
		EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Date:       "2026-08-24",
		ClockOut:   strPtr("2026-08-24T17:30:00Z"),
		Status:     "present",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "clock_out")
}

func TestUpdateRecordRequest_Validate_ClockOrdering(t *testing.T) {
	req := UpdateRecordRequest{
		ID:       "rec-1",
		ClockIn:  strPtr("2026-08-24T09:00:00Z"),
		ClockOut: strPtr("2026-08-24T09:00:00Z"),
	}
	assert.Error(t, req.Validate())

	req.ClockOut = strPtr("2026-08-24T17:30:00Z")
	assert.NoError(t, req.Validate())

	// A lone clock_out is valid here; ordering against the stored
	// clock_in is the service's job.
	req = UpdateRecordRequest{ID: "rec-1", ClockOut: strPtr("2026-08-24T17:30:00Z")}
	assert.NoError(t, req.Validate())
}
