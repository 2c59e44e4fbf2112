package attendance

import "context"

type AttendanceService interface {
	// ClockIn opens today's attendance record for the current employee.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's open record and returns hours worked.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// Status returns today's record for the current employee.
	Status(ctx context.Context) (StatusResponse, error)

	// History lists records; admin/hr and managers may query other employees.
	History(ctx context.Context, filter HistoryFilter) (ListAttendanceResponse, error)

	// Record creates a manual attendance entry (admin/hr only).
	Record(ctx context.Context, req RecordRequest) (AttendanceResponse, error)

	// UpdateRecord corrects an attendance entry (admin/hr only).
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (AttendanceResponse, error)

	// DeleteRecord removes an attendance entry (admin/hr only).
	DeleteRecord(ctx context.Context, id string) error

	// Report summarizes attendance per employee over a range, scoped by role.
	Report(ctx context.Context, filter ReportFilter) (ReportResponse, error)
}
