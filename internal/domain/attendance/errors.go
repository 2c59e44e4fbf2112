package attendance

import "errors"

var (
	ErrAttendanceNotFound    = errors.New("attendance record not found")
	ErrAlreadyClockedIn      = errors.New("already clocked in today")
	ErrNotClockedIn          = errors.New("not yet clocked in today")
	ErrAlreadyClockedOut     = errors.New("already clocked out today")
	ErrRecordExists          = errors.New("attendance record already exists for this date")
	ErrClockOutBeforeClockIn = errors.New("clock_out must be after clock_in")
	ErrInvalidStatus         = errors.New("status must be present, absent or half_day")
	ErrInvalidWorkFrom       = errors.New("work_from must be office, home or remote")
	ErrUnauthorized          = errors.New("unauthorized to access these attendance records")
)
