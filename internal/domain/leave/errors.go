package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidLeaveType     = errors.New("invalid leave type")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
	ErrPastStartDate        = errors.New("cannot request leave for past dates")
	ErrOverlappingRequest   = errors.New("leave request overlaps an existing request")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrNotCancellable       = errors.New("leave request can no longer be cancelled")
	ErrInvalidAction        = errors.New("action must be approve or reject")
	ErrUnauthorized         = errors.New("unauthorized to access this leave request")
)
