package response

import (
	"errors"
	"net/http"

	"github.com/corestack-app/corestack-backend-go/internal/domain/attendance"
	"github.com/corestack-app/corestack-backend-go/internal/domain/auth"
	"github.com/corestack-app/corestack-backend-go/internal/domain/department"
	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/domain/leave"
	"github.com/corestack-app/corestack-backend-go/internal/domain/project"
	"github.com/corestack-app/corestack-backend-go/internal/domain/task"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid refresh token")
	case errors.Is(err, auth.ErrWrongCurrentPassword):
		BadRequest(w, "Current password is incorrect", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrAdminOrHRRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentHasEmployees):
		Conflict(w, "Department still has employees assigned")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Employee profile not found for current user")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrUserAlreadyLinked):
		Conflict(w, "User already has an employee profile")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own employee record", nil)
	case errors.Is(err, employee.ErrFutureJoiningDate):
		BadRequest(w, "Date of joining cannot be in the future", nil)
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "You don't have permission to access this employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		BadRequest(w, "Already clocked in today", nil)
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "Not yet clocked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		BadRequest(w, "Already clocked out today", nil)
	case errors.Is(err, attendance.ErrRecordExists):
		Conflict(w, "Attendance record already exists for this date")
	case errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrInvalidWorkFrom),
		errors.Is(err, attendance.ErrClockOutBeforeClockIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "You don't have permission to access these attendance records")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrPastStartDate),
		errors.Is(err, leave.ErrInvalidLeaveType),
		errors.Is(err, leave.ErrInvalidAction):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "You already have a leave request for this period")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotCancellable):
		Conflict(w, "Leave request can no longer be cancelled")
	case errors.Is(err, leave.ErrUnauthorized):
		Forbidden(w, "You don't have permission to access this leave request")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrMemberExists):
		Conflict(w, "Employee is already a member of this project")
	case errors.Is(err, project.ErrMemberNotFound):
		NotFound(w, "Project member not found")
	case errors.Is(err, project.ErrInvalidStatus),
		errors.Is(err, project.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, project.ErrUnauthorized):
		Forbidden(w, "You don't have permission to modify this project")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrCommentNotFound):
		NotFound(w, "Task comment not found")
	case errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrAssigneeNotMember):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, task.ErrUnauthorized):
		Forbidden(w, "You don't have permission to modify this task")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
