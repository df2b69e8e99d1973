package response

import (
	"errors"
	"net/http"

	"github.com/calldesk/callcenter-backend-go/internal/domain/attendance"
	"github.com/calldesk/callcenter-backend-go/internal/domain/auth"
	"github.com/calldesk/callcenter-backend-go/internal/domain/leave"
	"github.com/calldesk/callcenter-backend-go/internal/domain/performance"
	"github.com/calldesk/callcenter-backend-go/internal/domain/settings"
	"github.com/calldesk/callcenter-backend-go/internal/domain/task"
	"github.com/calldesk/callcenter-backend-go/internal/domain/user"
	"github.com/calldesk/callcenter-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Authorization errors
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrSupervisorAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrApprovalNotAllowed):
		Forbidden(w, err.Error())

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrCreateNotAllowed),
		errors.Is(err, task.ErrDeleteNotAllowed),
		errors.Is(err, task.ErrNotAssigned):
		Forbidden(w, err.Error())
	case errors.Is(err, task.ErrInvalidLane):
		BadRequest(w, err.Error(), nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrUpdateNotAllowed):
		Forbidden(w, err.Error())

	// Performance domain errors
	case errors.Is(err, performance.ErrNoTeamAssigned),
		errors.Is(err, performance.ErrNoTeamStats),
		errors.Is(err, performance.ErrNoUserMetrics):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
