package response

import (
	"errors"
	"net/http"

	"github.com/vwpl/emptrack-backend-go/internal/domain/attendance"
	"github.com/vwpl/emptrack-backend-go/internal/domain/auth"
	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
	"github.com/vwpl/emptrack-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidScanPayload):
		BadRequest(w, "Unrecognized badge payload", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
