package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidScanPayload = errors.New("scan payload does not identify an employee")
)
