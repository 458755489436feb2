package attendance

import "context"

// Service defines business logic for attendance operations.
//
// The per-(employee, day) state machine is NoRecord -> CheckedIn ->
// CheckedOut; CheckedOut is terminal. Transitions whose precondition
// does not hold are reported as skips in the CheckResponse, not errors.
type Service interface {
	// CheckIn records the NoRecord -> CheckedIn transition, determining
	// lateness against the employee's resolved shift
	CheckIn(ctx context.Context, req CheckInRequest) (CheckResponse, error)

	// CheckOut records the CheckedIn -> CheckedOut transition and
	// computes work hours for the day
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckResponse, error)

	// Scan performs a check-in driven by a QR card payload
	Scan(ctx context.Context, req ScanRequest) (CheckResponse, error)

	// GetToday lists all attendance records for the current day
	GetToday(ctx context.Context) (ListAttendanceResponse, error)

	// List lists all attendance records, optionally scoped to one
	// calendar month
	List(ctx context.Context, filter HistoryFilter) (ListAttendanceResponse, error)

	// GetEmployeeHistory lists an employee's records, optionally scoped
	// to one calendar month
	GetEmployeeHistory(ctx context.Context, employeeID string, filter HistoryFilter) (ListAttendanceResponse, error)
}
