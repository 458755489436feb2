package shift

import "context"

// Service defines business logic for shifts and shift assignments,
// including effective-shift resolution for a given employee.
type Service interface {
	// ListShifts retrieves all shifts
	ListShifts(ctx context.Context) (ListShiftsResponse, error)

	// CreateShift adds a shift after validation
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	// UpdateShift applies a partial update to a shift
	UpdateShift(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteShift removes a shift and cascades: assignments referencing
	// it are removed and direct employee references are cleared
	DeleteShift(ctx context.Context, id string) error

	// ListAssignments retrieves all shift assignments
	ListAssignments(ctx context.Context) (ListAssignmentsResponse, error)

	// AssignShift creates a date-ranged assignment for an employee
	AssignShift(ctx context.Context, req AssignShiftRequest) (AssignmentResponse, error)

	// RemoveAssignment deletes a shift assignment
	RemoveAssignment(ctx context.Context, id string) error

	// ResolveCurrentShift determines the shift in effect for an employee
	// today. Priority: direct shift reference on the employee record, then
	// the first covering assignment in insertion order, then the first
	// shift in the collection as system default. Returns nil when nothing
	// resolves (dangling references resolve to nil, not an error).
	ResolveCurrentShift(ctx context.Context, employeeID string) (*Shift, error)
}
