package shift

import "context"

// ShiftRepository defines data access methods for the shifts collection.
type ShiftRepository interface {
	// List returns all shifts in insertion order
	List(ctx context.Context) ([]Shift, error)

	// GetByID retrieves a shift by id
	GetByID(ctx context.Context, id string) (Shift, error)

	// Create appends a new shift to the collection
	Create(ctx context.Context, sh Shift) (Shift, error)

	// Update replaces the stored shift with the same id
	Update(ctx context.Context, sh Shift) error

	// Delete removes a shift from the collection
	Delete(ctx context.Context, id string) error
}

// AssignmentRepository defines data access methods for shift assignments.
type AssignmentRepository interface {
	// List returns all assignments in insertion order
	List(ctx context.Context) ([]Assignment, error)

	// GetByID retrieves an assignment by id
	GetByID(ctx context.Context, id string) (Assignment, error)

	// ListByEmployee returns an employee's assignments in insertion order
	ListByEmployee(ctx context.Context, employeeID string) ([]Assignment, error)

	// Create appends a new assignment to the collection
	Create(ctx context.Context, a Assignment) (Assignment, error)

	// Delete removes an assignment from the collection
	Delete(ctx context.Context, id string) error

	// DeleteByEmployee removes all assignments belonging to an employee
	DeleteByEmployee(ctx context.Context, employeeID string) error

	// DeleteByShift removes all assignments referencing a shift
	DeleteByShift(ctx context.Context, shiftID string) error
}
