package employee

import "context"

// Repository defines data access methods for the employees collection.
type Repository interface {
	// List returns all employees in insertion order
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves an employee by internal id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode retrieves an employee by business-facing employee id.
	// Returns nil when no employee carries the code.
	GetByCode(ctx context.Context, code string) (*Employee, error)

	// Create appends a new employee to the collection
	Create(ctx context.Context, emp Employee) (Employee, error)

	// CreateIfCodeFree inserts emp unless another employee already
	// carries its employee code. Check and insert run under the writer
	// lock so concurrent callers cannot both claim the code.
	CreateIfCodeFree(ctx context.Context, emp Employee) (Employee, bool, error)

	// Update replaces the stored employee with the same id
	Update(ctx context.Context, emp Employee) error

	// Delete removes an employee from the collection
	Delete(ctx context.Context, id string) error

	// ClearShiftRef unsets the direct shift reference on every employee
	// pointing at the given shift. Used by the shift deletion cascade.
	ClearShiftRef(ctx context.Context, shiftID string) error
}
