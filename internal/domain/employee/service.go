package employee

import "context"

// Service defines business logic for employee management
type Service interface {
	// List retrieves all employees
	List(ctx context.Context) (ListEmployeesResponse, error)

	// Get retrieves a single employee by internal id
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Create adds an employee after validation and duplicate checks
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update applies a partial update to an employee
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee and cascades to attendance records
	// and shift assignments belonging to them
	Delete(ctx context.Context, id string) error

	// Import validates each row independently and inserts the valid ones
	Import(ctx context.Context, req ImportRequest) (ImportResponse, error)

	// UpdatePhotos assigns photos to employees matched by employee id.
	// Unmatched ids are reported, not rejected
	UpdatePhotos(ctx context.Context, req BatchPhotoRequest) (BatchPhotoResponse, error)

	// GetBadge returns the QR card payload for an employee
	GetBadge(ctx context.Context, id string) (BadgeResponse, error)
}
