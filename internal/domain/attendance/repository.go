package attendance

import "context"

// Repository defines data access methods for attendance records.
type Repository interface {
	// List returns all attendance records in insertion order
	List(ctx context.Context) ([]Attendance, error)

	// ListByEmployee returns an employee's records in insertion order
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// ListByDate returns all records for a calendar day
	ListByDate(ctx context.Context, date string) ([]Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// calendar day. Returns nil when no record exists; at most one record
	// per (employee, date) is maintained by lookup-before-insert.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)

	// Create appends a new attendance record to the collection
	Create(ctx context.Context, rec Attendance) (Attendance, error)

	// CreateIfAbsent inserts rec unless a record already exists for its
	// (employee, date). Lookup and insert run under the writer lock so
	// concurrent callers cannot both insert. Returns the stored record
	// and whether rec was inserted; when it was not, the returned record
	// is the existing one.
	CreateIfAbsent(ctx context.Context, rec Attendance) (Attendance, bool, error)

	// UpdateOpen applies mutate to the open record (checked in, not yet
	// checked out) for one employee on one day and persists the result,
	// all under the writer lock. Returns the record as stored and
	// whether mutate was applied; the record is nil when the day has
	// none.
	UpdateOpen(ctx context.Context, employeeID string, date string, mutate func(Attendance) (Attendance, error)) (*Attendance, bool, error)

	// Update replaces the stored record with the same id
	Update(ctx context.Context, rec Attendance) error

	// DeleteByEmployee removes all records belonging to an employee.
	// Used by the employee deletion cascade.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
