package shift

import "time"

type Shift struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	LateThreshold int       `json:"late_threshold"`
	Color         string    `json:"color"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Assignment is a date-bounded override of an employee's effective
// shift, consulted when the employee carries no direct shift reference.
// An absent EndDate means the assignment is open-ended.
type Assignment struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	ShiftID      string  `json:"shift_id"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	IsRotating   bool    `json:"is_rotating"`
	RotationDays *int    `json:"rotation_days,omitempty"`
}

// Covers reports whether the assignment's date range contains the given
// day. Dates are ISO "YYYY-MM-DD" strings, so lexical order is date order.
func (a Assignment) Covers(date string) bool {
	return a.StartDate <= date && (a.EndDate == nil || *a.EndDate >= date)
}
