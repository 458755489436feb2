package attendance

import (
	"github.com/vwpl/emptrack-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ScanRequest carries a QR card payload (or a bare employee id typed
// into the scanner field).
type ScanRequest struct {
	Payload string `json:"payload"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Payload) {
		errs = append(errs, validator.ValidationError{Field: "payload", Message: "Scan payload required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	CheckIn    *string  `json:"check_in,omitempty"`
	CheckOut   *string  `json:"check_out,omitempty"`
	Status     string   `json:"status"`
	WorkHours  *float64 `json:"work_hours,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	ShiftID    *string  `json:"shift_id,omitempty"`
}

// CheckResponse pairs the record state with what the call actually did,
// so callers can tell an applied transition from a skipped one.
type CheckResponse struct {
	Result CheckResult         `json:"result"`
	Record *AttendanceResponse `json:"record,omitempty"`
}

type HistoryFilter struct {
	Month *int
	Year  *int
}

type ListAttendanceResponse struct {
	TotalCount  int                  `json:"total_count"`
	Attendances []AttendanceResponse `json:"attendances"`
}
