package attendance

// Attendance is one employee's check-in/check-out data for one calendar
// day. Times are wall-clock strings with no timezone, matching what the
// badge terminal displays.
type Attendance struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	CheckIn    *string  `json:"check_in,omitempty"`
	CheckOut   *string  `json:"check_out,omitempty"`
	Status     Status   `json:"status"`
	WorkHours  *float64 `json:"work_hours,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	ShiftID    *string  `json:"shift_id,omitempty"`
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusLeave),
}

// CheckResult reports what a check-in/check-out call actually did.
// Precondition failures are skips, never errors: a second check-in or a
// check-out without an open check-in leaves the collection unchanged.
type CheckResult string

const (
	ResultApplied          CheckResult = "applied"
	ResultAlreadyCheckedIn CheckResult = "skipped_already_checked_in"
	ResultNoOpenCheckIn    CheckResult = "skipped_no_open_check_in"
)
