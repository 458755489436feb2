package report

import (
	"fmt"
	"time"

	"github.com/vwpl/emptrack-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Rows []MonthlyReportRow `json:"rows"`
}

// MonthlyReportRow aggregates one active employee's attendance over one
// calendar month. Late days count as present in the present total;
// absent days are every day of the month not otherwise accounted for.
// The shift column shows the employee's current shift, not the shift in
// effect during a historical month.
type MonthlyReportRow struct {
	EmployeeCode string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	ShiftName    string `json:"shift"`

	Month     string `json:"month"`
	Year      int    `json:"year"`
	TotalDays int    `json:"total_days"`

	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
	LateDays    int `json:"late_days"`
	HalfDays    int `json:"half_days"`
	LeaveDays   int `json:"leave_days"`

	TotalWorkHours  float64 `json:"total_work_hours"`
	AverageCheckIn  string  `json:"average_check_in"`
	AverageCheckOut string  `json:"average_check_out"`
}
