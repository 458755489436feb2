package shift

import (
	"github.com/vwpl/emptrack-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name          string `json:"name"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	LateThreshold int    `json:"late_threshold"`
	Color         string `json:"color"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Shift name required"})
	}
	if _, ok := validator.IsValidClock(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "Start time must be in HH:MM format"})
	}
	if _, ok := validator.IsValidClock(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "End time must be in HH:MM format"})
	}
	if r.LateThreshold < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_threshold", Message: "Late threshold must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	Name          *string `json:"name,omitempty"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	LateThreshold *int    `json:"late_threshold,omitempty"`
	Color         *string `json:"color,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != nil {
		if _, ok := validator.IsValidClock(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "Start time must be in HH:MM format"})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidClock(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "End time must be in HH:MM format"})
		}
	}
	if r.LateThreshold != nil && *r.LateThreshold < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_threshold", Message: "Late threshold must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	LateThreshold int    `json:"late_threshold"`
	Color         string `json:"color"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
}

type ListShiftsResponse struct {
	TotalCount int             `json:"total_count"`
	Shifts     []ShiftResponse `json:"shifts"`
}

type AssignShiftRequest struct {
	EmployeeID   string  `json:"employee_id"`
	ShiftID      string  `json:"shift_id"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	IsRotating   bool    `json:"is_rotating"`
	RotationDays *int    `json:"rotation_days,omitempty"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "Shift required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be in YYYY-MM-DD format"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be in YYYY-MM-DD format"})
		} else if *r.EndDate < r.StartDate {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must not be before start date"})
		}
	}
	if r.IsRotating && (r.RotationDays == nil || *r.RotationDays <= 0) {
		errs = append(errs, validator.ValidationError{Field: "rotation_days", Message: "Rotation days required for rotating assignments"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	ShiftID      string  `json:"shift_id"`
	StartDate    string  `json:"start_date"`
	EndDate      *string `json:"end_date,omitempty"`
	IsRotating   bool    `json:"is_rotating"`
	RotationDays *int    `json:"rotation_days,omitempty"`
}

type ListAssignmentsResponse struct {
	TotalCount  int                  `json:"total_count"`
	Assignments []AssignmentResponse `json:"assignments"`
}
