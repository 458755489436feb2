package employee

import (
	"github.com/vwpl/emptrack-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Department   string  `json:"department"`
	Designation  string  `json:"designation"`
	JoiningDate  string  `json:"joining_date"`
	Photo        *string `json:"photo,omitempty"`
	Status       string  `json:"status"`
	ShiftID      *string `json:"shift_id,omitempty"`
	State        *string `json:"state,omitempty"`
	WorkLocation *string `json:"work_location,omitempty"`
	FatherName   *string `json:"father_name,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "Department required"})
	}
	if r.JoiningDate != "" {
		if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "Joining date must be in YYYY-MM-DD format"})
		}
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Department   *string `json:"department,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	JoiningDate  *string `json:"joining_date,omitempty"`
	Photo        *string `json:"photo,omitempty"`
	Status       *string `json:"status,omitempty"`
	ShiftID      *string `json:"shift_id,omitempty"`
	State        *string `json:"state,omitempty"`
	WorkLocation *string `json:"work_location,omitempty"`
	FatherName   *string `json:"father_name,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "Joining date must be in YYYY-MM-DD format"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Department   string  `json:"department"`
	Designation  string  `json:"designation"`
	JoiningDate  string  `json:"joining_date"`
	Photo        *string `json:"photo,omitempty"`
	Status       string  `json:"status"`
	ShiftID      *string `json:"shift_id,omitempty"`
	State        *string `json:"state,omitempty"`
	WorkLocation *string `json:"work_location,omitempty"`
	FatherName   *string `json:"father_name,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ListEmployeesResponse struct {
	TotalCount int                `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}

// ImportRow is one record of a batch import. Rows are validated
// independently; a failed row never halts the batch.
type ImportRow struct {
	EmployeeCode string `json:"employee_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Department   string `json:"department"`
	Designation  string `json:"designation"`
	JoiningDate  string `json:"joining_date"`
}

type ImportRequest struct {
	Rows []ImportRow `json:"rows"`
}

type ImportRowResult struct {
	EmployeeCode string   `json:"employee_id"`
	Name         string   `json:"name"`
	Valid        bool     `json:"valid"`
	Errors       []string `json:"errors,omitempty"`
}

type ImportResponse struct {
	Total    int               `json:"total"`
	Imported int               `json:"imported"`
	Rejected int               `json:"rejected"`
	Rows     []ImportRowResult `json:"rows"`
}

// PhotoUpdate assigns a photo to the employee carrying the given
// employee id. Codes are matched case-insensitively.
type PhotoUpdate struct {
	EmployeeCode string `json:"employee_id"`
	Photo        string `json:"photo"`
}

type BatchPhotoRequest struct {
	Updates []PhotoUpdate `json:"updates"`
}

type PhotoUpdateResult struct {
	EmployeeCode string `json:"employee_id"`
	Matched      bool   `json:"matched"`
	Name         string `json:"name,omitempty"`
}

type BatchPhotoResponse struct {
	Total   int                 `json:"total"`
	Updated int                 `json:"updated"`
	Rows    []PhotoUpdateResult `json:"rows"`
}

// BadgeResponse is the compact payload printed into an employee's
// QR card. Scan-based check-in accepts this payload as-is.
type BadgeResponse struct {
	EmployeeCode string `json:"employeeId"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Designation  string `json:"designation"`
}
