package employee

import "time"

type Employee struct {
	ID           string    `json:"id"`
	EmployeeCode string    `json:"employee_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Department   string    `json:"department"`
	Designation  string    `json:"designation"`
	JoiningDate  string    `json:"joining_date"`
	Photo        *string   `json:"photo,omitempty"`
	Status       Status    `json:"status"`
	ShiftID      *string   `json:"shift_id,omitempty"`
	State        *string   `json:"state,omitempty"`
	WorkLocation *string   `json:"work_location,omitempty"`
	FatherName   *string   `json:"father_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
}
