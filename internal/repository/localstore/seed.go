package localstore

import (
	"time"

	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
)

func strPtr(s string) *string { return &s }

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Demo data installed on first run. Attendance and shift assignments
// start empty and are never seeded.
var sampleEmployees = []employee.Employee{
	{
		ID:           "1",
		EmployeeCode: "VW001",
		Name:         "Rajesh Kumar",
		Email:        "rajesh@vishwakarma.com",
		Phone:        "+91 9876543210",
		Department:   "Engineering",
		Designation:  "Senior Engineer",
		JoiningDate:  "2022-01-15",
		Status:       employee.StatusActive,
		ShiftID:      strPtr("1"),
		CreatedAt:    mustTime("2022-01-15T00:00:00Z"),
	},
	{
		ID:           "2",
		EmployeeCode: "VW002",
		Name:         "Priya Sharma",
		Email:        "priya@vishwakarma.com",
		Phone:        "+91 9876543211",
		Department:   "HR",
		Designation:  "HR Manager",
		JoiningDate:  "2021-06-01",
		Status:       employee.StatusActive,
		ShiftID:      strPtr("1"),
		CreatedAt:    mustTime("2021-06-01T00:00:00Z"),
	},
	{
		ID:           "3",
		EmployeeCode: "VW003",
		Name:         "Amit Patel",
		Email:        "amit@vishwakarma.com",
		Phone:        "+91 9876543212",
		Department:   "Production",
		Designation:  "Production Supervisor",
		JoiningDate:  "2023-03-20",
		Status:       employee.StatusActive,
		ShiftID:      strPtr("2"),
		CreatedAt:    mustTime("2023-03-20T00:00:00Z"),
	},
	{
		ID:           "4",
		EmployeeCode: "VW004",
		Name:         "Sunita Devi",
		Email:        "sunita@vishwakarma.com",
		Phone:        "+91 9876543213",
		Department:   "Accounts",
		Designation:  "Accountant",
		JoiningDate:  "2022-08-10",
		Status:       employee.StatusActive,
		ShiftID:      strPtr("1"),
		CreatedAt:    mustTime("2022-08-10T00:00:00Z"),
	},
	{
		ID:           "5",
		EmployeeCode: "VW005",
		Name:         "Vikram Singh",
		Email:        "vikram@vishwakarma.com",
		Phone:        "+91 9876543214",
		Department:   "Engineering",
		Designation:  "Junior Engineer",
		JoiningDate:  "2024-01-05",
		Status:       employee.StatusActive,
		ShiftID:      strPtr("3"),
		CreatedAt:    mustTime("2024-01-05T00:00:00Z"),
	},
}

var sampleShifts = []shift.Shift{
	{
		ID:            "1",
		Name:          "Morning Shift",
		StartTime:     "09:00",
		EndTime:       "18:00",
		LateThreshold: 15,
		Color:         "#22c55e",
		IsActive:      true,
		CreatedAt:     mustTime("2022-01-01T00:00:00Z"),
	},
	{
		ID:            "2",
		Name:          "Afternoon Shift",
		StartTime:     "14:00",
		EndTime:       "23:00",
		LateThreshold: 15,
		Color:         "#3b82f6",
		IsActive:      true,
		CreatedAt:     mustTime("2022-01-01T00:00:00Z"),
	},
	{
		ID:            "3",
		Name:          "Night Shift",
		StartTime:     "22:00",
		EndTime:       "07:00",
		LateThreshold: 15,
		Color:         "#8b5cf6",
		IsActive:      true,
		CreatedAt:     mustTime("2022-01-01T00:00:00Z"),
	},
}

// seed installs sample employees and shifts when their collections have
// never been written. Attendance and assignments are left absent.
func (s *Store) seed() error {
	haveEmployees, err := s.exists(KeyEmployees)
	if err != nil {
		return err
	}
	if !haveEmployees {
		if err := s.Save(KeyEmployees, sampleEmployees); err != nil {
			return err
		}
	}

	haveShifts, err := s.exists(KeyShifts)
	if err != nil {
		return err
	}
	if !haveShifts {
		if err := s.Save(KeyShifts, sampleShifts); err != nil {
			return err
		}
	}

	return nil
}
