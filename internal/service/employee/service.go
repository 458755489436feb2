package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vwpl/emptrack-backend-go/internal/domain/attendance"
	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
	"github.com/vwpl/emptrack-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	assignmentRepo shift.AssignmentRepository
	nowFn          func() time.Time
}

func NewEmployeeService(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	assignmentRepo shift.AssignmentRepository,
) employee.Service {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		assignmentRepo: assignmentRepo,
		nowFn:          time.Now,
	}
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeesResponse, error) {
	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: len(responses),
		Employees:  responses,
	}, nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	emp := employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		Designation:  req.Designation,
		JoiningDate:  req.JoiningDate,
		Photo:        req.Photo,
		Status:       status,
		ShiftID:      req.ShiftID,
		State:        req.State,
		WorkLocation: req.WorkLocation,
		FatherName:   req.FatherName,
		CreatedAt:    s.nowFn(),
	}

	// Uniqueness of the employee id is decided under the writer lock;
	// a concurrent create with the same code cannot also insert.
	created, ok, err := s.employeeRepo.CreateIfCodeFree(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	return mapEmployeeToResponse(created), nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.JoiningDate != nil {
		emp.JoiningDate = *req.JoiningDate
	}
	if req.Photo != nil {
		emp.Photo = req.Photo
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.ShiftID != nil {
		// An empty string clears the direct shift reference.
		if *req.ShiftID == "" {
			emp.ShiftID = nil
		} else {
			emp.ShiftID = req.ShiftID
		}
	}
	if req.State != nil {
		emp.State = req.State
	}
	if req.WorkLocation != nil {
		emp.WorkLocation = req.WorkLocation
	}
	if req.FatherName != nil {
		emp.FatherName = req.FatherName
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Delete implements employee.Service.
//
// Deleting an employee cascades to their attendance records and shift
// assignments so no collection keeps dangling references to them.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if err := s.attendanceRepo.DeleteByEmployee(ctx, id); err != nil {
		return fmt.Errorf("failed to remove attendance for employee: %w", err)
	}

	if err := s.assignmentRepo.DeleteByEmployee(ctx, id); err != nil {
		return fmt.Errorf("failed to remove assignments for employee: %w", err)
	}

	return nil
}

// Import implements employee.Service.
//
// Every row is validated independently; a rejected row carries its
// failure messages and never halts the batch.
func (s *EmployeeServiceImpl) Import(ctx context.Context, req employee.ImportRequest) (employee.ImportResponse, error) {
	results := make([]employee.ImportRowResult, 0, len(req.Rows))
	imported := 0

	for _, row := range req.Rows {
		createReq := employee.CreateEmployeeRequest{
			EmployeeCode: row.EmployeeCode,
			Name:         row.Name,
			Email:        row.Email,
			Phone:        row.Phone,
			Department:   row.Department,
			Designation:  row.Designation,
			JoiningDate:  row.JoiningDate,
		}

		var msgs []string
		if err := createReq.Validate(); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				msgs = validationErrs.Messages()
			} else {
				msgs = []string{err.Error()}
			}
		}

		if len(msgs) == 0 {
			emp := employee.Employee{
				ID:           uuid.NewString(),
				EmployeeCode: row.EmployeeCode,
				Name:         row.Name,
				Email:        row.Email,
				Phone:        row.Phone,
				Department:   row.Department,
				Designation:  row.Designation,
				JoiningDate:  row.JoiningDate,
				Status:       employee.StatusActive,
				CreatedAt:    s.nowFn(),
			}
			// Inserted rows are visible to later rows of the same batch,
			// so a repeated code within the batch is rejected too.
			_, ok, err := s.employeeRepo.CreateIfCodeFree(ctx, emp)
			if err != nil {
				return employee.ImportResponse{}, fmt.Errorf("failed to create employee: %w", err)
			}
			if ok {
				imported++
			} else {
				msgs = append(msgs, "ID already exists")
			}
		}

		results = append(results, employee.ImportRowResult{
			EmployeeCode: row.EmployeeCode,
			Name:         row.Name,
			Valid:        len(msgs) == 0,
			Errors:       msgs,
		})
	}

	return employee.ImportResponse{
		Total:    len(results),
		Imported: imported,
		Rejected: len(results) - imported,
		Rows:     results,
	}, nil
}

// UpdatePhotos implements employee.Service.
func (s *EmployeeServiceImpl) UpdatePhotos(ctx context.Context, req employee.BatchPhotoRequest) (employee.BatchPhotoResponse, error) {
	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.BatchPhotoResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	byCode := make(map[string]employee.Employee, len(emps))
	for _, emp := range emps {
		byCode[strings.ToUpper(emp.EmployeeCode)] = emp
	}

	updated := 0
	rows := make([]employee.PhotoUpdateResult, 0, len(req.Updates))
	for _, upd := range req.Updates {
		emp, ok := byCode[strings.ToUpper(upd.EmployeeCode)]
		if !ok {
			rows = append(rows, employee.PhotoUpdateResult{EmployeeCode: upd.EmployeeCode})
			continue
		}
		photo := upd.Photo
		emp.Photo = &photo
		if err := s.employeeRepo.Update(ctx, emp); err != nil {
			return employee.BatchPhotoResponse{}, fmt.Errorf("failed to update employee: %w", err)
		}
		updated++
		rows = append(rows, employee.PhotoUpdateResult{
			EmployeeCode: upd.EmployeeCode,
			Matched:      true,
			Name:         emp.Name,
		})
	}

	return employee.BatchPhotoResponse{
		Total:   len(rows),
		Updated: updated,
		Rows:    rows,
	}, nil
}

// GetBadge implements employee.Service.
func (s *EmployeeServiceImpl) GetBadge(ctx context.Context, id string) (employee.BadgeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.BadgeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.BadgeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.BadgeResponse{
		EmployeeCode: emp.EmployeeCode,
		ID:           emp.ID,
		Name:         emp.Name,
		Department:   emp.Department,
		Designation:  emp.Designation,
	}, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.Name,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Department:   emp.Department,
		Designation:  emp.Designation,
		JoiningDate:  emp.JoiningDate,
		Photo:        emp.Photo,
		Status:       string(emp.Status),
		ShiftID:      emp.ShiftID,
		State:        emp.State,
		WorkLocation: emp.WorkLocation,
		FatherName:   emp.FatherName,
		CreatedAt:    emp.CreatedAt.Format(time.RFC3339),
	}
}
