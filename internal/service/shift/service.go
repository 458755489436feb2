package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shiftRepo      shift.ShiftRepository
	assignmentRepo shift.AssignmentRepository
	employeeRepo   employee.Repository
	nowFn          func() time.Time
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
	employeeRepo employee.Repository,
) shift.Service {
	return &ShiftServiceImpl{
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		nowFn:          time.Now,
	}
}

// ListShifts implements shift.Service.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) (shift.ListShiftsResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return shift.ListShiftsResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}

	return shift.ListShiftsResponse{
		TotalCount: len(responses),
		Shifts:     responses,
	}, nil
}

// CreateShift implements shift.Service.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	sh := shift.Shift{
		ID:            uuid.NewString(),
		Name:          req.Name,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		LateThreshold: req.LateThreshold,
		Color:         req.Color,
		IsActive:      isActive,
		CreatedAt:     s.nowFn(),
	}

	created, err := s.shiftRepo.Create(ctx, sh)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return mapShiftToResponse(created), nil
}

// UpdateShift implements shift.Service.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.StartTime != nil {
		sh.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sh.EndTime = *req.EndTime
	}
	if req.LateThreshold != nil {
		sh.LateThreshold = *req.LateThreshold
	}
	if req.Color != nil {
		sh.Color = *req.Color
	}
	if req.IsActive != nil {
		sh.IsActive = *req.IsActive
	}

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return mapShiftToResponse(sh), nil
}

// DeleteShift implements shift.Service.
//
// Deleting a shift cascades: assignments referencing it are removed and
// the direct shift reference is cleared on employees that pointed at it.
// The employee records themselves are untouched otherwise.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	if err := s.assignmentRepo.DeleteByShift(ctx, id); err != nil {
		return fmt.Errorf("failed to remove assignments for shift: %w", err)
	}

	if err := s.employeeRepo.ClearShiftRef(ctx, id); err != nil {
		return fmt.Errorf("failed to clear employee shift references: %w", err)
	}

	return nil
}

// ListAssignments implements shift.Service.
func (s *ShiftServiceImpl) ListAssignments(ctx context.Context) (shift.ListAssignmentsResponse, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return shift.ListAssignmentsResponse{}, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapAssignmentToResponse(a))
	}

	return shift.ListAssignmentsResponse{
		TotalCount:  len(responses),
		Assignments: responses,
	}, nil
}

// AssignShift implements shift.Service.
//
// The assignment table is the single source of truth for date-ranged
// overrides; creating one does not touch the employee's direct shift
// reference.
func (s *ShiftServiceImpl) AssignShift(ctx context.Context, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return shift.AssignmentResponse{}, employee.ErrEmployeeNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.AssignmentResponse{}, shift.ErrShiftNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	a := shift.Assignment{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		ShiftID:      req.ShiftID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsRotating:   req.IsRotating,
		RotationDays: req.RotationDays,
	}

	created, err := s.assignmentRepo.Create(ctx, a)
	if err != nil {
		return shift.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return mapAssignmentToResponse(created), nil
}

// RemoveAssignment implements shift.Service.
func (s *ShiftServiceImpl) RemoveAssignment(ctx context.Context, id string) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shift.ErrAssignmentNotFound) {
			return shift.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// ResolveCurrentShift implements shift.Service.
func (s *ShiftServiceImpl) ResolveCurrentShift(ctx context.Context, employeeID string) (*shift.Shift, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	// A direct reference wins over any assignment. A dangling direct id
	// resolves to no shift at all rather than falling through.
	if err == nil && emp.ShiftID != nil {
		return findShift(shifts, *emp.ShiftID), nil
	}

	today := s.nowFn().Format("2006-01-02")
	assignments, err := s.assignmentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	for _, a := range assignments {
		if a.Covers(today) {
			// First covering assignment in insertion order wins when
			// ranges overlap.
			return findShift(shifts, a.ShiftID), nil
		}
	}

	// System-wide default: the first shift ever defined.
	if len(shifts) > 0 {
		return &shifts[0], nil
	}
	return nil, nil
}

func findShift(shifts []shift.Shift, id string) *shift.Shift {
	for i := range shifts {
		if shifts[i].ID == id {
			return &shifts[i]
		}
	}
	return nil
}

func mapShiftToResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:            sh.ID,
		Name:          sh.Name,
		StartTime:     sh.StartTime,
		EndTime:       sh.EndTime,
		LateThreshold: sh.LateThreshold,
		Color:         sh.Color,
		IsActive:      sh.IsActive,
		CreatedAt:     sh.CreatedAt.Format(time.RFC3339),
	}
}

func mapAssignmentToResponse(a shift.Assignment) shift.AssignmentResponse {
	return shift.AssignmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		ShiftID:      a.ShiftID,
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
		IsRotating:   a.IsRotating,
		RotationDays: a.RotationDays,
	}
}
