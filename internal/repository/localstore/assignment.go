package localstore

import (
	"context"
	"fmt"

	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
)

type AssignmentRepository struct {
	store *Store
}

func NewAssignmentRepository(store *Store) shift.AssignmentRepository {
	return &AssignmentRepository{store: store}
}

func (r *AssignmentRepository) List(ctx context.Context) ([]shift.Assignment, error) {
	var assignments []shift.Assignment
	if err := r.store.Load(KeyShiftAssignments, &assignments); err != nil {
		return nil, fmt.Errorf("load shift assignments: %w", err)
	}
	return assignments, nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (shift.Assignment, error) {
	assignments, err := r.List(ctx)
	if err != nil {
		return shift.Assignment{}, err
	}
	for _, a := range assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return shift.Assignment{}, shift.ErrAssignmentNotFound
}

func (r *AssignmentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]shift.Assignment, error) {
	assignments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var result []shift.Assignment
	for _, a := range assignments {
		if a.EmployeeID == employeeID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *AssignmentRepository) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	r.store.Lock()
	defer r.store.Unlock()

	var assignments []shift.Assignment
	if err := r.store.Load(KeyShiftAssignments, &assignments); err != nil {
		return shift.Assignment{}, fmt.Errorf("load shift assignments: %w", err)
	}
	assignments = append(assignments, a)
	if err := r.store.Save(KeyShiftAssignments, assignments); err != nil {
		return shift.Assignment{}, fmt.Errorf("save shift assignments: %w", err)
	}
	return a, nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	r.store.Lock()
	defer r.store.Unlock()

	var assignments []shift.Assignment
	if err := r.store.Load(KeyShiftAssignments, &assignments); err != nil {
		return fmt.Errorf("load shift assignments: %w", err)
	}
	kept := assignments[:0]
	found := false
	for _, a := range assignments {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return shift.ErrAssignmentNotFound
	}
	if err := r.store.Save(KeyShiftAssignments, kept); err != nil {
		return fmt.Errorf("save shift assignments: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return r.deleteWhere(func(a shift.Assignment) bool { return a.EmployeeID == employeeID })
}

func (r *AssignmentRepository) DeleteByShift(ctx context.Context, shiftID string) error {
	return r.deleteWhere(func(a shift.Assignment) bool { return a.ShiftID == shiftID })
}

func (r *AssignmentRepository) deleteWhere(match func(shift.Assignment) bool) error {
	r.store.Lock()
	defer r.store.Unlock()

	var assignments []shift.Assignment
	if err := r.store.Load(KeyShiftAssignments, &assignments); err != nil {
		return fmt.Errorf("load shift assignments: %w", err)
	}
	kept := assignments[:0]
	for _, a := range assignments {
		if match(a) {
			continue
		}
		kept = append(kept, a)
	}
	if len(kept) == len(assignments) {
		return nil
	}
	if err := r.store.Save(KeyShiftAssignments, kept); err != nil {
		return fmt.Errorf("save shift assignments: %w", err)
	}
	return nil
}
