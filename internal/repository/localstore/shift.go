package localstore

import (
	"context"
	"fmt"

	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
)

type ShiftRepository struct {
	store *Store
}

func NewShiftRepository(store *Store) shift.ShiftRepository {
	return &ShiftRepository{store: store}
}

func (r *ShiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	var shifts []shift.Shift
	if err := r.store.Load(KeyShifts, &shifts); err != nil {
		return nil, fmt.Errorf("load shifts: %w", err)
	}
	return shifts, nil
}

func (r *ShiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	shifts, err := r.List(ctx)
	if err != nil {
		return shift.Shift{}, err
	}
	for _, sh := range shifts {
		if sh.ID == id {
			return sh, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *ShiftRepository) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	r.store.Lock()
	defer r.store.Unlock()

	var shifts []shift.Shift
	if err := r.store.Load(KeyShifts, &shifts); err != nil {
		return shift.Shift{}, fmt.Errorf("load shifts: %w", err)
	}
	shifts = append(shifts, sh)
	if err := r.store.Save(KeyShifts, shifts); err != nil {
		return shift.Shift{}, fmt.Errorf("save shifts: %w", err)
	}
	return sh, nil
}

func (r *ShiftRepository) Update(ctx context.Context, sh shift.Shift) error {
	r.store.Lock()
	defer r.store.Unlock()

	var shifts []shift.Shift
	if err := r.store.Load(KeyShifts, &shifts); err != nil {
		return fmt.Errorf("load shifts: %w", err)
	}
	for i := range shifts {
		if shifts[i].ID == sh.ID {
			shifts[i] = sh
			if err := r.store.Save(KeyShifts, shifts); err != nil {
				return fmt.Errorf("save shifts: %w", err)
			}
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	r.store.Lock()
	defer r.store.Unlock()

	var shifts []shift.Shift
	if err := r.store.Load(KeyShifts, &shifts); err != nil {
		return fmt.Errorf("load shifts: %w", err)
	}
	kept := shifts[:0]
	found := false
	for _, sh := range shifts {
		if sh.ID == id {
			found = true
			continue
		}
		kept = append(kept, sh)
	}
	if !found {
		return shift.ErrShiftNotFound
	}
	if err := r.store.Save(KeyShifts, kept); err != nil {
		return fmt.Errorf("save shifts: %w", err)
	}
	return nil
}
