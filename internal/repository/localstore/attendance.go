package localstore

import (
	"context"
	"fmt"

	"github.com/vwpl/emptrack-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.Repository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	if err := r.store.Load(KeyAttendance, &records); err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}
	return records, nil
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var result []attendance.Attendance
	for _, rec := range records {
		if rec.EmployeeID == employeeID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var result []attendance.Attendance
	for _, rec := range records {
		if rec.Date == date {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].EmployeeID == employeeID && records[i].Date == date {
			return &records[i], nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	r.store.Lock()
	defer r.store.Unlock()

	var records []attendance.Attendance
	if err := r.store.Load(KeyAttendance, &records); err != nil {
		return attendance.Attendance{}, fmt.Errorf("load attendance: %w", err)
	}
	records = append(records, rec)
	if err := r.store.Save(KeyAttendance, records); err != nil {
		return attendance.Attendance{}, fmt.Errorf("save attendance: %w", err)
	}
	return rec, nil
}

func (r *AttendanceRepository) CreateIfAbsent(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, bool, error) {
	r.store.Lock()
	defer r.store.Unlock()

	var records []attendance.Attendance
	if err := r.store.Load(KeyAttendance, &records); err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("load attendance: %w", err)
	}
	for i := range records {
		if records[i].EmployeeID == rec.EmployeeID && records[i].Date == rec.Date {
			return records[i], false, nil
		}
	}
	records = append(records, rec)
	if err := r.store.Save(KeyAttendance, records); err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("save attendance: %w", err)
	}
	return rec, true, nil
}

func (r *AttendanceRepository) UpdateOpen(ctx context.Context, employeeID string, date string, mutate func(attendance.Attendance) (attendance.Attendance, error)) (*attendance.Attendance, bool, error) {
	r.store.Lock()
	defer r.store.Unlock()

	var records []attendance.Attendance
	if err := r.store.Load(KeyAttendance, &records); err != nil {
		return nil, false, fmt.Errorf("load attendance: %w", err)
	}
	for i := range records {
		if records[i].EmployeeID != employeeID || records[i].Date != date {
			continue
		}
		if records[i].CheckIn == nil || records[i].CheckOut != nil {
			return &records[i], false, nil
		}
		updated, err := mutate(records[i])
		if err != nil {
			return nil, false, err
		}
		records[i] = updated
		if err := r.store.Save(KeyAttendance, records); err != nil {
			return nil, false, fmt.Errorf("save attendance: %w", err)
		}
		return &records[i], true, nil
	}
	return nil, false, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, rec attendance.Attendance) error {
	r.store.Lock()
	defer r.store.Unlock()

	var records []attendance.Attendance
	if err := r.store.Load(KeyAttendance, &records); err != nil {
		return fmt.Errorf("load attendance: %w", err)
	}
	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec
			if err := r.store.Save(KeyAttendance, records); err != nil {
				return fmt.Errorf("save attendance: %w", err)
			}
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	r.store.Lock()
	defer r.store.Unlock()

	var records []attendance.Attendance
	if err := r.store.Load(KeyAttendance, &records); err != nil {
		return fmt.Errorf("load attendance: %w", err)
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.EmployeeID == employeeID {
			continue
		}
		kept = append(kept, rec)
	}
	if len(kept) == len(records) {
		return nil
	}
	if err := r.store.Save(KeyAttendance, kept); err != nil {
		return fmt.Errorf("save attendance: %w", err)
	}
	return nil
}
