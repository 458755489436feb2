package localstore

import (
	"context"
	"fmt"

	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.Repository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var emps []employee.Employee
	if err := r.store.Load(KeyEmployees, &emps); err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	return emps, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emps, err := r.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, emp := range emps {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	emps, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range emps {
		if emps[i].EmployeeCode == code {
			return &emps[i], nil
		}
	}
	return nil, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.store.Lock()
	defer r.store.Unlock()

	var emps []employee.Employee
	if err := r.store.Load(KeyEmployees, &emps); err != nil {
		return employee.Employee{}, fmt.Errorf("load employees: %w", err)
	}
	emps = append(emps, emp)
	if err := r.store.Save(KeyEmployees, emps); err != nil {
		return employee.Employee{}, fmt.Errorf("save employees: %w", err)
	}
	return emp, nil
}

func (r *EmployeeRepository) CreateIfCodeFree(ctx context.Context, emp employee.Employee) (employee.Employee, bool, error) {
	r.store.Lock()
	defer r.store.Unlock()

	var emps []employee.Employee
	if err := r.store.Load(KeyEmployees, &emps); err != nil {
		return employee.Employee{}, false, fmt.Errorf("load employees: %w", err)
	}
	for i := range emps {
		if emps[i].EmployeeCode == emp.EmployeeCode {
			return employee.Employee{}, false, nil
		}
	}
	emps = append(emps, emp)
	if err := r.store.Save(KeyEmployees, emps); err != nil {
		return employee.Employee{}, false, fmt.Errorf("save employees: %w", err)
	}
	return emp, true, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	r.store.Lock()
	defer r.store.Unlock()

	var emps []employee.Employee
	if err := r.store.Load(KeyEmployees, &emps); err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	for i := range emps {
		if emps[i].ID == emp.ID {
			emps[i] = emp
			if err := r.store.Save(KeyEmployees, emps); err != nil {
				return fmt.Errorf("save employees: %w", err)
			}
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.store.Lock()
	defer r.store.Unlock()

	var emps []employee.Employee
	if err := r.store.Load(KeyEmployees, &emps); err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	kept := emps[:0]
	found := false
	for _, emp := range emps {
		if emp.ID == id {
			found = true
			continue
		}
		kept = append(kept, emp)
	}
	if !found {
		return employee.ErrEmployeeNotFound
	}
	if err := r.store.Save(KeyEmployees, kept); err != nil {
		return fmt.Errorf("save employees: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) ClearShiftRef(ctx context.Context, shiftID string) error {
	r.store.Lock()
	defer r.store.Unlock()

	var emps []employee.Employee
	if err := r.store.Load(KeyEmployees, &emps); err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	changed := false
	for i := range emps {
		if emps[i].ShiftID != nil && *emps[i].ShiftID == shiftID {
			emps[i].ShiftID = nil
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := r.store.Save(KeyEmployees, emps); err != nil {
		return fmt.Errorf("save employees: %w", err)
	}
	return nil
}
