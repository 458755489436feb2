package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
)

func TestOpenSeedsDemoData(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	emps, err := NewEmployeeRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, emps, 5)
	assert.Equal(t, "VW001", emps[0].EmployeeCode)

	shifts, err := NewShiftRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, shifts, 3)
	assert.Equal(t, "Morning Shift", shifts[0].Name)

	assignments, err := NewAssignmentRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, assignments)

	records, err := NewAttendanceRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReopenDoesNotReseed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path)
	require.NoError(t, err)
	repo := NewEmployeeRepository(store)

	// Empty out the collection entirely; a reopen must honor that state
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, repo.Delete(ctx, id))
	}
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	emps, err := NewEmployeeRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, emps)
}

func TestMutationsPersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path)
	require.NoError(t, err)

	_, err = NewEmployeeRepository(store).Create(ctx, employee.Employee{
		ID:           "100",
		EmployeeCode: "VW100",
		Name:         "Kiran Rao",
		Status:       employee.StatusActive,
	})
	require.NoError(t, err)
	_, err = NewAssignmentRepository(store).Create(ctx, shift.Assignment{
		ID:         "asg-1",
		EmployeeID: "100",
		ShiftID:    "2",
		StartDate:  "2025-01-01",
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	emp, err := NewEmployeeRepository(store).GetByID(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "Kiran Rao", emp.Name)

	assignments, err := NewAssignmentRepository(store).ListByEmployee(ctx, "100")
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "2", assignments[0].ShiftID)
}

func TestGetByCodeReturnsNilForUnknown(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	emp, err := NewEmployeeRepository(store).GetByCode(ctx, "VW999")
	require.NoError(t, err)
	assert.Nil(t, emp)
}

func TestGetByIDReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = NewEmployeeRepository(store).GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
