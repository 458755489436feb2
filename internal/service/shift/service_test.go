package shift

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
	"github.com/vwpl/emptrack-backend-go/internal/repository/localstore"
)

type testEnv struct {
	svc            *ShiftServiceImpl
	employeeRepo   employee.Repository
	shiftRepo      shift.ShiftRepository
	assignmentRepo shift.AssignmentRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	employeeRepo := localstore.NewEmployeeRepository(store)
	shiftRepo := localstore.NewShiftRepository(store)
	assignmentRepo := localstore.NewAssignmentRepository(store)

	svc := NewShiftService(shiftRepo, assignmentRepo, employeeRepo).(*ShiftServiceImpl)
	svc.nowFn = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }

	return testEnv{
		svc:            svc,
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
	}
}

// clearDirectShift unsets the seeded direct shift reference so
// assignment resolution can be observed.
func clearDirectShift(t *testing.T, env testEnv, employeeID string) {
	t.Helper()
	ctx := context.Background()
	emp, err := env.employeeRepo.GetByID(ctx, employeeID)
	require.NoError(t, err)
	emp.ShiftID = nil
	require.NoError(t, env.employeeRepo.Update(ctx, emp))
}

func TestDeleteShiftCascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.AssignShift(ctx, shift.AssignShiftRequest{
		EmployeeID: "3",
		ShiftID:    "1",
		StartDate:  "2025-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteShift(ctx, "1"))

	_, err = env.shiftRepo.GetByID(ctx, "1")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)

	assignments, err := env.assignmentRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, assignments)

	// Employees 1, 2 and 4 are seeded on shift 1; their references must
	// be cleared, others left alone.
	emps, err := env.employeeRepo.List(ctx)
	require.NoError(t, err)
	for _, emp := range emps {
		if emp.ID == "1" || emp.ID == "2" || emp.ID == "4" {
			assert.Nil(t, emp.ShiftID, "employee %s", emp.ID)
		} else {
			assert.NotNil(t, emp.ShiftID, "employee %s", emp.ID)
		}
	}
}

func TestResolveDirectReferenceWinsOverAssignment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.AssignShift(ctx, shift.AssignShiftRequest{
		EmployeeID: "1",
		ShiftID:    "2",
		StartDate:  "2025-01-01",
	})
	require.NoError(t, err)

	resolved, err := env.svc.ResolveCurrentShift(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "1", resolved.ID)
}

func TestResolveDanglingDirectReference(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	emp, err := env.employeeRepo.GetByID(ctx, "1")
	require.NoError(t, err)
	dangling := "999"
	emp.ShiftID = &dangling
	require.NoError(t, env.employeeRepo.Update(ctx, emp))

	_, err = env.svc.AssignShift(ctx, shift.AssignShiftRequest{
		EmployeeID: "1",
		ShiftID:    "2",
		StartDate:  "2025-01-01",
	})
	require.NoError(t, err)

	// The dangling reference does not fall through to the assignment
	resolved, err := env.svc.ResolveCurrentShift(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestResolveCoveringAssignment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	clearDirectShift(t, env, "1")

	end := "2025-02-28"
	_, err := env.svc.AssignShift(ctx, shift.AssignShiftRequest{
		EmployeeID: "1",
		ShiftID:    "3",
		StartDate:  "2025-01-01",
		EndDate:    &end,
	})
	require.NoError(t, err)
	_, err = env.svc.AssignShift(ctx, shift.AssignShiftRequest{
		EmployeeID: "1",
		ShiftID:    "2",
		StartDate:  "2025-03-01",
	})
	require.NoError(t, err)

	resolved, err := env.svc.ResolveCurrentShift(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "2", resolved.ID)
}

func TestResolveOverlappingAssignmentsFirstWins(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	clearDirectShift(t, env, "1")

	_, err := env.svc.AssignShift(ctx, shift.AssignShiftRequest{
		EmployeeID: "1",
		ShiftID:    "2",
		StartDate:  "2025-01-01",
	})
	require.NoError(t, err)
	_, err = env.svc.AssignShift(ctx, shift.AssignShiftRequest{
		EmployeeID: "1",
		ShiftID:    "3",
		StartDate:  "2025-02-01",
	})
	require.NoError(t, err)

	resolved, err := env.svc.ResolveCurrentShift(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "2", resolved.ID)
}

func TestResolveDefaultsToFirstShift(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	clearDirectShift(t, env, "1")

	resolved, err := env.svc.ResolveCurrentShift(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "1", resolved.ID)
}

func TestCreateAndUpdateShift(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.svc.CreateShift(ctx, shift.CreateShiftRequest{
		Name:          "Evening",
		StartTime:     "17:00",
		EndTime:       "02:00",
		LateThreshold: 10,
		Color:         "#f59e0b",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	newName := "Evening B"
	updated, err := env.svc.UpdateShift(ctx, created.ID, shift.UpdateShiftRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Evening B", updated.Name)
	assert.Equal(t, "17:00", updated.StartTime)
}

func TestAssignShiftRejectsUnknownReferences(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.AssignShift(ctx, shift.AssignShiftRequest{
		EmployeeID: "missing",
		ShiftID:    "1",
		StartDate:  "2025-01-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = env.svc.AssignShift(ctx, shift.AssignShiftRequest{
		EmployeeID: "1",
		ShiftID:    "missing",
		StartDate:  "2025-01-01",
	})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}
