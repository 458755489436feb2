package employee

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwpl/emptrack-backend-go/internal/domain/attendance"
	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
	"github.com/vwpl/emptrack-backend-go/internal/repository/localstore"
)

type testEnv struct {
	svc            employee.Service
	attendanceRepo attendance.Repository
	assignmentRepo shift.AssignmentRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	employeeRepo := localstore.NewEmployeeRepository(store)
	assignmentRepo := localstore.NewAssignmentRepository(store)
	attendanceRepo := localstore.NewAttendanceRepository(store)

	return testEnv{
		svc:            NewEmployeeService(employeeRepo, attendanceRepo, assignmentRepo),
		attendanceRepo: attendanceRepo,
		assignmentRepo: assignmentRepo,
	}
}

func TestCreateEmployeeRejectsDuplicateCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "VW001",
		Name:         "Someone Else",
		Email:        "someone@vishwakarma.com",
		Department:   "Engineering",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestConcurrentCreatesClaimCodeOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	const workers = 4
	start := make(chan struct{})
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			<-start
			_, err := env.svc.Create(ctx, employee.CreateEmployeeRequest{
				EmployeeCode: "VW300",
				Name:         "Deepa Nair",
				Email:        "deepa@vishwakarma.com",
				Department:   "Finance",
			})
			errs <- err
		}()
	}
	close(start)

	created := 0
	for i := 0; i < workers; i++ {
		err := <-errs
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
		}
	}
	assert.Equal(t, 1, created)

	list, err := env.svc.List(ctx)
	require.NoError(t, err)
	// the five seeded employees plus the single winner
	assert.Len(t, list.Employees, 6)
}

func TestCreateEmployeeDefaultsToActive(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.svc.Create(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "VW100",
		Name:         "Kiran Rao",
		Email:        "kiran@vishwakarma.com",
		Department:   "Quality",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", created.Status)
	assert.NotEmpty(t, created.ID)
}

func TestUpdateEmployeeClearsShiftWithEmptyString(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	empty := ""
	updated, err := env.svc.Update(ctx, "1", employee.UpdateEmployeeRequest{ShiftID: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.ShiftID)
}

func TestDeleteEmployeeCascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	in := "09:00:00"
	_, err := env.attendanceRepo.Create(ctx, attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "1",
		Date:       "2025-03-10",
		CheckIn:    &in,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	_, err = env.assignmentRepo.Create(ctx, shift.Assignment{
		ID:         "asg-1",
		EmployeeID: "1",
		ShiftID:    "2",
		StartDate:  "2025-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, "1"))

	_, err = env.svc.Get(ctx, "1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	records, err := env.attendanceRepo.ListByEmployee(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, records)

	assignments, err := env.assignmentRepo.ListByEmployee(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestImportValidatesRowsIndependently(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	result, err := env.svc.Import(ctx, employee.ImportRequest{Rows: []employee.ImportRow{
		{EmployeeCode: "VW200", Name: "Asha Gupta", Email: "asha@vishwakarma.com", Department: "Quality"},
		{EmployeeCode: "VW001", Name: "Duplicate Code", Email: "dup@vishwakarma.com", Department: "HR"},
		{EmployeeCode: "", Name: "", Email: "not-an-email", Department: ""},
		{EmployeeCode: "VW200", Name: "Batch Duplicate", Email: "asha2@vishwakarma.com", Department: "Quality"},
	}})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 3, result.Rejected)

	require.Len(t, result.Rows, 4)
	assert.True(t, result.Rows[0].Valid)
	assert.False(t, result.Rows[1].Valid)
	assert.Contains(t, result.Rows[1].Errors, "ID already exists")
	assert.False(t, result.Rows[2].Valid)
	assert.NotEmpty(t, result.Rows[2].Errors)
	assert.False(t, result.Rows[3].Valid)

	list, err := env.svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, list.TotalCount)
}

func TestUpdatePhotosMatchesByCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	resp, err := env.svc.UpdatePhotos(ctx, employee.BatchPhotoRequest{
		Updates: []employee.PhotoUpdate{
			{EmployeeCode: "VW001", Photo: "data:image/jpeg;base64,AAAA"},
			{EmployeeCode: "vw002", Photo: "data:image/jpeg;base64,BBBB"},
			{EmployeeCode: "VW999", Photo: "data:image/jpeg;base64,CCCC"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Updated)
	require.Len(t, resp.Rows, 3)
	assert.True(t, resp.Rows[0].Matched)
	assert.Equal(t, "Rajesh Kumar", resp.Rows[0].Name)
	// codes match regardless of case
	assert.True(t, resp.Rows[1].Matched)
	assert.Equal(t, "Priya Sharma", resp.Rows[1].Name)
	assert.False(t, resp.Rows[2].Matched)

	got, err := env.svc.Get(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got.Photo)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", *got.Photo)

	untouched, err := env.svc.Get(ctx, "3")
	require.NoError(t, err)
	assert.Nil(t, untouched.Photo)
}

func TestGetBadgePayload(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	badge, err := env.svc.GetBadge(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "VW001", badge.EmployeeCode)
	assert.Equal(t, "1", badge.ID)
	assert.Equal(t, "Rajesh Kumar", badge.Name)
}
