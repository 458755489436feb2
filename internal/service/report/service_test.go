package report

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwpl/emptrack-backend-go/internal/domain/attendance"
	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/report"
	"github.com/vwpl/emptrack-backend-go/internal/repository/localstore"
	shiftService "github.com/vwpl/emptrack-backend-go/internal/service/shift"
)

type testEnv struct {
	svc            report.Service
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	employeeRepo := localstore.NewEmployeeRepository(store)
	shiftRepo := localstore.NewShiftRepository(store)
	assignmentRepo := localstore.NewAssignmentRepository(store)
	attendanceRepo := localstore.NewAttendanceRepository(store)

	shiftSvc := shiftService.NewShiftService(shiftRepo, assignmentRepo, employeeRepo)
	svc := NewReportService(employeeRepo, attendanceRepo, shiftSvc)

	return testEnv{
		svc:            svc,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

func addRecord(t *testing.T, env testEnv, employeeID, date string, status attendance.Status, checkIn, checkOut string, workHours float64) {
	t.Helper()
	rec := attendance.Attendance{
		ID:         fmt.Sprintf("%s-%s-%s", employeeID, date, status),
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
	if checkIn != "" {
		rec.CheckIn = &checkIn
	}
	if checkOut != "" {
		rec.CheckOut = &checkOut
	}
	if workHours > 0 {
		rec.WorkHours = &workHours
	}
	_, err := env.attendanceRepo.Create(context.Background(), rec)
	require.NoError(t, err)
}

func TestMonthlyReportDayAccounting(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// April 2025 has 30 days. Employee 1: 20 present, 2 late, 1 half-day.
	day := 1
	for i := 0; i < 20; i++ {
		addRecord(t, env, "1", fmt.Sprintf("2025-04-%02d", day), attendance.StatusPresent, "09:00:00", "18:00:00", 9)
		day++
	}
	for i := 0; i < 2; i++ {
		addRecord(t, env, "1", fmt.Sprintf("2025-04-%02d", day), attendance.StatusLate, "09:30:00", "18:00:00", 8.5)
		day++
	}
	addRecord(t, env, "1", fmt.Sprintf("2025-04-%02d", day), attendance.StatusHalfDay, "09:00:00", "12:00:00", 3)

	result, err := env.svc.BuildMonthlyReport(ctx, report.MonthlyReportRequest{Month: 4, Year: 2025})
	require.NoError(t, err)

	require.NotEmpty(t, result.Rows)
	row := result.Rows[0]
	assert.Equal(t, "VW001", row.EmployeeCode)
	assert.Equal(t, "April", row.Month)
	assert.Equal(t, 30, row.TotalDays)
	assert.Equal(t, 22, row.PresentDays)
	assert.Equal(t, 2, row.LateDays)
	assert.Equal(t, 1, row.HalfDays)
	assert.Equal(t, 0, row.LeaveDays)
	assert.Equal(t, 7, row.AbsentDays)
	assert.InDelta(t, 20*9+2*8.5+3, row.TotalWorkHours, 1e-9)
	assert.Equal(t, "Morning Shift", row.ShiftName)
}

func TestMonthlyReportAbsentDaysFloorAtZero(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// More attendance than February has days cannot drive the absent
	// count negative.
	for day := 1; day <= 28; day++ {
		addRecord(t, env, "1", fmt.Sprintf("2025-02-%02d", day), attendance.StatusPresent, "09:00:00", "18:00:00", 9)
	}
	addRecord(t, env, "1", "2025-02-28", attendance.StatusLeave, "", "", 0)

	result, err := env.svc.BuildMonthlyReport(ctx, report.MonthlyReportRequest{Month: 2, Year: 2025})
	require.NoError(t, err)

	row := result.Rows[0]
	assert.Equal(t, 28, row.TotalDays)
	assert.Equal(t, 0, row.AbsentDays)
}

func TestMonthlyReportAverageClockTimes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	addRecord(t, env, "1", "2025-04-01", attendance.StatusPresent, "09:00:00", "18:00:00", 9)
	addRecord(t, env, "1", "2025-04-02", attendance.StatusPresent, "09:10:00", "18:20:00", 9.17)
	// No samples for employee 2

	result, err := env.svc.BuildMonthlyReport(ctx, report.MonthlyReportRequest{Month: 4, Year: 2025})
	require.NoError(t, err)

	byCode := map[string]report.MonthlyReportRow{}
	for _, row := range result.Rows {
		byCode[row.EmployeeCode] = row
	}

	assert.Equal(t, "09:05", byCode["VW001"].AverageCheckIn)
	assert.Equal(t, "18:10", byCode["VW001"].AverageCheckOut)
	assert.Equal(t, "--:--", byCode["VW002"].AverageCheckIn)
	assert.Equal(t, "--:--", byCode["VW002"].AverageCheckOut)
}

func TestMonthlyReportSkipsInactiveEmployees(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	emp, err := env.employeeRepo.GetByID(ctx, "5")
	require.NoError(t, err)
	emp.Status = employee.StatusInactive
	require.NoError(t, env.employeeRepo.Update(ctx, emp))

	result, err := env.svc.BuildMonthlyReport(ctx, report.MonthlyReportRequest{Month: 4, Year: 2025})
	require.NoError(t, err)

	assert.Len(t, result.Rows, 4)
	for _, row := range result.Rows {
		assert.NotEqual(t, "VW005", row.EmployeeCode)
	}
}

func TestMonthlyReportRejectsInvalidPeriod(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.BuildMonthlyReport(context.Background(), report.MonthlyReportRequest{Month: 13, Year: 2025})
	assert.Error(t, err)

	_, err = env.svc.BuildMonthlyReport(context.Background(), report.MonthlyReportRequest{Month: 1, Year: 1999})
	assert.Error(t, err)

	_, err = env.svc.BuildMonthlyReport(context.Background(), report.MonthlyReportRequest{Month: 1, Year: time.Now().Year() + 5})
	assert.Error(t, err)
}
