package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vwpl/emptrack-backend-go/internal/domain/export"
	"github.com/vwpl/emptrack-backend-go/internal/domain/report"
	"github.com/vwpl/emptrack-backend-go/internal/repository/localstore"
	reportService "github.com/vwpl/emptrack-backend-go/internal/service/report"
	shiftService "github.com/vwpl/emptrack-backend-go/internal/service/shift"
)

func newTestService(t *testing.T) export.Service {
	t.Helper()

	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	employeeRepo := localstore.NewEmployeeRepository(store)
	shiftRepo := localstore.NewShiftRepository(store)
	assignmentRepo := localstore.NewAssignmentRepository(store)
	attendanceRepo := localstore.NewAttendanceRepository(store)

	shiftSvc := shiftService.NewShiftService(shiftRepo, assignmentRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, shiftSvc)
	return NewExportService(employeeRepo, reportSvc)
}

func TestEmployeesCSV(t *testing.T) {
	svc := newTestService(t)

	file, err := svc.EmployeesCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "employees.csv", file.Name)
	assert.Equal(t, "text/csv", file.ContentType)

	rows, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Employee ID", rows[0][0])
	assert.Equal(t, "VW001", rows[1][0])
	assert.Equal(t, "Rajesh Kumar", rows[1][1])
}

func TestMonthlyReportCSV(t *testing.T) {
	svc := newTestService(t)

	file, err := svc.MonthlyReportCSV(context.Background(), report.MonthlyReportRequest{Month: 4, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, "attendance-report-2025-04.csv", file.Name)

	rows, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "April", rows[1][4])
	assert.Equal(t, "30", rows[1][6])
}

func TestMonthlyReportExcel(t *testing.T) {
	svc := newTestService(t)

	file, err := svc.MonthlyReportExcel(context.Background(), report.MonthlyReportRequest{Month: 4, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, "attendance-report-2025-04.xlsx", file.Name)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Monthly Report")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Employee ID", rows[0][0])
	assert.Equal(t, "VW001", rows[1][0])
}

func TestExportRejectsInvalidPeriod(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.MonthlyReportCSV(context.Background(), report.MonthlyReportRequest{Month: 0, Year: 2025})
	assert.Error(t, err)
}
