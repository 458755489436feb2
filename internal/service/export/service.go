package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/export"
	"github.com/vwpl/emptrack-backend-go/internal/domain/report"
)

const (
	contentTypeCSV   = "text/csv"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var reportHeader = []string{
	"Employee ID", "Name", "Department", "Shift", "Month", "Year",
	"Total Days", "Present", "Absent", "Late", "Half Day", "Leave",
	"Work Hours", "Avg Check-In", "Avg Check-Out",
}

type ExportServiceImpl struct {
	employeeRepo  employee.Repository
	reportService report.Service
}

func NewExportService(employeeRepo employee.Repository, reportService report.Service) export.Service {
	return &ExportServiceImpl{
		employeeRepo:  employeeRepo,
		reportService: reportService,
	}
}

// EmployeesCSV implements export.Service.
func (s *ExportServiceImpl) EmployeesCSV(ctx context.Context) (export.File, error) {
	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return export.File{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{
		"Employee ID", "Name", "Email", "Phone", "Department",
		"Designation", "Joining Date", "Status", "Work Location",
	}); err != nil {
		return export.File{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, emp := range emps {
		workLocation := ""
		if emp.WorkLocation != nil {
			workLocation = *emp.WorkLocation
		}
		if err := w.Write([]string{
			emp.EmployeeCode, emp.Name, emp.Email, emp.Phone, emp.Department,
			emp.Designation, emp.JoiningDate, string(emp.Status), workLocation,
		}); err != nil {
			return export.File{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return export.File{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return export.File{
		Name:        "employees.csv",
		ContentType: contentTypeCSV,
		Data:        buf.Bytes(),
	}, nil
}

// MonthlyReportCSV implements export.Service.
func (s *ExportServiceImpl) MonthlyReportCSV(ctx context.Context, req report.MonthlyReportRequest) (export.File, error) {
	rep, err := s.reportService.BuildMonthlyReport(ctx, req)
	if err != nil {
		return export.File{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(reportHeader); err != nil {
		return export.File{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rep.Rows {
		if err := w.Write(reportRowValues(row)); err != nil {
			return export.File{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return export.File{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return export.File{
		Name:        fmt.Sprintf("attendance-report-%d-%02d.csv", rep.PeriodYear, rep.PeriodMonth),
		ContentType: contentTypeCSV,
		Data:        buf.Bytes(),
	}, nil
}

// MonthlyReportExcel implements export.Service.
func (s *ExportServiceImpl) MonthlyReportExcel(ctx context.Context, req report.MonthlyReportRequest) (export.File, error) {
	rep, err := s.reportService.BuildMonthlyReport(ctx, req)
	if err != nil {
		return export.File{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Monthly Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return export.File{}, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return export.File{}, fmt.Errorf("failed to compute cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, row := range rep.Rows {
		values := []interface{}{
			row.EmployeeCode, row.EmployeeName, row.Department, row.ShiftName,
			row.Month, row.Year, row.TotalDays, row.PresentDays, row.AbsentDays,
			row.LateDays, row.HalfDays, row.LeaveDays, row.TotalWorkHours,
			row.AverageCheckIn, row.AverageCheckOut,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return export.File{}, fmt.Errorf("failed to compute cell name: %w", err)
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetColWidth(sheet, "A", "D", 18)
	f.SetColWidth(sheet, "E", "O", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return export.File{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	return export.File{
		Name:        fmt.Sprintf("attendance-report-%d-%02d.xlsx", rep.PeriodYear, rep.PeriodMonth),
		ContentType: contentTypeExcel,
		Data:        buf.Bytes(),
	}, nil
}

func reportRowValues(row report.MonthlyReportRow) []string {
	return []string{
		row.EmployeeCode, row.EmployeeName, row.Department, row.ShiftName,
		row.Month, strconv.Itoa(row.Year),
		strconv.Itoa(row.TotalDays), strconv.Itoa(row.PresentDays),
		strconv.Itoa(row.AbsentDays), strconv.Itoa(row.LateDays),
		strconv.Itoa(row.HalfDays), strconv.Itoa(row.LeaveDays),
		strconv.FormatFloat(row.TotalWorkHours, 'f', 2, 64),
		row.AverageCheckIn, row.AverageCheckOut,
	}
}
