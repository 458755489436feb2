package report

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vwpl/emptrack-backend-go/internal/domain/attendance"
	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
	"github.com/vwpl/emptrack-backend-go/internal/domain/report"
	"github.com/vwpl/emptrack-backend-go/internal/domain/shift"
)

const noTime = "--:--"

type ReportServiceImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	shiftService   shift.Service
	nowFn          func() time.Time
}

func NewReportService(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	shiftService shift.Service,
) report.Service {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		shiftService:   shiftService,
		nowFn:          time.Now,
	}
}

// BuildMonthlyReport implements report.Service.
func (s *ReportServiceImpl) BuildMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list employees: %w", err)
	}
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)
	daysInMonth := periodEnd.Day()

	rows := make([]report.MonthlyReportRow, 0, len(emps))
	for _, emp := range emps {
		if emp.Status != employee.StatusActive {
			continue
		}

		row, err := s.buildRow(ctx, emp, records, req.Month, req.Year, daysInMonth)
		if err != nil {
			return report.MonthlyReport{}, err
		}
		rows = append(rows, row)
	}

	return report.MonthlyReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.Format("2006-01-02"),
		GeneratedAt: s.nowFn().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

func (s *ReportServiceImpl) buildRow(
	ctx context.Context,
	emp employee.Employee,
	records []attendance.Attendance,
	month, year, daysInMonth int,
) (report.MonthlyReportRow, error) {
	var monthRecords []attendance.Attendance
	for _, rec := range records {
		if rec.EmployeeID != emp.ID {
			continue
		}
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			continue
		}
		if int(date.Month()) == month && date.Year() == year {
			monthRecords = append(monthRecords, rec)
		}
	}

	var present, late, half, leave int
	var totalWorkHours float64
	var checkInMinutes, checkOutMinutes []int
	for _, rec := range monthRecords {
		switch rec.Status {
		case attendance.StatusPresent:
			present++
		case attendance.StatusLate:
			late++
		case attendance.StatusHalfDay:
			half++
		case attendance.StatusLeave:
			leave++
		}
		if rec.WorkHours != nil {
			// Per-record values already carry their own rounding; the
			// sum is not re-rounded.
			totalWorkHours += *rec.WorkHours
		}
		if rec.CheckIn != nil {
			if m, ok := clockToMinutes(*rec.CheckIn); ok {
				checkInMinutes = append(checkInMinutes, m)
			}
		}
		if rec.CheckOut != nil {
			if m, ok := clockToMinutes(*rec.CheckOut); ok {
				checkOutMinutes = append(checkOutMinutes, m)
			}
		}
	}

	// Late arrivals still count as present; every day the month has that
	// is not otherwise accounted for counts as absent, weekends included.
	presentDays := present + late
	absentDays := daysInMonth - presentDays - half - leave
	if absentDays < 0 {
		absentDays = 0
	}

	// The employee's shift as currently assigned, not the one in effect
	// during a historical month.
	shiftName := "No Shift"
	currentShift, err := s.shiftService.ResolveCurrentShift(ctx, emp.ID)
	if err != nil {
		return report.MonthlyReportRow{}, fmt.Errorf("failed to resolve shift: %w", err)
	}
	if currentShift != nil {
		shiftName = currentShift.Name
	}

	return report.MonthlyReportRow{
		EmployeeCode:    emp.EmployeeCode,
		EmployeeName:    emp.Name,
		Department:      emp.Department,
		ShiftName:       shiftName,
		Month:           time.Month(month).String(),
		Year:            year,
		TotalDays:       daysInMonth,
		PresentDays:     presentDays,
		AbsentDays:      absentDays,
		LateDays:        late,
		HalfDays:        half,
		LeaveDays:       leave,
		TotalWorkHours:  totalWorkHours,
		AverageCheckIn:  averageClock(checkInMinutes),
		AverageCheckOut: averageClock(checkOutMinutes),
	}, nil
}

// clockToMinutes converts a wall-clock string ("HH:MM" or "HH:MM:SS")
// to minutes since midnight, ignoring seconds.
func clockToMinutes(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// averageClock formats the mean of the samples as "HH:MM", rounded to
// the nearest minute, or "--:--" when there are no samples.
func averageClock(samples []int) string {
	if len(samples) == 0 {
		return noTime
	}
	sum := 0
	for _, m := range samples {
		sum += m
	}
	avg := int(math.Round(float64(sum) / float64(len(samples))))
	return fmt.Sprintf("%02d:%02d", avg/60, avg%60)
}
