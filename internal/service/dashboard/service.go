package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/vwpl/emptrack-backend-go/internal/domain/attendance"
	"github.com/vwpl/emptrack-backend-go/internal/domain/dashboard"
	"github.com/vwpl/emptrack-backend-go/internal/domain/employee"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	nowFn          func() time.Time
}

func NewDashboardService(employeeRepo employee.Repository, attendanceRepo attendance.Repository) dashboard.Service {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		nowFn:          time.Now,
	}
}

// GetSummary implements dashboard.Service.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.Summary, error) {
	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to list employees: %w", err)
	}

	today := s.nowFn().Format("2006-01-02")
	records, err := s.attendanceRepo.ListByDate(ctx, today)
	if err != nil {
		return dashboard.Summary{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	summary := dashboard.Summary{
		Date:           today,
		TotalEmployees: len(emps),
	}
	for _, emp := range emps {
		if emp.Status == employee.StatusActive {
			summary.ActiveEmployees++
		}
	}

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentToday++
		case attendance.StatusLate:
			summary.PresentToday++
			summary.LateToday++
		case attendance.StatusHalfDay:
			summary.HalfDayToday++
		case attendance.StatusLeave:
			summary.OnLeaveToday++
		}
		if rec.CheckOut != nil {
			summary.CheckedOutToday++
		}
	}

	summary.NotCheckedIn = summary.ActiveEmployees - len(records)
	if summary.NotCheckedIn < 0 {
		summary.NotCheckedIn = 0
	}
	return summary, nil
}
