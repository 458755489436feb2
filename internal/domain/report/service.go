package report

import "context"

// Service defines business logic for attendance reporting
type Service interface {
	// BuildMonthlyReport aggregates per-employee attendance summaries for
	// one calendar month, scoped to active employees
	BuildMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
