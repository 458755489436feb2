package export

import (
	"context"

	"github.com/vwpl/emptrack-backend-go/internal/domain/report"
)

// File is a generated download: the bytes plus what the HTTP layer
// needs to serve them.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Service defines business logic for file exports
type Service interface {
	// EmployeesCSV exports the full employee directory
	EmployeesCSV(ctx context.Context) (File, error)
	// MonthlyReportCSV exports one month's aggregated attendance rows
	MonthlyReportCSV(ctx context.Context, req report.MonthlyReportRequest) (File, error)
	// MonthlyReportExcel exports the same rows as a styled workbook
	MonthlyReportExcel(ctx context.Context, req report.MonthlyReportRequest) (File, error)
}
