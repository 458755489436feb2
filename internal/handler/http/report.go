package http

import (
	"net/http"

	"github.com/vwpl/emptrack-backend-go/internal/domain/report"
	"github.com/vwpl/emptrack-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthlyReport implements ReportHandler
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{}
	if m, ok := queryInt(r, "month"); ok {
		req.Month = m
	}
	if y, ok := queryInt(r, "year"); ok {
		req.Year = y
	}

	result, err := h.reportService.BuildMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
