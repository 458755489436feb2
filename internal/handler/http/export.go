package http

import (
	"fmt"
	"net/http"

	"github.com/vwpl/emptrack-backend-go/internal/domain/export"
	"github.com/vwpl/emptrack-backend-go/internal/domain/report"
	"github.com/vwpl/emptrack-backend-go/internal/handler/http/response"
)

type ExportHandler interface {
	ExportEmployeesCSV(w http.ResponseWriter, r *http.Request)
	ExportMonthlyReportCSV(w http.ResponseWriter, r *http.Request)
	ExportMonthlyReportExcel(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.Service
}

func NewExportHandler(exportService export.Service) ExportHandler {
	return &exportHandlerImpl{
		exportService: exportService,
	}
}

// ExportEmployeesCSV implements ExportHandler
func (h *exportHandlerImpl) ExportEmployeesCSV(w http.ResponseWriter, r *http.Request) {
	file, err := h.exportService.EmployeesCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	serveFile(w, file)
}

// ExportMonthlyReportCSV implements ExportHandler
func (h *exportHandlerImpl) ExportMonthlyReportCSV(w http.ResponseWriter, r *http.Request) {
	file, err := h.exportService.MonthlyReportCSV(r.Context(), monthlyReportRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	serveFile(w, file)
}

// ExportMonthlyReportExcel implements ExportHandler
func (h *exportHandlerImpl) ExportMonthlyReportExcel(w http.ResponseWriter, r *http.Request) {
	file, err := h.exportService.MonthlyReportExcel(r.Context(), monthlyReportRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	serveFile(w, file)
}

func monthlyReportRequest(r *http.Request) report.MonthlyReportRequest {
	req := report.MonthlyReportRequest{}
	if m, ok := queryInt(r, "month"); ok {
		req.Month = m
	}
	if y, ok := queryInt(r, "year"); ok {
		req.Year = y
	}
	return req
}

func serveFile(w http.ResponseWriter, file export.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}
