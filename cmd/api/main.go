package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/vwpl/emptrack-backend-go/internal/config"
	appHTTP "github.com/vwpl/emptrack-backend-go/internal/handler/http"
	"github.com/vwpl/emptrack-backend-go/internal/pkg/jwt"
	"github.com/vwpl/emptrack-backend-go/internal/repository/localstore"
	attendanceService "github.com/vwpl/emptrack-backend-go/internal/service/attendance"
	authService "github.com/vwpl/emptrack-backend-go/internal/service/auth"
	dashboardService "github.com/vwpl/emptrack-backend-go/internal/service/dashboard"
	employeeService "github.com/vwpl/emptrack-backend-go/internal/service/employee"
	exportService "github.com/vwpl/emptrack-backend-go/internal/service/export"
	reportService "github.com/vwpl/emptrack-backend-go/internal/service/report"
	shiftService "github.com/vwpl/emptrack-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		fmt.Println("Error opening store:", err)
		return
	}
	defer store.Close()

	employeeRepo := localstore.NewEmployeeRepository(store)
	shiftRepo := localstore.NewShiftRepository(store)
	assignmentRepo := localstore.NewAssignmentRepository(store)
	attendanceRepo := localstore.NewAttendanceRepository(store)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc, err := authService.NewAuthService(jwtService, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatal("Failed to initialize auth service:", err)
	}
	shiftSvc := shiftService.NewShiftService(shiftRepo, assignmentRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, shiftSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo, assignmentRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, shiftSvc)
	exportSvc := exportService.NewExportService(employeeRepo, reportSvc)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, attendanceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		shiftHandler,
		attendanceHandler,
		reportHandler,
		exportHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
