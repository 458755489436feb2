package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/vwpl/emptrack-backend-go/internal/config"
	"github.com/vwpl/emptrack-backend-go/internal/handler/http/middleware"
	"github.com/vwpl/emptrack-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	exportHandler ExportHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "emptrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Post("/import", employeeHandler.ImportEmployees)
				r.Post("/photos", employeeHandler.UpdatePhotos)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetEmployee)
					r.Put("/", employeeHandler.UpdateEmployee)
					r.Delete("/", employeeHandler.DeleteEmployee)
					r.Get("/badge", employeeHandler.GetBadge)
					r.Get("/attendance", employeeHandler.GetAttendanceHistory)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.ListShifts)
				r.Post("/", shiftHandler.CreateShift)
				r.Put("/{id}", shiftHandler.UpdateShift)
				r.Delete("/{id}", shiftHandler.DeleteShift)
			})

			r.Route("/shift-assignments", func(r chi.Router) {
				r.Get("/", shiftHandler.ListAssignments)
				r.Post("/", shiftHandler.AssignShift)
				r.Delete("/{id}", shiftHandler.RemoveAssignment)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListAttendance)
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Post("/scan", attendanceHandler.Scan)
				r.Get("/today", attendanceHandler.GetToday)
			})

			r.Get("/reports/monthly", reportHandler.GetMonthlyReport)

			r.Route("/exports", func(r chi.Router) {
				r.Get("/employees.csv", exportHandler.ExportEmployeesCSV)
				r.Get("/monthly-report.csv", exportHandler.ExportMonthlyReportCSV)
				r.Get("/monthly-report.xlsx", exportHandler.ExportMonthlyReportExcel)
			})

			r.Get("/dashboard/summary", dashboardHandler.GetSummary)
		})
	})
	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
