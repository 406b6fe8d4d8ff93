package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workforce-analytics/workforce-backend-go/internal/config"
	"github.com/workforce-analytics/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	timeRecordHandler TimeRecordHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires a session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.SessionRequired(jwtService))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/records", func(r chi.Router) {
				r.Post("/check-in", timeRecordHandler.CheckIn)
				r.Post("/check-out", timeRecordHandler.CheckOut)
				r.Get("/", timeRecordHandler.ListRecords)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", timeRecordHandler.CreateRecord)
					r.Delete("/", timeRecordHandler.DeleteRecord)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{empID}", employeeHandler.GetEmployee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{empID}", employeeHandler.UpdateEmployee)
					r.Delete("/{empID}", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/{deptID}", masterHandler.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateDepartment)
					r.Put("/{deptID}", masterHandler.UpdateDepartment)
					r.Delete("/{deptID}", masterHandler.DeleteDepartment)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", masterHandler.ListShifts)
				r.Get("/{shiftCode}", masterHandler.GetShift)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", masterHandler.CreateShift)
					r.Put("/{shiftCode}", masterHandler.UpdateShift)
					r.Delete("/{shiftCode}", masterHandler.DeleteShift)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.ListEntries)
				r.Get("/{empID}/{month}", payrollHandler.GetEntry)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", payrollHandler.UpsertEntry)
					r.Delete("/{empID}/{month}", payrollHandler.DeleteEntry)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/overtime", reportHandler.OTSummary)
				r.Get("/overtime/departments", reportHandler.DepartmentSummary)
				r.Get("/payroll", reportHandler.PayrollSummary)
				r.Get("/revenue", reportHandler.RevenueByDepartment)
				r.Get("/burnout", reportHandler.BurnoutSummary)
			})

			r.Route("/schema", func(r chi.Router) {
				r.Get("/", reportHandler.ListSchemaObjects)
				r.Get("/{name}/rows", reportHandler.BrowseRows)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}
