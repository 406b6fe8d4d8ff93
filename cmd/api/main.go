package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/workforce-analytics/workforce-backend-go/internal/config"
	appHTTP "github.com/workforce-analytics/workforce-backend-go/internal/handler/http"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/database"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/jwt"
	"github.com/workforce-analytics/workforce-backend-go/internal/repository/postgresql"
	authService "github.com/workforce-analytics/workforce-backend-go/internal/service/auth"
	employeeService "github.com/workforce-analytics/workforce-backend-go/internal/service/employee"
	"github.com/workforce-analytics/workforce-backend-go/internal/service/master"
	payrollService "github.com/workforce-analytics/workforce-backend-go/internal/service/payroll"
	reportService "github.com/workforce-analytics/workforce-backend-go/internal/service/report"
	timeRecordService "github.com/workforce-analytics/workforce-backend-go/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "workforce-backend"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	schemaInspector := postgresql.NewSchemaInspector(db)
	rowBrowser := postgresql.NewRowBrowser(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiration)

	authSvc := authService.NewAuthService(cfg.Admin, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo)
	departmentSvc := master.NewDepartmentService(departmentRepo)
	shiftSvc := master.NewShiftService(shiftRepo)
	timeRecordSvc := timeRecordService.NewTimeRecordService(logger, timeRecordRepo, employeeRepo, shiftRepo, payrollRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo)
	reportSvc := reportService.NewReportService(logger, cfg.Report, reportRepo, schemaInspector, rowBrowser, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(departmentSvc, shiftSvc)
	timeRecordHandler := appHTTP.NewTimeRecordHandler(timeRecordSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		masterHandler,
		timeRecordHandler,
		payrollHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
