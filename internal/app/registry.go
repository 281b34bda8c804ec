package app

import (
	"net/http"

	"go-payroll/internal/attendance"
	"go-payroll/internal/deduction"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/overtime"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// BuildRouter wires every feature's repo, service, and handler and mounts the
// routes under /api/v1.
func (a *App) BuildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	counterRepo := counter.NewRepository(a.DB)
	outboxRepo := kafka.NewOutboxRepository(a.DB)

	departmentRepo := department.NewRepository(a.DB)
	departmentService := department.NewService(a.DB, departmentRepo, a.Logger)
	departmentHandler := department.NewHandler(departmentService)

	employeeRepo := employee.NewRepository(a.DB)
	employeeService := employee.NewService(a.DB, employeeRepo, counterRepo, a.Logger)
	employeeHandler := employee.NewHandler(employeeService)

	attendanceRepo := attendance.NewRepository(a.DB)
	attendanceService := attendance.NewService(a.DB, attendanceRepo, a.Logger)
	attendanceHandler := attendance.NewHandler(attendanceService)

	leaveRepo := leave.NewRepository(a.DB)
	leaveService := leave.NewService(a.DB, leaveRepo, a.Logger)
	leaveHandler := leave.NewHandler(leaveService)

	overtimeRepo := overtime.NewRepository(a.DB)
	overtimeService := overtime.NewService(a.DB, overtimeRepo, a.Logger)
	overtimeHandler := overtime.NewHandler(overtimeService)

	deductionRepo := deduction.NewRepository(a.DB)
	deductionService := deduction.NewService(a.DB, deductionRepo, a.Logger)
	deductionHandler := deduction.NewHandler(deductionService)

	payrollRepo := payroll.NewRepository(a.DB)
	payrollService := payroll.NewService(a.DB, payrollRepo, outboxRepo, a.Logger)
	payrollHandler := payroll.NewHandler(payrollService)

	v1 := router.Group("/api/v1")
	{
		department.RegisterRoutes(v1, departmentHandler)
		employee.RegisterRoutes(v1, employeeHandler)
		attendance.RegisterRoutes(v1, attendanceHandler)
		leave.RegisterRoutes(v1, leaveHandler)
		overtime.RegisterRoutes(v1, overtimeHandler)
		deduction.RegisterRoutes(v1, deductionHandler)
		payroll.RegisterRoutes(v1, payrollHandler, a.Redis)
	}

	return router
}
