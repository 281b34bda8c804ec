package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.POST("/run",
			middleware.RequireRole(middleware.RoleHR),
			middleware.Idempotency(rdb),
			handler.Run,
		)
		payrolls.GET("/periods", handler.GetPeriods)
		payrolls.GET("/periods/:year/:month", handler.GetPeriod)
		payrolls.GET("/export/:year/:month/csv", middleware.RequireRole(middleware.RoleHR), handler.ExportCSV)
		payrolls.GET("/export/:year/:month/xlsx", middleware.RequireRole(middleware.RoleHR), handler.ExportXLSX)
	}

	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("", handler.GetPayslips)
		payslips.GET("/:id", handler.GetPayslipById)
		payslips.GET("/:id/pdf", handler.ExportPayslipPDF)
	}
}
