package deduction

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	deductions := r.Group("/deductions")
	deductions.Use(middleware.AuthMiddleware())
	{
		deductions.GET("", handler.GetAll)
		deductions.GET("/:id", handler.GetById)
		deductions.POST("", middleware.RequireRole(middleware.RoleHR), handler.Create)
		deductions.PUT("/:id", middleware.RequireRole(middleware.RoleHR), handler.Update)
		deductions.DELETE("/:id", middleware.RequireRole(middleware.RoleHR), handler.Delete)
	}
}
