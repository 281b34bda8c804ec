package employee

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.POST("", middleware.RequireRole(middleware.RoleHR), handler.Create)
		employees.PUT("/:id", middleware.RequireRole(middleware.RoleHR), handler.Update)
		employees.DELETE("/:id", middleware.RequireRole(middleware.RoleHR), handler.Delete)
	}
}
