package department

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", handler.GetAll)
		departments.GET("/:id", handler.GetById)
		departments.POST("", middleware.RequireRole(middleware.RoleHR), handler.Create)
		departments.PUT("/:id", middleware.RequireRole(middleware.RoleHR), handler.Update)
		departments.DELETE("/:id", middleware.RequireRole(middleware.RoleHR), handler.Delete)
	}
}
