package attendance

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", handler.GetAll)
		attendances.GET("/:id", handler.GetById)
		attendances.POST("", middleware.RequireRole(middleware.RoleHR), handler.Create)
		attendances.PUT("/:id", middleware.RequireRole(middleware.RoleHR), handler.Update)
		attendances.DELETE("/:id", middleware.RequireRole(middleware.RoleHR), handler.Delete)
	}
}
