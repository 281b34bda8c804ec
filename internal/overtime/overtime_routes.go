package overtime

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	overtimes := r.Group("/overtime")
	overtimes.Use(middleware.AuthMiddleware())
	{
		overtimes.GET("", handler.GetAll)
		overtimes.GET("/:id", handler.GetById)
		overtimes.POST("", handler.Create)
		overtimes.PUT("/:id", middleware.RequireRole(middleware.RoleHR), handler.Update)
		overtimes.POST("/:id/approve", middleware.RequireRole(middleware.RoleHR), handler.Approve)
		overtimes.DELETE("/:id", middleware.RequireRole(middleware.RoleHR), handler.Delete)
	}
}
