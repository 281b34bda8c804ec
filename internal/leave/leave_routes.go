package leave

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetById)
		leaves.POST("", handler.Create)
		leaves.PUT("/:id", middleware.RequireRole(middleware.RoleHR), handler.Update)
		leaves.POST("/:id/approve", middleware.RequireRole(middleware.RoleHR), handler.Approve)
		leaves.POST("/:id/reject", middleware.RequireRole(middleware.RoleHR), handler.Reject)
		leaves.DELETE("/:id", middleware.RequireRole(middleware.RoleHR), handler.Delete)
	}
}
