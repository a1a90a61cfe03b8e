package user

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(RoleAdmin, RoleDeveloper))
	{
		admin.POST("", handler.Create)
		admin.GET("", handler.GetAll)
		admin.GET("/:id", handler.GetByID)
		admin.PUT("/:id", handler.Update)
		admin.DELETE("/:id", handler.Delete)
		admin.POST("/:id/restore", handler.Restore)
	}
}
