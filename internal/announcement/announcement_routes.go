package announcement

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	announcements := r.Group("/announcements")
	announcements.Use(middleware.AuthMiddleware())
	{
		announcements.GET("", h.GetPublished)
		announcements.GET("/:id", h.GetByID)
	}

	admin := r.Group("/admin/announcements")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(user.RoleAdmin, user.RoleDeveloper))
	{
		admin.GET("", h.GetAll)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
