package department

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", h.GetAll)
		departments.GET("/:id", h.GetByID)
	}

	admin := r.Group("/admin/departments")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(user.RoleAdmin, user.RoleDeveloper))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
