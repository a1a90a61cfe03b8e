package manual

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/rbac"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	manuals := r.Group("/manuals")
	manuals.Use(middleware.AuthMiddleware())
	{
		manuals.GET("", middleware.RBACAuthorize(rbacService, "manual", "read"), h.GetAll)
		manuals.GET("/:id", middleware.RBACAuthorize(rbacService, "manual", "read"), h.GetByID)
		manuals.POST("/:id/complete", middleware.RBACAuthorize(rbacService, "progress", "write"), h.Complete)
		manuals.GET("/progress/me", middleware.RBACAuthorize(rbacService, "manual", "read"), h.MyProgress)
	}

	admin := r.Group("/admin/manuals")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(user.RoleAdmin, user.RoleDeveloper))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.GET("/:id/completion-rate", h.CompletionRate)
	}
}
