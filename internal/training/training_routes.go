package training

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/rbac"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	trainings := r.Group("/trainings")
	trainings.Use(middleware.AuthMiddleware())
	{
		trainings.GET("", middleware.RBACAuthorize(rbacService, "training", "read"), h.GetAll)
		trainings.GET("/:id", middleware.RBACAuthorize(rbacService, "training", "read"), h.GetByID)
		trainings.POST("/:id/complete", middleware.RBACAuthorize(rbacService, "training", "complete"), h.Complete)
		trainings.GET("/records/me", middleware.RBACAuthorize(rbacService, "training", "read"), h.MyRecords)
	}

	admin := r.Group("/admin/trainings")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(user.RoleAdmin, user.RoleDeveloper))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.GET("/:id/records", h.Records)
	}
}
