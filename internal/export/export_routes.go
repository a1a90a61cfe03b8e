package export

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	group := r.Group("/admin/export")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.RoleMiddleware(user.RoleAdmin, user.RoleDeveloper))
	group.Use(middleware.RBACAuthorize(rbac, "export", "read"))
	{
		group.GET("/progress.csv", handler.ProgressCSV)
		group.GET("/compliance.pdf", handler.CompliancePDF)
	}
}
