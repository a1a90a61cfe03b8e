package security

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/admin/security")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.RoleMiddleware(user.RoleDeveloper))
	{
		group.GET("/anomalies", handler.ListAnomalies)
		group.PUT("/anomalies/:id/acknowledge", handler.Acknowledge)
	}
}
