package nodestatus

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/admin/node-status")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.RoleMiddleware(user.RoleDeveloper))
	{
		group.GET("", handler.Board)
	}
}
