package facility

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/admin/facilities")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.RoleMiddleware(user.RoleDeveloper))
	{
		group.POST("", handler.Create)
		group.GET("", handler.GetAll)
		group.GET("/:id", handler.GetByID)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}

	mappings := r.Group("/admin/users/:userId/facilities")
	mappings.Use(middleware.AuthMiddleware())
	mappings.Use(middleware.RoleMiddleware(user.RoleDeveloper))
	{
		mappings.GET("", handler.GetMappings)
		mappings.PUT("", handler.UpdateMappings)
	}
}
