package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/rbac"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	requests := r.Group("/attendance")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("/requests", middleware.RBACAuthorize(rbacService, "attendance", "create"), handler.Submit)
		requests.GET("/requests/my", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetMyRequests)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(user.RoleAdmin, user.RoleDeveloper))
	{
		admin.GET("/attendance/requests", handler.GetAllRequests)
		admin.PUT("/attendance/requests/:id/approve", handler.Approve)
		admin.PUT("/attendance/requests/:id/reject", handler.Reject)
	}
}
