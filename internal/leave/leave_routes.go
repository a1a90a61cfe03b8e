package leave

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/rbac"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/user"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("/apply", middleware.RBACAuthorize(rbacService, "leave", "create"), handler.Submit)
		leaves.POST("/apply-bulk", middleware.RBACAuthorize(rbacService, "leave", "create"), middleware.Idempotency(rdb), handler.SubmitBulk)
		leaves.GET("/history", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetMyRequests)
		leaves.GET("/status", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetStatus)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(user.RoleAdmin, user.RoleDeveloper))
	{
		admin.GET("/paid-leaves", handler.GetAllRequests)
		admin.GET("/paid-leaves/pending-count", handler.PendingCount)
		admin.PUT("/paid-leaves/:id/approve", handler.Approve)
		admin.PUT("/paid-leaves/:id/reject", handler.Reject)
		admin.POST("/paid-leaves/bulk-approve", handler.BulkApprove)
		admin.POST("/users/:userId/grant-leave", handler.GrantAdHoc)
		admin.GET("/users/:userId/accrual-history", handler.GetAccrualHistory)
		admin.GET("/leave-monitoring", handler.Monitoring)
		admin.POST("/system/fix-balance-consistency", handler.FixConsistency)
	}
}
