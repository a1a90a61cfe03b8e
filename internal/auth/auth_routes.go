package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/refresh", handler.RefreshToken)
		auth.POST("/setup-account", middleware.RateLimitByIP(0.08, 5), handler.SetupAccount)
		auth.POST("/forgot-password", middleware.RateLimitByIP(0.08, 5), handler.ForgotPassword)
		auth.POST("/reset-password", middleware.RateLimitByIP(0.08, 5), handler.ResetPassword)

		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/logout", middleware.AuthMiddleware(), handler.Logout)
		auth.POST("/change-password", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.ChangePassword)
	}
}
