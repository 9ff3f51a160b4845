package apis

import (
	"time"

	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/handler"
	"kentkonut/internal/middleware"
	"kentkonut/internal/service"
	"kentkonut/pkg/logger"
	"kentkonut/pkg/ratelimit"
)

// RegisterAuthRoutes login and the caller's own account under /api/auth
func RegisterAuthRoutes(router *gin.RouterGroup, authHandler *handler.AuthHandler, authService service.AuthService,
	limiter ratelimit.Limiter, loginLimit int, window time.Duration, log *logger.Logger) {
	router.POST("/login", middleware.RateLimit(limiter, "login", loginLimit, window, log), authHandler.Login)

	account := router.Group("", middleware.Auth(authService, log))
	{
		account.GET("/me", authHandler.Me)
		account.PUT("/password", authHandler.ChangePassword)
	}
}
