package routes

import (
	"github.com/gin-gonic/gin"

	identityhandlers "helpdesk/internal/interfaces/http/handlers/identity"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

type AuthRouteConfig struct {
	AuthHandler    *identityhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		// Credential endpoints carry the per-IP rate limit.
		auth.POST("/register", config.RateLimit, config.AuthHandler.Register)
		auth.POST("/login", config.RateLimit, config.AuthHandler.Login)
		auth.POST("/refresh", config.RateLimit, config.AuthHandler.RefreshToken)

		auth.GET("/me",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.GetCurrentUser)
	}

	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/technicians", config.AuthHandler.ListTechnicians)
		users.PUT("/:id/role",
			authorization.RequireAdmin(),
			config.AuthHandler.AssignRole)
	}
}
