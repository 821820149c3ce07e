package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "helpdesk/internal/interfaces/http/handlers/catalog"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

type CatalogRouteConfig struct {
	CatalogHandler *cataloghandlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCatalogRoutes(engine *gin.Engine, config *CatalogRouteConfig) {
	categories := engine.Group("/categories")
	categories.Use(config.AuthMiddleware.RequireAuth())
	{
		categories.GET("", config.CatalogHandler.ListCategories)
		categories.POST("",
			authorization.RequireAdmin(),
			config.CatalogHandler.CreateCategory)
		categories.PATCH("/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.UpdateCategory)
		categories.DELETE("/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.DeleteCategory)
	}

	priorities := engine.Group("/priorities")
	priorities.Use(config.AuthMiddleware.RequireAuth())
	{
		priorities.GET("", config.CatalogHandler.ListPriorities)
		priorities.POST("",
			authorization.RequireAdmin(),
			config.CatalogHandler.CreatePriority)
		priorities.PUT("/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.UpdatePriority)
		priorities.DELETE("/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.DeletePriority)
	}
}
