package routes

import (
	"lawconnect_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.RequestHandler.RegisterRoutes(api)
	}
}
