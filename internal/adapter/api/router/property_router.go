package router

import (
	"github.com/labstack/echo/v4"

	"estatia/internal/adapter/api/handler"
	"estatia/internal/adapter/api/middleware"
)

func SetupPropertyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	propertyHandler := handler.GetPropertyHandler()

	properties := e.Group("/v1/properties")

	// Fixed paths must be registered before /:id.
	properties.GET("", propertyHandler.ListProperties)
	properties.GET("/featured", propertyHandler.FeaturedProperties)
	properties.GET("/with-tours", propertyHandler.PropertiesWithTours)
	properties.GET("/stats", propertyHandler.PropertyStats,
		authMiddleware.Authenticate, middleware.RequireRoles("admin"))
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.GET("/:id/similar", propertyHandler.SimilarProperties)

	properties.POST("", propertyHandler.CreateProperty,
		authMiddleware.Authenticate, middleware.RequireRoles("agent", "admin"))
	properties.PUT("/:id", propertyHandler.UpdateProperty,
		authMiddleware.Authenticate, middleware.RequireRoles("agent", "admin"))
	properties.DELETE("/:id", propertyHandler.DeleteProperty,
		authMiddleware.Authenticate, middleware.RequireRoles("agent", "admin"))
}
