package router

import (
	"github.com/labstack/echo/v4"

	"estatia/internal/adapter/api/handler"
	"estatia/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)

	// Fixed paths must be registered before /:id.
	users.GET("", userHandler.ListUsers, middleware.RequireRoles("admin"))
	users.PUT("/save-property/:propertyId", userHandler.ToggleSavedProperty)
	users.GET("/saved-properties", userHandler.SavedProperties)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser, middleware.RequireRoles("admin"))
}
