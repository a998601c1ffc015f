package router

import (
	"github.com/labstack/echo/v4"

	"estatia/internal/adapter/api/handler"
	"estatia/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/properties/:propertyId/reviews", reviewHandler.ListReviews)
	e.POST("/v1/properties/:propertyId/reviews", reviewHandler.CreateReview,
		authMiddleware.Authenticate)

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.PUT("/:id", reviewHandler.UpdateReview)
	reviews.DELETE("/:id", reviewHandler.DeleteReview)
}
