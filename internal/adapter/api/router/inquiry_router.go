package router

import (
	"github.com/labstack/echo/v4"

	"estatia/internal/adapter/api/handler"
	"estatia/internal/adapter/api/middleware"
)

func SetupInquiryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	inquiryHandler := handler.GetInquiryHandler()

	inquiries := e.Group("/v1/inquiries")
	inquiries.Use(authMiddleware.Authenticate)

	inquiries.GET("", inquiryHandler.ListInquiries)
	inquiries.POST("", inquiryHandler.CreateInquiry)
	inquiries.PUT("/:id", inquiryHandler.UpdateInquiry)
	inquiries.DELETE("/:id", inquiryHandler.DeleteInquiry)
}
