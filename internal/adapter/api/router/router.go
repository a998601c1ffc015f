package router

import (
	"github.com/labstack/echo/v4"

	"estatia/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupPropertyRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupInquiryRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupCalculatorRouter(e)
	SetupHealthRouter(e)
}
