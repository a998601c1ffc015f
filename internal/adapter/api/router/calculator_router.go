package router

import (
	"github.com/labstack/echo/v4"

	"estatia/internal/adapter/api/handler"
)

func SetupCalculatorRouter(e *echo.Echo) {
	calculatorHandler := handler.GetCalculatorHandler()

	e.GET("/v1/calculator/emi", calculatorHandler.CalculateEMI)
}
