package handler

import (
	"estatia/internal/usecase"
)

var (
	propertyHandler   *PropertyHandler
	reviewHandler     *ReviewHandler
	inquiryHandler    *InquiryHandler
	userHandler       *UserHandler
	calculatorHandler *CalculatorHandler
	healthHandler     *HealthHandler
)

func Setup(
	propertyUseCase *usecase.PropertyUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	inquiryUseCase *usecase.InquiryUseCase,
	userUseCase *usecase.UserUseCase,
) {
	propertyHandler = NewPropertyHandler(propertyUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	inquiryHandler = NewInquiryHandler(inquiryUseCase)
	userHandler = NewUserHandler(userUseCase)
	calculatorHandler = NewCalculatorHandler()
	healthHandler = NewHealthHandler()
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetInquiryHandler() *InquiryHandler {
	return inquiryHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetCalculatorHandler() *CalculatorHandler {
	return calculatorHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
