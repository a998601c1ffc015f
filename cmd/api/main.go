package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"estatia/internal/adapter/api"
	"estatia/internal/adapter/api/handler"
	apimiddleware "estatia/internal/adapter/api/middleware"
	"estatia/internal/adapter/api/router"
	"estatia/internal/adapter/repository"
	"estatia/internal/infrastructure/mongodb"
	"estatia/internal/infrastructure/token"
	"estatia/internal/usecase"
	"estatia/pkg/config"
	"estatia/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Client().Disconnect(ctx)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	propertyRepo := repository.NewMongoPropertyRepository(db)
	reviewRepo := repository.NewMongoReviewRepository(db)
	inquiryRepo := repository.NewMongoInquiryRepository(db)
	userRepo := repository.NewMongoUserRepository(db)

	tokenManager := token.NewManager(cfg.JWTSecret, cfg.JWTExpiryHours)

	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, userRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, propertyRepo, userRepo)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, propertyRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, propertyRepo)

	handler.Setup(propertyUseCase, reviewUseCase, inquiryUseCase, userUseCase)
	handler.SetupDevTokenHandler(tokenManager, userRepo)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)

	router.Setup(e, authMiddleware)
	router.SetupDevRouter(e, cfg.Environment)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
