package main

import (
	"context"
	"log"
	"net/http"

	_ "predictify/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"predictify/internal/ai"
	"predictify/internal/auth"
	"predictify/internal/cache"
	"predictify/internal/config"
	"predictify/internal/db"
	apperrors "predictify/internal/errors"
	"predictify/internal/handler"
	"predictify/internal/metrics"
	"predictify/internal/model"
	"predictify/internal/repository"
	"predictify/internal/router"
	"predictify/internal/service"
)

// @title Predictify API
// @version 1.0
// @description Tech event management API with JWT authentication, registrations, and AI-assisted attendance predictions.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.OrganizerProfile{},
		&model.Event{},
		&model.Registration{},
		&model.Prediction{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	organizerRepo := repository.NewOrganizerRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	registrationRepo := repository.NewRegistrationRepository(gormDB)
	predictionRepo := repository.NewPredictionRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize AI generator. The server runs without one, but the AI
	// endpoints answer with an error until a key is configured.
	var generator ai.Generator = ai.Disabled()
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Fatal("gemini init", zap.Error(err))
		}
		defer gemini.Close()
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI generation disabled")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	organizerService := service.NewOrganizerService(organizerRepo)
	eventService := service.NewEventService(eventRepo, organizerRepo, cacheClient)
	registrationService := service.NewRegistrationService(registrationRepo, eventRepo, organizerRepo)
	predictionService := service.NewPredictionService(predictionRepo, eventRepo, registrationRepo, generator, cacheClient)
	aiService := service.NewAIService(generator)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, registrationService)
	organizerHandler := handler.NewOrganizerHandler(organizerService, eventService)
	eventHandler := handler.NewEventHandler(eventService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	predictionHandler := handler.NewPredictionHandler(predictionService)
	aiHandler := handler.NewAIHandler(aiService)

	metrics.Init()

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		authHandler,
		userHandler,
		organizerHandler,
		eventHandler,
		registrationHandler,
		predictionHandler,
		aiHandler,
	)

	addr := ":" + cfg.ServerPort
	logger.Info("server starting", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
