package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"readiness-engine/internal/adapter"
	"readiness-engine/internal/cache"
	"readiness-engine/internal/config"
	"readiness-engine/internal/database"
	"readiness-engine/internal/handler"
	"readiness-engine/internal/logger"
	"readiness-engine/internal/middleware"
	"readiness-engine/internal/repository"
	"readiness-engine/internal/scoring"
	"readiness-engine/internal/service"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Scoring engine with the built-in question bank
	engine, err := scoring.NewDefaultEngine()
	if err != nil {
		appLogger.Fatal("Failed to build scoring engine", zap.Error(err))
	}

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	submissionRepository := repository.NewSubmissionDatabaseAdapter(db)

	// Initialize Redis Client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	rateLimiter := adapter.NewRedisRateLimiter(redisClient)
	pendingQueue := adapter.NewRedisPendingQueue(redisClient)

	// Initialize services
	insightsService := service.NewInsightsService(submissionRepository, cacheAdapter)
	assessmentService := service.NewAssessmentService(engine, submissionRepository, rateLimiter, pendingQueue, insightsService)
	appLogger.Info("Services initialized")

	// Initialize handlers
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, insightsService)
	adminHandler := handler.NewAdminHandler(insightsService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := cacheAdapter.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		if err := db.PingContext(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API group
	apiGroup := app.Group("/api")

	// Assessment routes
	assessmentGroup := apiGroup.Group("/assessment")
	assessmentGroup.Get("/questions", assessmentHandler.GetQuestions)
	assessmentGroup.Post("/submissions", assessmentHandler.SubmitAssessment)
	assessmentGroup.Get("/companies", assessmentHandler.GetEligibleCompanies)
	assessmentGroup.Get("/companies/:domain/rollup", assessmentHandler.GetCompanyRollup)

	// Admin routes (all protected)
	adminGroup := apiGroup.Group("/admin", middleware.AdminProtected(cfg.Admin.JWTSecret))
	adminGroup.Get("/stats", adminHandler.GetStats)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
