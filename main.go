package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/auth"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/config"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/handlers"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/payments"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories/mongodb"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/services"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/utils"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/validator"
	"github.com/TanvirMain49/Learn-Hub-Server/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize MongoDB
	ctx := context.Background()
	mongoClient, err := pkg.InitMongo(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize mongodb: %v", err)
	}

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Redis: %v", err)
		}
	}

	// Initialize repositories and the unique indexes backing the
	// conditional inserts
	repo := mongodb.NewMongoRepository(mongodb.RepositoryConfig{
		Client:      mongoClient,
		Database:    cfg.MongoDatabase,
		RedisClient: redisClient,
	})
	if err := repo.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// Initialize validator
	validator := validator.New()

	// Initialize services
	intents := payments.NewClient(cfg.StripeSecretKey)
	serviceManager := services.NewServiceManager(repo, slogLogger, validator, intents)

	// Initialize handlers
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	handlerManager := handlers.NewHandlerManager(serviceManager, validator, logger, tokens, repo.User())

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	handlers.SetupMiddleware(router, logger)

	// Setup routes
	handlerManager.SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Close database connection
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Printf("Failed to disconnect mongodb: %v", err)
	}

	// Close Redis connection
	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}
