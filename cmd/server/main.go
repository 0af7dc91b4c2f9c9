package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelmate/internal/cache"
	"travelmate/internal/config"
	"travelmate/internal/database"
	"travelmate/internal/events"
	"travelmate/internal/handler"
	"travelmate/internal/repository"
	"travelmate/internal/router"
	"travelmate/internal/service"
	"travelmate/internal/storage"
	"travelmate/internal/validator"
	"travelmate/pkg/identity"

	"github.com/gin-gonic/gin"
)

// @title           TravelMate API
// @version         1.0
// @description     A REST API for collaborative trip planning with shared itineraries, budgets, and tasks.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 storage for receipts, optional
	var receiptStore storage.Storage
	if cfg.StorageEnabled() {
		receiptStore = storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
		log.Printf("Receipt storage enabled: %s/%s", cfg.S3Endpoint, cfg.S3Bucket)
	} else {
		log.Println("Receipt storage disabled, receipt endpoints answer 503")
	}

	// Kafka publisher for invitation events, optional
	var publisher events.Publisher
	if cfg.EventsEnabled() {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaInviteTopic)
		if err != nil {
			log.Fatalf("Failed to create Kafka publisher: %v", err)
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Invitation events enabled on topic %s", cfg.KafkaInviteTopic)
	} else {
		log.Println("Invitation events disabled, invites are acknowledged without publishing")
	}

	// Token verifier
	verifier := identity.NewJWTVerifier(cfg.AuthSecret, cfg.AuthExpiry)

	// Repository layer
	tripRepo := repository.NewTripRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)

	// Service layer
	tripService := service.NewTripService(tripRepo, publisher)
	itineraryService := service.NewItineraryService(tripRepo)
	budgetService := service.NewBudgetService(tripRepo, receiptStore)
	taskService := service.NewTaskService(tripRepo)
	userService := service.NewUserService(userRepo, tripRepo, redisCache)

	// Handler layer
	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	tripHandler := handler.NewTripHandler(tripService)
	itineraryHandler := handler.NewItineraryHandler(itineraryService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	taskHandler := handler.NewTaskHandler(taskService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		TripHandler:      tripHandler,
		ItineraryHandler: itineraryHandler,
		BudgetHandler:    budgetHandler,
		TaskHandler:      taskHandler,
		Verifier:         verifier,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
