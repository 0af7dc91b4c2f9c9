//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"travelmate/internal/cache"
	"travelmate/internal/handler"
	"travelmate/internal/repository"
	"travelmate/internal/router"
	"travelmate/internal/service"
	"travelmate/internal/storage"
	"travelmate/pkg/identity"
	"travelmate/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAuthSecret is the JWT secret used in tests.
	TestAuthSecret = "test-secret-key-for-api-tests"
	// TestTokenExpiry is the token expiry time used in tests.
	TestTokenExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	TripRepo repository.TripRepository
	UserRepo repository.UserRepository

	// Services (for direct service access in tests)
	TripService      service.TripServicer
	ItineraryService service.ItineraryServicer
	BudgetService    service.BudgetServicer
	TaskService      service.TaskServicer
	UserService      service.UserServicer

	// Verifier issues and verifies bearer tokens for tests.
	Verifier *identity.JWTVerifier

	// Events records invitation events instead of writing to Kafka.
	Events *RecordingPublisher
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Create receipt storage (uses real MinIO)
	receiptStore := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// Token verifier
	verifier := identity.NewJWTVerifier(TestAuthSecret, TestTokenExpiry)

	// Invitation events are recorded in memory instead of published
	publisher := NewRecordingPublisher()

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

	return &TestServer{
		Router:           r,
		MongoDB:          mongoDB,
		Redis:            redisContainer,
		MinIO:            minioContainer,
		TripRepo:         tripRepo,
		UserRepo:         userRepo,
		TripService:      tripService,
		ItineraryService: itineraryService,
		BudgetService:    budgetService,
		TaskService:      taskService,
		UserService:      userService,
		Verifier:         verifier,
		Events:           publisher,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
