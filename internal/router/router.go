// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "travelmate/swagger" // Import generated swagger docs

	"travelmate/internal/handler"
	"travelmate/internal/middleware"
	"travelmate/pkg/identity"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	TripHandler      *handler.TripHandler
	ItineraryHandler *handler.ItineraryHandler
	BudgetHandler    *handler.BudgetHandler
	TaskHandler      *handler.TaskHandler
	Verifier         identity.Verifier
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API, all behind token verification
	api := r.Group("/api")
	api.Use(middleware.Auth(cfg.Verifier))
	{
		// Auth and own profile
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/verify", cfg.AuthHandler.Verify)
			authRoutes.GET("/profile", cfg.AuthHandler.GetProfile)
			authRoutes.PUT("/profile", cfg.AuthHandler.UpdateProfile)
		}

		// Other users
		users := api.Group("/users")
		{
			users.GET("/search", cfg.UserHandler.Search)
			users.GET("/:userId", cfg.UserHandler.GetUser)
			users.GET("/:userId/trips", cfg.UserHandler.GetUserTrips)
		}

		// Trips and their embedded collections
		trips := api.Group("/trips")
		{
			trips.POST("", cfg.TripHandler.CreateTrip)
			trips.GET("", cfg.TripHandler.ListTrips)

			tripWithID := trips.Group("/:tripId")
			{
				tripWithID.GET("", cfg.TripHandler.GetTrip)
				tripWithID.PUT("", cfg.TripHandler.UpdateTrip)
				tripWithID.DELETE("", cfg.TripHandler.DeleteTrip)
				tripWithID.POST("/invite", cfg.TripHandler.InviteParticipant)

				itinerary := tripWithID.Group("/itinerary")
				{
					itinerary.GET("", cfg.ItineraryHandler.ListSteps)
					itinerary.POST("", cfg.ItineraryHandler.AddStep)
					itinerary.PUT("/:stepId", cfg.ItineraryHandler.UpdateStep)
					itinerary.DELETE("/:stepId", cfg.ItineraryHandler.DeleteStep)
				}

				budget := tripWithID.Group("/budget")
				{
					budget.GET("", cfg.BudgetHandler.ListItems)
					budget.POST("", cfg.BudgetHandler.AddItem)
					budget.GET("/summary", cfg.BudgetHandler.Summary)
					budget.PUT("/:itemId", cfg.BudgetHandler.UpdateItem)
					budget.DELETE("/:itemId", cfg.BudgetHandler.DeleteItem)
					budget.POST("/:itemId/receipt", cfg.BudgetHandler.CreateReceiptUpload)
				}

				tasks := tripWithID.Group("/tasks")
				{
					tasks.GET("", cfg.TaskHandler.ListTasks)
					tasks.POST("", cfg.TaskHandler.AddTask)
					tasks.GET("/summary", cfg.TaskHandler.Summary)
					tasks.PUT("/:taskId", cfg.TaskHandler.UpdateTask)
					tasks.DELETE("/:taskId", cfg.TaskHandler.DeleteTask)
					tasks.PATCH("/:taskId/complete", cfg.TaskHandler.SetCompleted)
				}
			}
		}
	}

	return r
}
