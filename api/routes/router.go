// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"venuely/internal/allocation"
	"venuely/internal/notifications"
	"venuely/internal/shared/config"
	"venuely/internal/shared/database"
	"venuely/internal/venues"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	producer  notifications.Producer
	venueRepo venues.Repository // Shared between venue and allocation services
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Setup venue routes (must be before allocation routes so both share
		// one repository instance)
		r.setupVenueRoutes(api)

		// Setup allocation routes
		r.setupAllocationRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "venuely-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "venuely-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupVenueRoutes configures venue catalog routes
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	// Initialize venue dependencies
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	venueService := venues.NewService(venueRepo, r.db.GetRedisClient(), venues.CacheTTLs{
		Detail:   r.config.Redis.VenueDetailTTL,
		List:     r.config.Redis.VenueListTTL,
		Schedule: r.config.Redis.VenueScheduleTTL,
	})
	venueController := venues.NewController(venueService)

	// Store venue repository for the allocation service
	r.venueRepo = venueRepo

	// Setup venue routes
	venues.SetupVenueRoutes(rg, venueController)
}

// setupAllocationRoutes configures allocation routes
func (r *Router) setupAllocationRoutes(rg *gin.RouterGroup) {
	// Initialize allocation dependencies
	allocationService := allocation.NewService(r.venueRepo, r.db.GetRedisClient(), r.producer)
	allocationController := allocation.NewController(allocationService)

	// Setup allocation routes
	allocation.SetupAllocationRoutes(rg, allocationController)
}
