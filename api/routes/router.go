// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"courtside/assets"
	"courtside/internal/charts"
	"courtside/internal/events"
	"courtside/internal/notifications"
	"courtside/internal/pricing"
	"courtside/internal/shared/config"
	"courtside/internal/shared/database"
	"courtside/internal/venuemaps"
	"courtside/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	registry *charts.Registry
	resolver *charts.Resolver

	cacheService   cache.Service
	eventService   events.Service
	pricingService pricing.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) (*Router, error) {
	registry, err := charts.NewRegistry(assets.ChartsFS())
	if err != nil {
		return nil, err
	}

	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
		registry: registry,
		resolver: charts.NewResolver(registry, cfg.Charts.FallbackKey),
	}, nil
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	pricing.RegisterValidations()

	r.cacheService = cache.NewService(r.db.GetRedis())

	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Event routes first: pricing and venue maps depend on the event service
		r.setupEventRoutes(api)
		r.setupPricingRoutes(api)
		r.setupVenueMapRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "courtside-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "courtside-backend",
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
			"charts":      r.registry.Len(),
			"timestamp":   time.Now(),
		})
	})
}

// setupEventRoutes configures event catalog routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	eventService := events.NewService(eventRepo)
	eventService.SetCacheService(r.cacheService)

	// Store event service for dependency injection
	r.eventService = eventService

	eventController := events.NewController(eventService)
	events.SetupEventRoutes(rg, eventController)
}

// setupPricingRoutes configures admin pricing-override routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	pricingRepo := pricing.NewRepository(r.db.GetPostgreSQL())
	pricingService := pricing.NewService(pricingRepo, r.resolver, r.eventService)
	pricingService.SetCacheService(r.cacheService)
	if r.producer != nil {
		pricingService.SetProducer(r.producer)
	}

	// Store pricing service for venue-map composition
	r.pricingService = pricingService

	pricingController := pricing.NewController(pricingService)
	pricing.SetupPricingRoutes(rg, pricingController)
}

// setupVenueMapRoutes configures venue-map resolution routes
func (r *Router) setupVenueMapRoutes(rg *gin.RouterGroup) {
	venueMapService := venuemaps.NewService(r.resolver, r.eventService, r.pricingService)
	venueMapService.SetCacheService(r.cacheService)

	venueMapController := venuemaps.NewController(venueMapService)
	venuemaps.SetupVenueMapRoutes(rg, venueMapController)
}
