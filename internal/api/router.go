package api

import (
	"github.com/gin-gonic/gin"

	"github.com/tyler/huntboard/internal/api/handler"
	"github.com/tyler/huntboard/internal/api/middleware"
	"github.com/tyler/huntboard/internal/config"
	"github.com/tyler/huntboard/internal/logger"
	"github.com/tyler/huntboard/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	searchService *service.JobSearchService,
	sessionService *service.SessionService,
	trackerService *service.TrackerService,
	statsService *service.StatsService,
	cfg *config.Config,
	log *logger.Logger,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(cfg.Server.CORS))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	searchHandler := handler.NewSearchHandler(searchService, sessionService)
	applicationHandler := handler.NewApplicationHandler(trackerService)
	networkHandler := handler.NewNetworkHandler(trackerService, statsService)
	revenueHandler := handler.NewRevenueHandler(trackerService, statsService)
	contentHandler := handler.NewContentHandler(trackerService, statsService)
	reviewHandler := handler.NewReviewHandler(trackerService)
	dashboardHandler := handler.NewDashboardHandler(statsService)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Job search pipeline and sessions
		v1.POST("/search-jobs", searchHandler.SearchJobs)
		v1.GET("/search-sessions/:id", searchHandler.GetSession)
		v1.POST("/search-sessions/:id/listings/:listingID/reject", searchHandler.RejectListing)
		v1.POST("/search-sessions/:id/listings/:listingID/confirm", searchHandler.ConfirmListing)

		// Applications
		v1.GET("/applications", applicationHandler.List)
		v1.POST("/applications", applicationHandler.Create)
		v1.PUT("/applications/:id", applicationHandler.Update)
		v1.DELETE("/applications/:id", applicationHandler.Delete)

		// Network contacts
		v1.GET("/contacts", networkHandler.List)
		v1.POST("/contacts", networkHandler.Create)
		v1.PUT("/contacts/:id", networkHandler.Update)
		v1.DELETE("/contacts/:id", networkHandler.Delete)

		// Revenue weeks
		v1.GET("/revenue", revenueHandler.List)
		v1.POST("/revenue", revenueHandler.Upsert)
		v1.PUT("/revenue/:id", revenueHandler.Update)
		v1.DELETE("/revenue/:id", revenueHandler.Delete)

		// Content calendar
		v1.GET("/content", contentHandler.List)
		v1.POST("/content", contentHandler.Create)
		v1.PUT("/content/:id", contentHandler.Update)
		v1.DELETE("/content/:id", contentHandler.Delete)

		// Weekly reviews
		v1.GET("/reviews", reviewHandler.List)
		v1.POST("/reviews", reviewHandler.Upsert)
		v1.PUT("/reviews/:id", reviewHandler.Update)
		v1.DELETE("/reviews/:id", reviewHandler.Delete)

		// Dashboard
		v1.GET("/dashboard", dashboardHandler.Get)
	}

	return r
}
