package server

import (
	"time"

	"techrecruit-portal/config"
	"techrecruit-portal/internal/catalog"
	"techrecruit-portal/internal/database"
	"techrecruit-portal/internal/handlers"
	"techrecruit-portal/internal/middleware"
	"techrecruit-portal/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	Router *gin.Engine
	config *config.Config
	logger *zap.Logger
	store  *catalog.Store
	prefs  *database.Store

	// Handlers
	jobHandler         *handlers.JobHandler
	applicationHandler *handlers.ApplicationHandler
	languageHandler    *handlers.LanguageHandler
}

// New creates a new server instance
func New(cfg *config.Config, logger *zap.Logger, store *catalog.Store, prefs *database.Store, projector *view.Projector) *Server {
	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	server := &Server{
		Router:             router,
		config:             cfg,
		logger:             logger,
		store:              store,
		prefs:              prefs,
		jobHandler:         handlers.NewJobHandler(store, projector, logger, cfg.Server.BaseURL),
		applicationHandler: handlers.NewApplicationHandler(store, projector, logger),
		languageHandler:    handlers.NewLanguageHandler(store, logger),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	s.Router.Use(middleware.RequestIDMiddleware())
	s.Router.Use(middleware.RecoveryMiddleware(s.logger))
	s.Router.Use(middleware.SecurityHeadersMiddleware())

	s.Router.Use(middleware.CORSMiddleware(
		s.config.CORS.Origins,
		s.config.CORS.Credentials,
	))

	s.Router.Use(middleware.LoggingMiddleware(s.logger))
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	// Health check endpoints
	s.Router.GET("/health", s.healthCheck)
	s.Router.HEAD("/health", s.healthCheck)
	s.Router.GET("/ready", s.readinessCheck)
	s.Router.HEAD("/ready", s.readinessCheck)

	// API v1 routes
	v1 := s.Router.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", s.jobHandler.ListJobs)
			jobs.GET("/filters", s.jobHandler.GetFilterOptions)
			jobs.GET("/:id", s.jobHandler.GetJob)
			jobs.GET("/:id/share", s.jobHandler.ShareJob)
			jobs.POST("/:id/apply", s.applicationHandler.SubmitApplication)
		}

		v1.GET("/language", s.languageHandler.GetLanguage)
		v1.PUT("/language", s.languageHandler.SetLanguage)
	}
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
		"service":   "techrecruit-portal-api",
	})
}

// readinessCheck verifies the catalog is loaded and the preference store is
// reachable before reporting ready.
func (s *Server) readinessCheck(c *gin.Context) {
	checks := gin.H{}

	if s.store.Loaded() {
		checks["catalog"] = "loaded"
	} else {
		checks["catalog"] = "empty"
	}

	prefsHealthy := true
	if s.prefs != nil {
		if err := s.prefs.IsHealthy(); err != nil {
			s.logger.Error("Preference store health check failed", zap.Error(err))
			prefsHealthy = false
			checks["preferences"] = "unreachable"
		} else {
			checks["preferences"] = "healthy"
		}
	}

	if !s.store.Loaded() || !prefsHealthy {
		c.JSON(503, gin.H{
			"status":    "not ready",
			"timestamp": time.Now().UTC(),
			"checks":    checks,
		})
		return
	}

	c.JSON(200, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
		"service":   "techrecruit-portal-api",
		"checks":    checks,
	})
}
