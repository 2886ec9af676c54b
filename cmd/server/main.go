package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techrecruit-portal/config"
	"techrecruit-portal/internal/catalog"
	"techrecruit-portal/internal/database"
	"techrecruit-portal/internal/events"
	"techrecruit-portal/internal/i18n"
	"techrecruit-portal/internal/server"
	"techrecruit-portal/internal/view"
	"techrecruit-portal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Cfg

	// Initialize logger
	if err := logger.Init(cfg); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting TechRecruit Portal API",
		zap.String("version", "1.0.0"),
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	// Connect to the preference store
	prefs, err := database.Connect(cfg, logger.Logger)
	if err != nil {
		logger.Fatal("Failed to connect to preference store", zap.Error(err))
	}

	// Locale bundle, embedded defaults unless overridden
	bundle := i18n.DefaultBundle()
	if cfg.I18n.BundlePath != "" {
		bundle, err = i18n.LoadBundle(cfg.I18n.BundlePath)
		if err != nil {
			logger.Fatal("Failed to load locale bundle", zap.Error(err))
		}
	}

	// Restore the persisted display language
	defaultLang := i18n.Normalize(cfg.I18n.DefaultLanguage)
	lang, err := prefs.LoadLanguage(defaultLang)
	if err != nil {
		logger.Warn("Failed to read persisted language, using default", zap.Error(err))
		lang = defaultLang
	}

	hub := events.NewHub()
	store := catalog.NewStore(lang, hub, prefs, logger.Logger)

	// Load the catalog once. A failed load leaves the catalog empty and the
	// API serving its degraded state; it is not retried.
	if err := store.Load(cfg.Catalog.Path); err != nil {
		logger.Error("Failed to load job catalog", zap.Error(err))
	}

	projector := view.NewProjector(bundle)

	// Initialize and start server
	srv := server.New(cfg, logger.Logger, store, prefs, projector)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router,

		// Timeouts
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,

		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting HTTP server",
			zap.String("address", httpServer.Addr),
		)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := prefs.Close(); err != nil {
		logger.Error("Failed to close preference store", zap.Error(err))
	}

	logger.Info("Server shutdown complete")
}
