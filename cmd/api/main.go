package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chile-cleaner/app/config"
	"github.com/chile-cleaner/app/controllers"
	"github.com/chile-cleaner/app/services"
	"github.com/chile-cleaner/cleaner"
	"github.com/chile-cleaner/routes"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()

	logger := initLogger(cfg.Env)
	defer logger.Sync()

	logger.Info("Starting Region Normalization Service",
		zap.String("version", version),
		zap.String("env", cfg.Env))

	// The region table is embedded; a failure here means the build is broken.
	regionCleaner, err := cleaner.New()
	if err != nil {
		logger.Fatal("Failed to build region table", zap.Error(err))
	}

	cacheService, err := services.NewLRUCacheService(cfg.CacheSize, logger)
	if err != nil {
		logger.Fatal("Failed to initialize resolution cache", zap.Error(err))
	}

	regionService := services.NewRegionService(regionCleaner, cacheService, logger)
	regionController := controllers.NewRegionController(regionService, version, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, regionController)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Region Normalization Service listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func initLogger(env string) *zap.Logger {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}
