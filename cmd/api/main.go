// ABOUTME: Main entry point for the Lead Search API server
// ABOUTME: Wires together all components and starts the HTTP server

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

	"leadsearch-api/api"
	"leadsearch-api/api/handlers"
	logruslogger "leadsearch-api/infrastructure/logger/logrus"
	"leadsearch-api/pkg/bootstrap"
	"leadsearch-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting Lead Search API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"max_pages":  cfg.Search.MaxPages,
	})

	stack := bootstrap.New(cfg, logger)
	defer stack.Close()

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		Flags:      stack.Flags,
		RateLimit:  cfg.RateLimit.RequestsPerMinute,
		RateWindow: time.Minute,
	})

	handlers.NewSearchHandler(stack.Service).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(stack.Provider).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // three provider pages plus retries
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
    __                   __   _____                      __
   / /   ___  ____ _____/ /  / ___/___  ____ ___________/ /_
  / /   / _ \/ __ '/ __  /   \__ \/ _ \/ __ '/ ___/ ___/ __ \
 / /___/  __/ /_/ / /_/ /   ___/ /  __/ /_/ / /  / /__/ / / /
/_____/\___/\__,_/\__,_/   /____/\___/\__,_/_/   \___/_/ /_/
	`)
}
