package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/cocosmart/shopcore/internal/api"
	"github.com/cocosmart/shopcore/internal/backend"
	"github.com/cocosmart/shopcore/internal/cart"
	"github.com/cocosmart/shopcore/internal/config"
	"github.com/cocosmart/shopcore/internal/service"
	"github.com/cocosmart/shopcore/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting shop core server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	cur, err := currency.ParseISO(cfg.Cart.Currency)
	if err != nil {
		logger.Fatal("Invalid currency code", zap.String("currency", cfg.Cart.Currency), zap.Error(err))
	}

	// Cart storage: Redis when configured, in-memory fallback otherwise.
	// An unreachable Redis degrades to memory instead of refusing to start.
	var kv storage.KV = storage.NewMemory()
	if cfg.Redis.URL != "" || cfg.Redis.Addr != "" {
		redisStore, err := storage.NewRedis(cfg.Redis, logger)
		if err != nil {
			logger.Warn("Cart storage unavailable, using in-memory cart for this session", zap.Error(err))
		} else {
			kv = redisStore
			defer redisStore.Close()
		}
	}

	store := cart.NewStore(kv, cfg.Cart.Key, logger)
	client := backend.NewClient(cfg.Backend, logger)
	checkouts := service.NewCheckoutService(store, client, logger)

	// Initialize router
	router := api.NewRouter(cfg, store, checkouts, cur, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
