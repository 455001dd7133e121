// Package main is the entry point for the ResolvPay API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/resolvpay/backend/config"
	"github.com/resolvpay/backend/internal/infra/dependency"
	"github.com/resolvpay/backend/internal/infra/kv"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting ResolvPay API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize the storage backend. When Redis is unreachable the
	// server still runs, on a non-persistent in-memory backend.
	redisConn, err := kv.NewRedisConnection(&cfg.Redis)
	if err != nil {
		slog.Warn("Redis connection failed, running with in-memory storage",
			"error", err,
		)
		redisConn = nil
	} else {
		defer func() {
			if err := redisConn.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}()
	}

	// Wire dependencies
	injector := dependency.NewInjector(cfg, redisConn)

	// Load the persisted collections before serving
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer loadCancel()

	if err := injector.BillRepo.Load(loadCtx); err != nil {
		slog.Error("Failed to load bill collection", "error", err)
		os.Exit(1)
	}
	if err := injector.ExpenseRepo.Load(loadCtx); err != nil {
		slog.Error("Failed to load expense ledger", "error", err)
		os.Exit(1)
	}
	slog.Info("Collections loaded",
		"bills", injector.BillRepo.Count(),
	)

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
