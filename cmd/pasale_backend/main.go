package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/pasale_ledger/internal/adapters/database"
	portsrepo "github.com/SscSPs/pasale_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/SscSPs/pasale_ledger/internal/handlers"
	"github.com/SscSPs/pasale_ledger/internal/middleware"
	"github.com/SscSPs/pasale_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Pasale Ledger API
// @version 1.0
// @description Bookkeeping backend for a small shop: transactions, parties, ledgers and reports.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	level.Set(parseLevel(cfg.LogLevel))

	ctx := context.Background()
	repo, err := database.OpenSnapshotRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			logger.Error("Error closing storage", slog.String("error", cerr.Error()))
		}
	}()

	container := services.NewServiceContainer(ctx, cfg, portsrepo.RepositoryProvider{SnapshotRepo: repo})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.AllowedOrigins))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
