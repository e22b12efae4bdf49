package handlers

import (
	"log/slog"
	"time"

	"github.com/SscSPs/pasale_ledger/cmd/docs"
	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/SscSPs/pasale_ledger/internal/middleware"
	"github.com/SscSPs/pasale_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	if err := dto.RegisterValidators(); err != nil {
		slog.Error("Failed to register request validators", slog.String("error", err.Error()))
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewLimiter(cfg.RateLimit)
		if err != nil {
			slog.Warn("Rate limiting disabled", slog.String("error", err.Error()))
		} else {
			v1.Use(middleware.RateLimit(limiterInstance))
		}
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	v1.GET("", getHome(service.Store))
	registerTransactionRoutes(v1, service.Store, cfg.GroupingStyle, loc)
	registerPartyRoutes(v1, service.Store, service.Ledger, cfg.GroupingStyle, loc)
	registerExpenseRoutes(v1, service.Store, cfg.GroupingStyle, loc)
	registerNotificationRoutes(v1, service.Store)
	registerReportingRoutes(v1, service.Reporting, cfg.GroupingStyle, loc)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
