package handlers

import (
	"log/slog"
	"time"

	"github.com/SscSPs/voucher_management_app/cmd/docs"
	portssvc "github.com/SscSPs/voucher_management_app/internal/core/ports/services"
	"github.com/SscSPs/voucher_management_app/internal/middleware"
	"github.com/SscSPs/voucher_management_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	rateLimiter *limiter.Limiter,
	services *portssvc.ServiceContainer,
) {
	useWireFieldNames()

	r.Use(cors.New(corsConfig(cfg)))

	registerHomeRoutes(r, cfg)

	setupAPIRoutes(r, cfg, rateLimiter, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = cfg.CORSOrigins
	c.AllowHeaders = append(c.AllowHeaders, middleware.UserIDHeader, middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	c.MaxAge = 12 * time.Hour
	if len(c.AllowOrigins) == 0 {
		slog.Warn("CORS_ORIGINS is empty; cross-origin requests will be rejected")
		c.AllowOrigins = nil
		c.AllowOriginFunc = func(string) bool { return false }
	}
	return c
}

// setupAPIRoutes configures the /api group and delegates to specific voucher route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	rateLimiter *limiter.Limiter,
	services *portssvc.ServiceContainer,
) {
	handlers := []gin.HandlerFunc{middleware.UserIdentity(cfg.DefaultUserID)}
	if rateLimiter != nil {
		handlers = append(handlers, middleware.RateLimit(rateLimiter))
	}
	api := r.Group("/api", handlers...)

	RegisterCashVoucherRoutes(api, services.CashVoucher)
	RegisterWarehouseVoucherRoutes(api, services.WarehouseVoucher)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Title = cfg.AppName
	docs.SwaggerInfo.Version = cfg.AppVersion
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
