package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	portssvc "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/services"
	"github.com/muhammadanas3/currency-exchange-api/internal/middleware"
	"github.com/muhammadanas3/currency-exchange-api/pkg/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// defaultRateLimit applies when the configured per-IP limit cannot be parsed.
const defaultRateLimit = "60-M"

// ErrorResponse is the generic error response body used by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service port interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	pricingService portssvc.PricingSvcFacade,
	rateService portssvc.RateSvcFacade,
	authService portssvc.AuthSvcFacade,
) {
	r.GET("/health", getHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAuthRoutes(r, cfg, authService)
	setupAPIV1Routes(r, cfg, pricingService, rateService)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	pricingService portssvc.PricingSvcFacade,
	rateService portssvc.RateSvcFacade,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT format, falling back to default",
			slog.String("rate_limit", cfg.RateLimit),
			slog.String("fallback", defaultRateLimit),
			slog.String("error", err.Error()),
		)
		rate, _ = limiter.NewRateFromFormatted(defaultRateLimit)
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter), middleware.AuthMiddleware(cfg.JWTSecret))

	registerCalculationRoutes(v1, pricingService)
	registerExchangeRateRoutes(v1, rateService)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
