package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/services"
	"github.com/muhammadanas3/currency-exchange-api/internal/handlers"
	"github.com/muhammadanas3/currency-exchange-api/internal/metrics"
	"github.com/muhammadanas3/currency-exchange-api/internal/middleware"
	"github.com/muhammadanas3/currency-exchange-api/internal/repositories/cache/redisstore"
	"github.com/muhammadanas3/currency-exchange-api/internal/repositories/database/pgsql"
	"github.com/muhammadanas3/currency-exchange-api/internal/repositories/external/exchangerateapi"
	"github.com/muhammadanas3/currency-exchange-api/pkg/config"
	"github.com/muhammadanas3/currency-exchange-api/pkg/database"
	"github.com/redis/go-redis/v9"

	portsrepo "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/repositories"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Currency Exchange & Pricing API
// @version 1.0
// @description Prices multi-item orders with discounts and currency conversion.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	runMigrations(cfg, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	m := metrics.New()
	r.Use(middleware.MetricsMiddleware(m))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := newRateStore(cfg, dbPool, logger)
	provider := exchangerateapi.NewClient(cfg.ExchangeAPIBaseURL, cfg.ExchangeAPIKey, cfg.ProviderTimeout, cfg.ProviderMaxRetries)

	rateService := services.NewExchangeRateService(store, provider, cfg.RateTTL).WithMetrics(m)
	discountService := services.NewDiscountService()
	pricingService := services.NewPricingService(discountService, rateService).WithMetrics(m)
	authService := services.NewAuthService(pgsql.NewPgxUserRepository(dbPool), cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	handlers.RegisterRoutes(r, cfg, pricingService, rateService, authService)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRateStore picks the rate store backend: postgres by default, redis
// when configured.
func newRateStore(cfg *config.Config, dbPool *pgxpool.Pool, logger *slog.Logger) portsrepo.RateStoreFacade {
	if cfg.RateStoreBackend == "redis" {
		logger.Info("Using redis rate store", slog.String("addr", cfg.RedisAddr))
		return redisstore.NewRateStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}
	return pgsql.NewPgxRateStore(dbPool)
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
}
