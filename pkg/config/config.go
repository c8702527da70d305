package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Remote rate provider
	ExchangeAPIBaseURL string
	ExchangeAPIKey     string
	ProviderTimeout    time.Duration
	ProviderMaxRetries int

	// Rate cache
	RateTTL          time.Duration
	RateStoreBackend string // "postgres" or "redis"
	RedisAddr        string

	// Per-IP rate limit in ulule/limiter format, e.g. "60-M"
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "currency-exchange-api")
	viper.SetDefault("EXCHANGE_API_BASE_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("EXCHANGE_API_KEY", "")
	viper.SetDefault("PROVIDER_TIMEOUT", "5s")
	viper.SetDefault("PROVIDER_MAX_RETRIES", 2)
	viper.SetDefault("RATE_TTL", "1h")
	viper.SetDefault("RATE_STORE", "postgres")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && viper.GetString("RATE_STORE") != "redis" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = viper.GetDuration("JWT_EXPIRY_DURATION")
	if cfg.JWTExpiryDuration <= 0 {
		cfg.JWTExpiryDuration = time.Hour
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ExchangeAPIBaseURL = viper.GetString("EXCHANGE_API_BASE_URL")
	cfg.ExchangeAPIKey = viper.GetString("EXCHANGE_API_KEY")
	if cfg.ExchangeAPIKey == "" {
		log.Println("Warning: EXCHANGE_API_KEY environment variable not set.")
	}
	cfg.ProviderTimeout = viper.GetDuration("PROVIDER_TIMEOUT")
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = 5 * time.Second
	}
	cfg.ProviderMaxRetries = viper.GetInt("PROVIDER_MAX_RETRIES")

	cfg.RateTTL = viper.GetDuration("RATE_TTL")
	if cfg.RateTTL <= 0 {
		cfg.RateTTL = time.Hour
	}
	cfg.RateStoreBackend = viper.GetString("RATE_STORE")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
