package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const insecureJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	JWTSecret      string

	// Analytic computation
	DefaultCurrency     string
	AggregationStrategy domain.AggregationStrategy
	RecomputeMode       domain.RecomputeMode

	// Summary cache; disabled when RedisAddr is empty.
	RedisAddr string
	CacheTTL  time.Duration

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("DEFAULT_CURRENCY", "")
	v.SetDefault("AGGREGATION_STRATEGY", string(domain.AggregateJournalLines))
	v.SetDefault("RECOMPUTE_MODE", string(domain.RecomputeTargeted))
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		DefaultCurrency: strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_CURRENCY"))),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RateLimit:       v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set.", slog.String("default", cfg.Port))
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
		cfg.JWTSecret = insecureJWTSecret
	}
	if cfg.DefaultCurrency != "" && len(cfg.DefaultCurrency) != 3 {
		return nil, fmt.Errorf("DEFAULT_CURRENCY must be a 3-letter code, got %q", cfg.DefaultCurrency)
	}

	var err error
	if cfg.AggregationStrategy, err = domain.ParseAggregationStrategy(v.GetString("AGGREGATION_STRATEGY")); err != nil {
		return nil, fmt.Errorf("AGGREGATION_STRATEGY: %w", err)
	}
	if cfg.RecomputeMode, err = domain.ParseRecomputeMode(v.GetString("RECOMPUTE_MODE")); err != nil {
		return nil, fmt.Errorf("RECOMPUTE_MODE: %w", err)
	}

	ttlStr := v.GetString("CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
		slog.Warn("Invalid value for CACHE_TTL. Using default.", slog.String("value", ttlStr), slog.String("default", ttl.String()))
	}
	cfg.CacheTTL = ttl

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
