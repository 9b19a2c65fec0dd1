package config

import (
	"testing"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/analytic")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, insecureJWTSecret, cfg.JWTSecret)
	assert.Equal(t, domain.AggregateJournalLines, cfg.AggregationStrategy)
	assert.Equal(t, domain.RecomputeTargeted, cfg.RecomputeMode)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DEFAULT_CURRENCY", "eur")
	t.Setenv("AGGREGATION_STRATEGY", "ledger_fields")
	t.Setenv("RECOMPUTE_MODE", "full")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
	assert.Equal(t, domain.AggregateLedgerFields, cfg.AggregationStrategy)
	assert.Equal(t, domain.RecomputeFull, cfg.RecomputeMode)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown strategy", map[string]string{"AGGREGATION_STRATEGY": "weighted"}},
		{"unknown mode", map[string]string{"RECOMPUTE_MODE": "lazy"}},
		{"bad currency", map[string]string{"DEFAULT_CURRENCY": "EURO"}},
		{"production without secret", map[string]string{"IS_PRODUCTION": "true", "JWT_SECRET": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
