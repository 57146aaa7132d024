package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/taxplanner/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":           "",
		"PORT":              "",
		"REDIS_URL":         "",
		"QUOTE_CACHE_TTL":   "",
		"RATE_LIMIT_MAX":    "",
		"RATE_LIMIT_WINDOW": "",
		"SECURITY_HEADERS":  "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, 10*time.Minute, cfg.QuoteCacheTTL)
	require.Equal(t, 120, cfg.RateLimitMax)
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.True(t, cfg.SecurityHeaders)
	require.False(t, cfg.CacheEnabled())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"PORT":                 ":9090",
		"REDIS_URL":            "redis://localhost:6379/0",
		"QUOTE_CACHE_TTL":      "90s",
		"RATE_LIMIT_MAX":       "5",
		"SECURITY_HEADERS":     "off",
		"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
		"SHUTDOWN_TIMEOUT":     "not-a-duration",
	})
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, 90*time.Second, cfg.QuoteCacheTTL)
	require.Equal(t, 5, cfg.RateLimitMax)
	require.False(t, cfg.SecurityHeaders)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.True(t, cfg.CacheEnabled())
}

func TestLoadRejectsInvalidBreakerRatio(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{"CACHE_BREAKER_FAILURE_RATIO": "1.5"})
	require.Error(t, err)
}

func TestMustLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_BREAKER_FAILURE_RATIO", "")
	require.Equal(t, ":9090", config.MustLoad().HTTPAddr())

	t.Setenv("CACHE_BREAKER_FAILURE_RATIO", "2")
	require.Panics(t, func() { config.MustLoad() })
}
