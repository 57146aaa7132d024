package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	RedisURL           string
	CORSAllowedOrigins []string

	QuoteCacheTTL time.Duration

	RateLimitWindow time.Duration
	RateLimitMax    int

	BodyLimitBytes        int64
	SecurityHeaders       bool
	HSTSEnabled           bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool

	CacheBreakerMinRequests  int
	CacheBreakerFailureRatio float64
	CacheBreakerOpenFor      time.Duration

	RedisPingTimeout time.Duration
	ShutdownTimeout  time.Duration
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		RedisURL:           strings.TrimSpace(k.String("REDIS_URL")),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),

		QuoteCacheTTL: parseDuration(k.String("QUOTE_CACHE_TTL"), "10m"),

		RateLimitWindow: parseDuration(k.String("RATE_LIMIT_WINDOW"), "1m"),
		RateLimitMax:    parseInt(k.String("RATE_LIMIT_MAX"), 120),

		BodyLimitBytes:        int64(parseInt(k.String("BODY_LIMIT_BYTES"), 16<<10)),
		SecurityHeaders:       parseBoolDefault(k.String("SECURITY_HEADERS"), true),
		HSTSEnabled:           parseBoolDefault(k.String("SECURITY_HSTS"), false),
		HSTSMaxAge:            parseInt(k.String("SECURITY_HSTS_MAX_AGE"), 31536000),
		HSTSIncludeSubdomains: parseBoolDefault(k.String("SECURITY_HSTS_INCLUDE_SUBDOMAINS"), false),

		CacheBreakerMinRequests:  parseInt(k.String("CACHE_BREAKER_MIN_REQUESTS"), 10),
		CacheBreakerFailureRatio: parseFloat(k.String("CACHE_BREAKER_FAILURE_RATIO"), 0.5),
		CacheBreakerOpenFor:      parseDuration(k.String("CACHE_BREAKER_OPEN_FOR"), "30s"),

		RedisPingTimeout: parseDuration(k.String("HEALTH_READY_REDIS_TIMEOUT"), "300ms"),
		ShutdownTimeout:  parseDuration(k.String("SHUTDOWN_TIMEOUT"), "10s"),
	}

	if cfg.RateLimitMax < 0 {
		return nil, errors.New("RATE_LIMIT_MAX must not be negative")
	}
	if cfg.BodyLimitBytes <= 0 {
		return nil, errors.New("BODY_LIMIT_BYTES must be positive")
	}
	if cfg.CacheBreakerFailureRatio <= 0 || cfg.CacheBreakerFailureRatio > 1 {
		return nil, errors.New("CACHE_BREAKER_FAILURE_RATIO must be in (0,1]")
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// CacheEnabled reports whether quotes are cached in Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != "" && c.QuoteCacheTTL > 0
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseInt(value string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return v
}

func parseFloat(value string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseBoolDefault(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

// MustLoad behaves like Load but panics on error. Useful for command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
