// Package app assembles the HTTP surface of the tax quote service.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/taxplanner/internal/cache"
	"github.com/noah-isme/taxplanner/internal/config"
	"github.com/noah-isme/taxplanner/internal/health"
	"github.com/noah-isme/taxplanner/internal/obs"
	"github.com/noah-isme/taxplanner/internal/quote"
	"github.com/noah-isme/taxplanner/internal/ratelimit"
	"github.com/noah-isme/taxplanner/internal/resilience"
)

// Dependencies enumerates the collaborators the router is built from.
// Redis is optional; without it quotes are not cached and rate limits are
// tracked in process memory.
type Dependencies struct {
	Config      *config.Config
	Logger      zerolog.Logger
	Redis       *redis.Client
	Quotes      *quote.Service
	Limiter     ratelimit.Allower
	HTTPMetrics *obs.HTTPMetrics
	// MetricsHandler is mounted at /metrics when non-nil.
	MetricsHandler http.Handler
	Tracing        bool
}

// NewQuoteService builds the quote service with a breaker-guarded Redis cache.
func NewQuoteService(cfg *config.Config, rdb *redis.Client, logger zerolog.Logger) *quote.Service {
	if rdb == nil || !cfg.CacheEnabled() {
		return quote.NewService(nil)
	}
	breaker := resilience.NewBreaker(cfg.CacheBreakerMinRequests, cfg.CacheBreakerFailureRatio, cfg.CacheBreakerOpenFor).
		WithTarget("redis").
		WithLogger(logger)
	return quote.NewService(cache.New(rdb, cfg.QuoteCacheTTL, breaker))
}

// NewLimiter picks the Redis sliding window limiter when Redis is available
// so limits are shared between replicas.
func NewLimiter(rdb *redis.Client) ratelimit.Allower {
	if rdb == nil {
		return ratelimit.NewMemoryLimiter("taxplanner")
	}
	return ratelimit.RedisLimiter{Client: rdb, Prefix: "rl:"}
}

type redisChecker struct {
	client *redis.Client
}

func (c redisChecker) PingRedis(ctx context.Context, timeout time.Duration) error {
	if c.client == nil {
		return errors.New("redis not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

func (d Dependencies) healthHandler() health.Handler {
	h := health.Handler{}
	if d.Config != nil {
		h.RedisTimeout = d.Config.RedisPingTimeout
	}
	if d.Redis != nil {
		h.Checker = redisChecker{client: d.Redis}
	}
	return h
}
