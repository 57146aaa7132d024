package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/noah-isme/taxplanner/internal/config"
	"github.com/noah-isme/taxplanner/internal/obs"
	"github.com/noah-isme/taxplanner/internal/quote"
	"github.com/noah-isme/taxplanner/internal/ratelimit"
	"github.com/noah-isme/taxplanner/internal/security"
)

// NewRouter builds the chi router serving health, metrics and the quote API.
func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	quotes := deps.Quotes
	if quotes == nil {
		quotes = quote.NewService(nil)
	}
	limiter := deps.Limiter
	if limiter == nil {
		limiter = NewLimiter(deps.Redis)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if deps.Tracing {
		r.Use(obs.TracingMiddleware)
	}
	if deps.HTTPMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: deps.HTTPMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: deps.Logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:         300,
	}))
	r.Use(security.Headers{
		Enable:                cfg.SecurityHeaders,
		EnableHSTS:            cfg.HSTSEnabled,
		HSTSMaxAge:            cfg.HSTSMaxAge,
		HSTSIncludeSubdomains: cfg.HSTSIncludeSubdomains,
	}.Middleware)

	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	healthHandler := deps.healthHandler()
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	quoteHandler := &quote.Handler{Svc: quotes}
	limits := ratelimit.Handler{
		Limiter: limiter,
		Config: ratelimit.Config{
			Key:    ratelimit.ByClientIP,
			Window: cfg.RateLimitWindow,
			Max:    cfg.RateLimitMax,
		},
		OnError: func(err error) {
			deps.Logger.Warn().Err(err).Msg("rate limiter unavailable")
		},
	}

	r.Route("/api/v1/tax", func(v chi.Router) {
		v.Use(limits.Middleware)
		v.Use(security.BodyLimit{Max: cfg.BodyLimitBytes}.Middleware)
		v.Get("/slabs", quoteHandler.Slabs)
		v.Get("/quote", quoteHandler.Get)
		v.Post("/quote", quoteHandler.Create)
	})

	return r
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}
