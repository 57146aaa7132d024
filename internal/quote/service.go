// Package quote serves tax quotes: it validates user input, runs the
// calculator, derives the summary figures and caches the result.
package quote

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/taxplanner/internal/cache"
	"github.com/noah-isme/taxplanner/internal/obs"
	"github.com/noah-isme/taxplanner/internal/tax"
)

// ValidationError lists request fields that failed validation, keyed by the
// JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, rule := range e.Fields {
		parts = append(parts, field+" "+rule)
	}
	return "quote: invalid request: " + strings.Join(parts, ", ")
}

// Service produces quotes. The zero value is not usable; call NewService.
type Service struct {
	cache    *cache.JSON
	validate *validator.Validate
	tracer   trace.Tracer
}

// NewService constructs a quote service. c may be nil to disable caching.
func NewService(c *cache.JSON) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Service{
		cache:    c,
		validate: v,
		tracer:   otel.Tracer("github.com/noah-isme/taxplanner/internal/quote"),
	}
}

// Quote validates req, then returns the cached or freshly computed quote.
// Cache failures are logged and never fail the quote.
func (s *Service) Quote(ctx context.Context, req Request) (Quote, error) {
	ctx, span := s.tracer.Start(ctx, "tax.quote")
	defer span.End()

	income, category, err := s.parse(req)
	if err != nil {
		obs.RecordQuote(categoryLabel(req.Category), "invalid")
		span.SetStatus(codes.Error, "invalid request")
		return Quote{}, err
	}
	span.SetAttributes(attribute.String("tax.category", category.String()))

	logger := zerolog.Ctx(ctx)
	key := cache.Key("quote", category, income.String())

	var q Quote
	hit, err := s.cache.Get(ctx, key, &q)
	switch {
	case err != nil:
		obs.RecordQuoteCache("error")
		logger.Warn().Err(err).Str("key", key).Msg("quote cache lookup failed")
	case hit:
		obs.RecordQuoteCache("hit")
		obs.RecordQuote(category.String(), "ok")
		span.SetAttributes(attribute.Bool("tax.cache_hit", true))
		return q, nil
	case s.cache.Enabled():
		obs.RecordQuoteCache("miss")
	}

	res, err := tax.Calculate(income, category)
	if err != nil {
		obs.RecordQuote(category.String(), "invalid")
		span.SetStatus(codes.Error, err.Error())
		return Quote{}, err
	}
	q = newQuote(res)

	if err := s.cache.Set(ctx, key, q); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("quote cache store failed")
	}

	grand, _ := res.Summary().GrandTotal.Float64()
	obs.ObserveLiability(category.String(), grand)
	obs.RecordQuote(category.String(), "ok")
	span.SetAttributes(attribute.Bool("tax.cache_hit", false))
	return q, nil
}

// Slabs returns the published slab table, exemptions and cess rate.
func (s *Service) Slabs() SlabTable {
	return newSlabTable()
}

func (s *Service) parse(req Request) (income decimal.Decimal, category tax.Category, err error) {
	req.Income = strings.TrimSpace(req.Income)
	req.Category = strings.TrimSpace(req.Category)
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return decimal.Zero, "", &ValidationError{Fields: fields}
		}
		return decimal.Zero, "", fmt.Errorf("validate quote request: %w", err)
	}
	income, err = tax.ParseIncome(req.Income)
	if err != nil {
		return decimal.Zero, "", err
	}
	category, err = tax.ParseCategory(req.Category)
	if err != nil {
		return decimal.Zero, "", err
	}
	return income, category, nil
}

func categoryLabel(raw string) string {
	if c, err := tax.ParseCategory(raw); err == nil {
		return c.String()
	}
	return "unknown"
}
