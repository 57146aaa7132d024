package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// TaxQuotesTotal counts quote requests by category and outcome.
	TaxQuotesTotal *prometheus.CounterVec
	// TaxQuoteCacheTotal counts quote cache lookups by result (hit, miss, error).
	TaxQuoteCacheTotal *prometheus.CounterVec
	// TaxLiabilityRupees records the grand total tax per quote.
	TaxLiabilityRupees *prometheus.HistogramVec
)

// MustRegisterDomainMetrics initialises and registers tax quote collectors.
// Only the first call has any effect.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		TaxQuotesTotal = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_quotes_total",
			Help:      "Count of tax quote outcomes.",
		}, []string{"category", "result"}))
		TaxQuoteCacheTotal = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_quote_cache_total",
			Help:      "Count of tax quote cache lookups by result.",
		}, []string{"result"}))
		TaxLiabilityRupees = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tax_liability_rupees",
			Help:      "Distribution of quoted tax including cess, in rupees.",
			Buckets:   []float64{0, 25_000, 50_000, 100_000, 250_000, 500_000, 1_000_000, 2_500_000, 5_000_000},
		}, []string{"category"}))
	})
}

// RecordQuote increments the quote outcome counter when metrics are registered.
func RecordQuote(category, result string) {
	if TaxQuotesTotal != nil {
		TaxQuotesTotal.WithLabelValues(category, result).Inc()
	}
}

// RecordQuoteCache increments the cache lookup counter when metrics are registered.
func RecordQuoteCache(result string) {
	if TaxQuoteCacheTotal != nil {
		TaxQuoteCacheTotal.WithLabelValues(result).Inc()
	}
}

// ObserveLiability records a quoted grand total when metrics are registered.
func ObserveLiability(category string, rupees float64) {
	if TaxLiabilityRupees != nil {
		TaxLiabilityRupees.WithLabelValues(category).Observe(rupees)
	}
}
