package obs

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestDomainMetricsRecorders(t *testing.T) {
	MustRegisterDomainMetrics("taxplanner", prometheus.NewRegistry())

	before := testutil.ToFloat64(TaxQuotesTotal.WithLabelValues("Salaried", "ok"))
	RecordQuote("Salaried", "ok")
	require.Equal(t, before+1, testutil.ToFloat64(TaxQuotesTotal.WithLabelValues("Salaried", "ok")))

	beforeHits := testutil.ToFloat64(TaxQuoteCacheTotal.WithLabelValues("hit"))
	RecordQuoteCache("hit")
	require.Equal(t, beforeHits+1, testutil.ToFloat64(TaxQuoteCacheTotal.WithLabelValues("hit")))

	ObserveLiability("Salaried", 20_800)
	require.NotZero(t, testutil.CollectAndCount(TaxLiabilityRupees))
}
