package tax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/taxplanner/internal/tax"
)

func TestSummarizeTwoSlabCase(t *testing.T) {
	res := tax.Compute(dec("2075000"), tax.Salaried)
	s := res.Summary()
	requireDecimal(t, "20000", s.Tax)
	requireDecimal(t, "800", s.Cess)
	requireDecimal(t, "20800", s.GrandTotal)
	requireDecimal(t, "2054200", s.DisposableIncome)
	require.Equal(t, "171183.33", s.MonthlyTakeaway.StringFixed(2))
	require.Equal(t, "1.00", s.EffectiveRate.StringFixed(2))
}

func TestSummarizeZeroIncome(t *testing.T) {
	s := tax.Summarize(dec("0"), dec("0"))
	require.True(t, s.MonthlyTakeaway.IsZero())
	require.True(t, s.EffectiveRate.IsZero())
	require.True(t, s.DisposableIncome.IsZero())
}

func TestSummarizeExemptIncome(t *testing.T) {
	s := tax.Compute(dec("1200000"), tax.Salaried).Summary()
	require.True(t, s.GrandTotal.IsZero())
	requireDecimal(t, "1200000", s.DisposableIncome)
	requireDecimal(t, "100000", s.MonthlyTakeaway)
	require.True(t, s.EffectiveRate.IsZero())
}
