package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/taxplanner/internal/tax"
)

func TestRupees(t *testing.T) {
	cases := map[string]string{
		"0":           "₹0.00",
		"999":         "₹999.00",
		"1000":        "₹1,000.00",
		"100000":      "₹1,00,000.00",
		"1234567.891": "₹12,34,567.89",
		"12345678.5":  "₹1,23,45,678.50",
		"0.005":       "₹0.01",
		"-20800":      "-₹20,800.00",
	}
	for in, want := range cases {
		require.Equal(t, want, Rupees(decimal.RequireFromString(in)), in)
	}
}

func TestGroupIndian(t *testing.T) {
	require.Equal(t, "1", GroupIndian("1"))
	require.Equal(t, "12,345", GroupIndian("12345"))
	require.Equal(t, "1,23,456", GroupIndian("123456"))
	require.Equal(t, "12,34,56,789", GroupIndian("123456789"))
}

func TestPercent(t *testing.T) {
	require.Equal(t, "0%", Percent(decimal.Zero))
	require.Equal(t, "5%", Percent(decimal.RequireFromString("0.05")))
	require.Equal(t, "12.5%", Percent(decimal.RequireFromString("0.125")))
	require.Equal(t, "1.00%", PercentValue(decimal.RequireFromString("1.0024096")))
}

func TestRangeLabel(t *testing.T) {
	table := tax.Slabs()
	require.Equal(t, "₹0 - ₹4,00,000", RangeLabel(table[0]))
	require.Equal(t, "₹4,00,000 - ₹8,00,000", RangeLabel(table[1]))
	require.Equal(t, "₹24,00,000 - ∞", RangeLabel(table[6]))
}

func TestWriteReport(t *testing.T) {
	res := tax.Compute(decimal.NewFromInt(2_075_000), tax.Salaried)
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, res, res.Summary()))

	out := buf.String()
	require.Contains(t, out, "₹20,800.00")
	require.Contains(t, out, "Health & Education Cess (4%)")
	require.Contains(t, out, "₹20,54,200.00")
	require.Contains(t, out, "Detailed Tax Breakdown")
	require.Contains(t, out, "₹4,00,000 - ₹8,00,000")
	require.Contains(t, out, "1.00%")
}

func TestWriteReportExemptOmitsBreakdown(t *testing.T) {
	res := tax.Compute(decimal.NewFromInt(1_000_000), tax.Salaried)
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, res, res.Summary()))
	require.False(t, strings.Contains(buf.String(), "Detailed Tax Breakdown"))
}

func TestWriteSlabs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSlabs(&buf))
	out := buf.String()
	require.Contains(t, out, "₹0 - ₹4,00,000")
	require.Contains(t, out, "₹24,00,000 - ∞")
	require.Contains(t, out, "30%")
	require.Contains(t, out, "₹12,75,000")
	require.Contains(t, out, "Others")
}
