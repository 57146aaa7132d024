package tax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/taxplanner/internal/tax"
)

func TestParseCategory(t *testing.T) {
	cases := map[string]tax.Category{
		"Salaried":   tax.Salaried,
		" salaried ": tax.Salaried,
		"Other":      tax.Other,
		"Others":     tax.Other,
		"OTHERS":     tax.Other,
	}
	for in, want := range cases {
		got, err := tax.ParseCategory(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := tax.ParseCategory("freelancer")
	require.ErrorIs(t, err, tax.ErrUnknownCategory)
}

func TestExemption(t *testing.T) {
	requireDecimal(t, "1275000", tax.Exemption(tax.Salaried))
	requireDecimal(t, "1200000", tax.Exemption(tax.Other))
}

func TestSlabTableShape(t *testing.T) {
	table := tax.Slabs()
	require.Len(t, table, 7)
	requireDecimal(t, "0", table[0].Lower)
	for i := 1; i < len(table); i++ {
		require.True(t, table[i-1].Upper.Equal(table[i].Lower), "gap before slab %d", i)
		require.False(t, table[i].Rate.LessThan(table[i-1].Rate), "rate decreases at slab %d", i)
	}
	require.True(t, table[6].Unbounded)
	_, ok := table[6].Width()
	require.False(t, ok)

	width, ok := table[1].Width()
	require.True(t, ok)
	requireDecimal(t, "400000", width)
}

func TestSlabsReturnsCopy(t *testing.T) {
	table := tax.Slabs()
	table[0].Rate = dec("0.99")
	requireDecimal(t, "0", tax.Slabs()[0].Rate)
}
