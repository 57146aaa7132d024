package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Slab is a contiguous income range taxed at a single rate. Lower is
// inclusive, Upper exclusive. The last slab of the table is Unbounded and its
// Upper is meaningless.
type Slab struct {
	Lower     decimal.Decimal
	Upper     decimal.Decimal
	Unbounded bool
	Rate      decimal.Decimal
}

// Width returns the capacity of the slab. ok is false for the unbounded slab.
func (s Slab) Width() (width decimal.Decimal, ok bool) {
	if s.Unbounded {
		return decimal.Zero, false
	}
	return s.Upper.Sub(s.Lower), true
}

var slabs = mustTable([]Slab{
	bounded(0, 400_000, "0"),
	bounded(400_000, 800_000, "0.05"),
	bounded(800_000, 1_200_000, "0.10"),
	bounded(1_200_000, 1_600_000, "0.15"),
	bounded(1_600_000, 2_000_000, "0.20"),
	bounded(2_000_000, 2_400_000, "0.25"),
	{Lower: decimal.NewFromInt(2_400_000), Unbounded: true, Rate: decimal.RequireFromString("0.30")},
})

// Slabs returns a copy of the slab table in ascending order.
func Slabs() []Slab {
	out := make([]Slab, len(slabs))
	copy(out, slabs)
	return out
}

func bounded(lower, upper int64, rate string) Slab {
	return Slab{
		Lower: decimal.NewFromInt(lower),
		Upper: decimal.NewFromInt(upper),
		Rate:  decimal.RequireFromString(rate),
	}
}

func mustTable(table []Slab) []Slab {
	if err := validateTable(table); err != nil {
		panic(err)
	}
	return table
}

func validateTable(table []Slab) error {
	if len(table) == 0 {
		return fmt.Errorf("slab table is empty")
	}
	if !table[0].Lower.IsZero() {
		return fmt.Errorf("first slab must start at 0, got %s", table[0].Lower)
	}
	one := decimal.NewFromInt(1)
	for i, s := range table {
		last := i == len(table)-1
		if s.Unbounded != last {
			return fmt.Errorf("slab %d: only the last slab may be unbounded", i)
		}
		if !last && !s.Upper.GreaterThan(s.Lower) {
			return fmt.Errorf("slab %d: upper bound %s must exceed lower bound %s", i, s.Upper, s.Lower)
		}
		if s.Rate.IsNegative() || s.Rate.GreaterThanOrEqual(one) {
			return fmt.Errorf("slab %d: rate %s outside [0,1)", i, s.Rate)
		}
		if i == 0 {
			continue
		}
		prev := table[i-1]
		if !prev.Upper.Equal(s.Lower) {
			return fmt.Errorf("slab %d: lower bound %s does not continue %s", i, s.Lower, prev.Upper)
		}
		if s.Rate.LessThan(prev.Rate) {
			return fmt.Errorf("slab %d: rate %s decreases from %s", i, s.Rate, prev.Rate)
		}
	}
	return nil
}
