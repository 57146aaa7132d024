// Package display renders calculator output for people: rupee amounts with
// Indian digit grouping, percentage labels and slab range labels.
package display

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/taxplanner/internal/tax"
)

const (
	rupeeSign = "₹"
	infinity  = "∞"
)

var hundred = decimal.NewFromInt(100)

// Rupees formats d as ₹12,34,567.89, rounding half away from zero to paise.
func Rupees(d decimal.Decimal) string {
	return formatRupees(d, 2)
}

// WholeRupees formats d without a fractional part, e.g. ₹4,00,000.
func WholeRupees(d decimal.Decimal) string {
	return formatRupees(d, 0)
}

func formatRupees(d decimal.Decimal, places int32) string {
	rounded := d.Round(places)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	fixed := rounded.Abs().StringFixed(places)
	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	out := sign + rupeeSign + GroupIndian(intPart)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// GroupIndian inserts separators into a run of digits using the lakh/crore
// convention: the last three digits form one group, the rest are paired.
func GroupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// Percent renders a rate fraction as a percentage label: 0.05 -> "5%".
func Percent(rate decimal.Decimal) string {
	return rate.Mul(hundred).String() + "%"
}

// PercentValue renders an already scaled percentage with two decimals.
func PercentValue(v decimal.Decimal) string {
	return v.StringFixed(2) + "%"
}

// RangeLabel describes the income range covered by a slab.
func RangeLabel(s tax.Slab) string {
	upper := infinity
	if !s.Unbounded {
		upper = WholeRupees(s.Upper)
	}
	return WholeRupees(s.Lower) + " - " + upper
}
