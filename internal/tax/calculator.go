package tax

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BreakdownEntry is the portion of taxable income that fell into one slab.
type BreakdownEntry struct {
	Slab          Slab
	TaxableAmount decimal.Decimal
	Tax           decimal.Decimal
}

// Result is the outcome of a single calculation. Breakdown is in slab order
// and is empty, never nil, when income does not exceed the exemption.
type Result struct {
	Income        decimal.Decimal
	Category      Category
	Exemption     decimal.Decimal
	TaxableIncome decimal.Decimal
	TotalTax      decimal.Decimal
	Breakdown     []BreakdownEntry
}

// Compute returns the tax owed on income for the given category.
//
// Compute does not validate its inputs; use Calculate at trust boundaries.
func Compute(income decimal.Decimal, category Category) Result {
	exemption := Exemption(category)
	res := Result{
		Income:        income,
		Category:      category,
		Exemption:     exemption,
		TaxableIncome: decimal.Zero,
		TotalTax:      decimal.Zero,
		Breakdown:     []BreakdownEntry{},
	}
	if income.LessThanOrEqual(exemption) {
		return res
	}

	taxable := income.Sub(exemption)
	remaining := taxable
	total := decimal.Zero
	for _, s := range slabs {
		if !remaining.IsPositive() {
			break
		}
		amount := remaining
		if width, ok := s.Width(); ok {
			amount = decimal.Min(remaining, width)
		}
		if !amount.IsPositive() {
			continue
		}
		slabTax := amount.Mul(s.Rate)
		total = total.Add(slabTax)
		res.Breakdown = append(res.Breakdown, BreakdownEntry{
			Slab:          s,
			TaxableAmount: amount,
			Tax:           slabTax,
		})
		remaining = remaining.Sub(amount)
	}

	res.TaxableIncome = taxable
	res.TotalTax = decimal.Min(total, taxable)
	return res
}

// MaxIncome is the largest income Calculate accepts.
var MaxIncome = decimal.New(1, 15)

const (
	// maxIncomeLen bounds the income text before it is parsed.
	maxIncomeLen = 40
	// Exponent window for parsed incomes. Comparisons rescale to a common
	// exponent, so it is checked before any arithmetic.
	minIncomeExp = -12
	maxIncomeExp = 15
)

// Calculate validates income and category before delegating to Compute.
// Negative income is rejected rather than clamped.
func Calculate(income decimal.Decimal, category Category) (Result, error) {
	if income.IsNegative() {
		return Result{}, fmt.Errorf("%w: %s", ErrNegativeIncome, income)
	}
	if err := checkRange(income); err != nil {
		return Result{}, err
	}
	if !category.Valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(category))
	}
	return Compute(income, category), nil
}

// ParseIncome parses an income such as "1275000", "20,75,000.50" or
// "2.075e6". Grouping commas are ignored. Text longer than 40 characters,
// more than 12 decimal places and values above MaxIncome are rejected with
// ErrIncomeOutOfRange; negative values parse and are left to Calculate.
func ParseIncome(value string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return decimal.Zero, ErrInvalidIncome
	}
	if len(cleaned) > maxIncomeLen {
		return decimal.Zero, fmt.Errorf("%w: %d characters", ErrIncomeOutOfRange, len(cleaned))
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidIncome, value)
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	if err := checkRange(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

func checkRange(income decimal.Decimal) error {
	if income.IsZero() {
		return nil
	}
	if exp := income.Exponent(); exp < minIncomeExp || exp > maxIncomeExp {
		return fmt.Errorf("%w: exponent %d", ErrIncomeOutOfRange, exp)
	}
	if income.GreaterThan(MaxIncome) {
		return fmt.Errorf("%w: %s exceeds %s", ErrIncomeOutOfRange, income, MaxIncome)
	}
	return nil
}
