package tax

import "github.com/shopspring/decimal"

// CessRate is the health and education cess levied on computed tax.
var CessRate = decimal.RequireFromString("0.04")

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// Summary holds the figures derived from a calculation's total tax.
type Summary struct {
	Tax              decimal.Decimal
	Cess             decimal.Decimal
	GrandTotal       decimal.Decimal
	DisposableIncome decimal.Decimal
	MonthlyTakeaway  decimal.Decimal
	// EffectiveRate is a percentage, e.g. 1.0024 for 1.0024%.
	EffectiveRate decimal.Decimal
}

// Summarize derives cess, grand total, disposable income, monthly takeaway and
// effective rate from income and the tax computed for it. Monthly takeaway and
// effective rate are zero when income is zero.
func Summarize(income, totalTax decimal.Decimal) Summary {
	cess := totalTax.Mul(CessRate)
	grand := totalTax.Add(cess)
	disposable := income.Sub(grand)
	s := Summary{
		Tax:              totalTax,
		Cess:             cess,
		GrandTotal:       grand,
		DisposableIncome: disposable,
		MonthlyTakeaway:  decimal.Zero,
		EffectiveRate:    decimal.Zero,
	}
	if income.IsZero() {
		return s
	}
	s.MonthlyTakeaway = disposable.Div(monthsPerYear)
	s.EffectiveRate = grand.Div(income).Mul(hundred)
	return s
}

// Summary derives the downstream figures for r.
func (r Result) Summary() Summary {
	return Summarize(r.Income, r.TotalTax)
}
