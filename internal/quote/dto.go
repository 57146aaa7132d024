package quote

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/taxplanner/internal/display"
	"github.com/noah-isme/taxplanner/internal/tax"
)

// Request carries the two user inputs of a quote. Income is parsed by
// tax.ParseIncome; validation only bounds its length.
type Request struct {
	Income   string `json:"income" validate:"required,max=64"`
	Category string `json:"category" validate:"required,max=32"`
}

// SlabRow describes one slab of the table for clients.
type SlabRow struct {
	Lower      string  `json:"lower"`
	Upper      *string `json:"upper"`
	RangeLabel string  `json:"rangeLabel"`
	Rate       string  `json:"rate"`
	RateLabel  string  `json:"rateLabel"`
}

// BreakdownRow is the portion of taxable income that fell into one slab.
type BreakdownRow struct {
	SlabRow
	TaxableAmount string `json:"taxableAmount"`
	Tax           string `json:"tax"`
}

// Formatted holds display-ready renderings of the headline figures.
type Formatted struct {
	Income           string `json:"income"`
	Tax              string `json:"tax"`
	Cess             string `json:"cess"`
	GrandTotal       string `json:"grandTotal"`
	DisposableIncome string `json:"disposableIncome"`
	MonthlyTakeaway  string `json:"monthlyTakeaway"`
	EffectiveRate    string `json:"effectiveRate"`
}

// Quote is the API representation of a calculation and its derived figures.
// Amounts are decimal strings rounded to two places.
type Quote struct {
	Income           string         `json:"income"`
	Category         string         `json:"category"`
	Exemption        string         `json:"exemption"`
	TaxableIncome    string         `json:"taxableIncome"`
	Tax              string         `json:"tax"`
	Cess             string         `json:"cess"`
	GrandTotal       string         `json:"grandTotal"`
	DisposableIncome string         `json:"disposableIncome"`
	MonthlyTakeaway  string         `json:"monthlyTakeaway"`
	EffectiveRate    string         `json:"effectiveRate"`
	Breakdown        []BreakdownRow `json:"breakdown"`
	Formatted        Formatted      `json:"formatted"`
}

// ExemptionRow reports the exemption threshold of one category.
type ExemptionRow struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Label    string `json:"label"`
}

// SlabTable is the published tax regime: slabs, exemptions and cess.
type SlabTable struct {
	Slabs      []SlabRow      `json:"slabs"`
	Exemptions []ExemptionRow `json:"exemptions"`
	CessRate   string         `json:"cessRate"`
	CessLabel  string         `json:"cessLabel"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func newSlabRow(s tax.Slab) SlabRow {
	row := SlabRow{
		Lower:      s.Lower.String(),
		RangeLabel: display.RangeLabel(s),
		Rate:       s.Rate.String(),
		RateLabel:  display.Percent(s.Rate),
	}
	if !s.Unbounded {
		upper := s.Upper.String()
		row.Upper = &upper
	}
	return row
}

func newQuote(res tax.Result) Quote {
	sum := res.Summary()
	rows := make([]BreakdownRow, 0, len(res.Breakdown))
	for _, entry := range res.Breakdown {
		rows = append(rows, BreakdownRow{
			SlabRow:       newSlabRow(entry.Slab),
			TaxableAmount: money(entry.TaxableAmount),
			Tax:           money(entry.Tax),
		})
	}
	return Quote{
		Income:           money(res.Income),
		Category:         res.Category.String(),
		Exemption:        money(res.Exemption),
		TaxableIncome:    money(res.TaxableIncome),
		Tax:              money(sum.Tax),
		Cess:             money(sum.Cess),
		GrandTotal:       money(sum.GrandTotal),
		DisposableIncome: money(sum.DisposableIncome),
		MonthlyTakeaway:  money(sum.MonthlyTakeaway),
		EffectiveRate:    money(sum.EffectiveRate),
		Breakdown:        rows,
		Formatted: Formatted{
			Income:           display.Rupees(res.Income),
			Tax:              display.Rupees(sum.Tax),
			Cess:             display.Rupees(sum.Cess),
			GrandTotal:       display.Rupees(sum.GrandTotal),
			DisposableIncome: display.Rupees(sum.DisposableIncome),
			MonthlyTakeaway:  display.Rupees(sum.MonthlyTakeaway),
			EffectiveRate:    display.PercentValue(sum.EffectiveRate),
		},
	}
}

func newSlabTable() SlabTable {
	slabs := tax.Slabs()
	rows := make([]SlabRow, 0, len(slabs))
	for _, s := range slabs {
		rows = append(rows, newSlabRow(s))
	}
	categories := tax.Categories()
	exemptions := make([]ExemptionRow, 0, len(categories))
	for _, c := range categories {
		amount := tax.Exemption(c)
		exemptions = append(exemptions, ExemptionRow{
			Category: c.String(),
			Amount:   amount.String(),
			Label:    display.WholeRupees(amount),
		})
	}
	return SlabTable{
		Slabs:      rows,
		Exemptions: exemptions,
		CessRate:   tax.CessRate.String(),
		CessLabel:  display.Percent(tax.CessRate),
	}
}
