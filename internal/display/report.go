package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/noah-isme/taxplanner/internal/tax"
)

// WriteReport writes the tax summary and, when any slab applies, the detailed
// breakdown table.
func WriteReport(w io.Writer, res tax.Result, s tax.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := [][2]string{
		{"Annual Income", Rupees(res.Income)},
		{"Employment Category", res.Category.String()},
		{"Exemption Threshold", Rupees(res.Exemption)},
		{"Total Tax Payable", Rupees(s.GrandTotal)},
		{"Basic Tax Amount", Rupees(s.Tax)},
		{fmt.Sprintf("Health & Education Cess (%s)", Percent(tax.CessRate)), Rupees(s.Cess)},
		{"Net Disposable Income", Rupees(s.DisposableIncome)},
		{"Monthly Takeaway Income", Rupees(s.MonthlyTakeaway)},
		{"Effective Tax Rate", PercentValue(s.EffectiveRate)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	if len(res.Breakdown) > 0 {
		if _, err := fmt.Fprint(tw, "\nDetailed Tax Breakdown\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprint(tw, "Income Range\tRate\tTaxable Amount\tTax\n"); err != nil {
			return err
		}
		for _, entry := range res.Breakdown {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				RangeLabel(entry.Slab),
				Percent(entry.Slab.Rate),
				Rupees(entry.TaxableAmount),
				Rupees(entry.Tax),
			); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

// WriteSlabs writes the slab table followed by the exemption of each category.
func WriteSlabs(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprint(tw, "Income Range\tRate\n"); err != nil {
		return err
	}
	for _, s := range tax.Slabs() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", RangeLabel(s), Percent(s.Rate)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(tw, "\nCategory\tExemption\n"); err != nil {
		return err
	}
	for _, c := range tax.Categories() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", c, WholeRupees(tax.Exemption(c))); err != nil {
			return err
		}
	}
	return tw.Flush()
}
