// Command taxquote prints a tax quote for an annual income from the terminal.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/noah-isme/taxplanner/internal/display"
	"github.com/noah-isme/taxplanner/internal/quote"
	"github.com/noah-isme/taxplanner/internal/tax"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type quoteOptions struct {
	income   string
	category string
	asJSON   bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := quoteOptions{}
	cmd := &cobra.Command{
		Use:          "taxquote",
		Short:        "Compute income tax liability under the slab regime",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd.Context(), out, opts)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	flags := cmd.Flags()
	flags.StringVarP(&opts.income, "income", "i", "", "annual income in rupees, e.g. 2075000, 20,75,000 or 2.075e6")
	flags.StringVarP(&opts.category, "category", "c", string(tax.Salaried), "employment category: Salaried or Others")
	flags.BoolVar(&opts.asJSON, "json", false, "print the quote as JSON")
	_ = cmd.MarkFlagRequired("income")

	cmd.AddCommand(newSlabsCmd(out))
	return cmd
}

func newSlabsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "slabs",
		Short: "Print the slab table and category exemptions",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return display.WriteSlabs(out)
		},
	}
}

func runQuote(ctx context.Context, out io.Writer, opts quoteOptions) error {
	if opts.asJSON {
		q, err := quote.NewService(nil).Quote(ctx, quote.Request{Income: opts.income, Category: opts.category})
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	}

	income, err := tax.ParseIncome(opts.income)
	if err != nil {
		return err
	}
	category, err := tax.ParseCategory(opts.category)
	if err != nil {
		return err
	}
	res, err := tax.Calculate(income, category)
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}
	return display.WriteReport(out, res, res.Summary())
}
