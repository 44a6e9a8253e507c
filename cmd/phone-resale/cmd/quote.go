package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/phone-resale/pkg/listing"
	"github.com/donaldgifford/phone-resale/pkg/pricing"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

type quoteOptions struct {
	price     float64
	condition string
	stock     int
	json      bool
}

func quoteCommand() *cobra.Command {
	opts := &quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Evaluate a phone on every platform without a server",
		Example: "  phone-resale quote --price 45.45 --condition Good\n" +
			"  phone-resale quote --price 100 --condition Scrap --stock 0 --json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Float64Var(&opts.price, "price", 0, "base price (required)")
	cmd.Flags().StringVar(&opts.condition, "condition", string(domain.ConditionNew), "condition: New, Good or Scrap")
	cmd.Flags().IntVar(&opts.stock, "stock", 1, "units in stock")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func runQuote(w io.Writer, opts *quoteOptions) error {
	cond, err := domain.ParseCondition(opts.condition)
	if err != nil {
		return err
	}

	p := &domain.Phone{
		Model:     "quote",
		Brand:     "quote",
		BasePrice: opts.price,
		Stock:     opts.stock,
		Condition: cond,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	outcomes := listing.EvaluateAll(p)

	if opts.json {
		return writeQuoteJSON(w, outcomes)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATFORM\tPRICE\tLABEL\tRESULT")
	for _, o := range outcomes {
		price := "-"
		if !o.Price.IsZero() {
			price = listing.FormatPrice(o.Price)
		}
		label := o.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Platform, price, label, o.Message())
	}
	return tw.Flush()
}

func writeQuoteJSON(w io.Writer, outcomes []listing.Outcome) error {
	type row struct {
		Platform domain.Platform `json:"platform"`
		Listed   bool            `json:"listed"`
		Price    string          `json:"price,omitempty"`
		Label    string          `json:"label,omitempty"`
		Reason   listing.Reason  `json:"reason,omitempty"`
	}

	rows := make([]row, 0, len(outcomes))
	for _, o := range outcomes {
		r := row{Platform: o.Platform, Listed: o.Listed, Label: o.Label, Reason: o.Reason}
		if !o.Price.IsZero() {
			r.Price = o.Price.StringFixed(pricing.Places)
		}
		rows = append(rows, r)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
