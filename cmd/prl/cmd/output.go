package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/phone-resale/internal/api/client"
	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printPhoneTable(w io.Writer, phones []domain.Phone) error {
	tw := newTabWriter(w)
	tw.writef("ID\tMODEL\tBRAND\tBASE PRICE\tSTOCK\tCONDITION\tSPECS\n")
	for i := range phones {
		tw.writef("%d\t%s\t%s\t$%.2f\t%d\t%s\t%s\n",
			phones[i].ID,
			truncate(phones[i].Model, 30),
			phones[i].Brand,
			phones[i].BasePrice,
			phones[i].Stock,
			phones[i].Condition,
			truncate(phones[i].Specs, 30),
		)
	}
	return tw.finish()
}

func printPhoneDetail(w io.Writer, p *domain.Phone) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", p.ID)
	tw.writef("Model:\t%s\n", p.Model)
	tw.writef("Brand:\t%s\n", p.Brand)
	tw.writef("Base Price:\t$%.2f\n", p.BasePrice)
	tw.writef("Stock:\t%d\n", p.Stock)
	tw.writef("Condition:\t%s\n", p.Condition)
	tw.writef("Specs:\t%s\n", p.Specs)
	return tw.finish()
}

func printQuoteTable(w io.Writer, quotes []apiclient.ListingResult) error {
	tw := newTabWriter(w)
	tw.writef("PLATFORM\tPRICE\tLABEL\tLISTED\tRESULT\n")
	for i := range quotes {
		q := &quotes[i]
		tw.writef("%s\t%s\t%s\t%v\t%s\n",
			q.Platform,
			orDash(dollars(q.Price)),
			orDash(q.Label),
			q.Listed,
			q.Message,
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dollars(price string) string {
	if price == "" {
		return ""
	}
	return "$" + price
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
