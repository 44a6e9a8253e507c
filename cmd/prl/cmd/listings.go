package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <id>",
		Short: "Show prices, labels and listing results on every platform",
		Example: `  prl quote 3
  prl quote 3 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := newClient().Quote(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, stock %d)\n\n",
				resp.Phone.Brand, resp.Phone.Model, resp.Phone.Condition, resp.Phone.Stock)
			return printQuoteTable(cmd.OutOrStdout(), resp.Quotes)
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <id> <platform>",
		Short: "List a phone on a platform",
		Long: "Attempts to list a phone on platform X, Y or Z. A rejected listing\n" +
			"prints the reason and exits non-zero.",
		Example: `  prl list 3 X`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := newClient().ListPhone(cmd.Context(), id, strings.ToUpper(args[1]))
			if err != nil {
				return err
			}
			if jsonOutput() {
				if err := outputJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			}
			if !res.Listed {
				return fmt.Errorf("not listed: %s", res.Reason)
			}
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk import phones from a CSV file",
		Long: "Uploads a CSV with a header row of model, brand, base_price, stock,\n" +
			"condition and an optional specs column. A file with any invalid row\n" +
			"imports nothing.",
		Example: `  prl import phones.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			n, err := newClient().Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]int{"imported": n})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d phones.\n", n)
			return nil
		},
	}
}
