package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/phone-resale/internal/api/client"
)

func phonesCmd() *cobra.Command {
	phonesRoot := &cobra.Command{
		Use:   "phones",
		Short: "Manage the phone inventory",
	}

	phonesRoot.AddCommand(
		phonesListCmd(),
		phonesGetCmd(),
		phonesAddCmd(),
		phonesDeleteCmd(),
	)

	return phonesRoot
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid phone id %q", arg)
	}
	return id, nil
}

func phonesListCmd() *cobra.Command {
	params := &apiclient.ListPhonesParams{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List phones",
		Example: `  prl phones list
  prl phones list --search apple --condition New
  prl phones list --platform Y --output json
  prl phones list --limit 20 --offset 40`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListPhones(cmd.Context(), params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.Phones) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No phones found.")
				return nil
			}
			if err := printPhoneTable(cmd.OutOrStdout(), resp.Phones); err != nil {
				return err
			}
			if len(resp.Phones) < resp.Total {
				fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d phones.\n", len(resp.Phones), resp.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Query, "search", "", "match model or brand")
	cmd.Flags().StringVar(&params.Condition, "condition", "", "filter by condition (New, Good, Scrap)")
	cmd.Flags().StringVar(&params.Platform, "platform", "", "only phones the platform supports (X, Y, Z)")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size, max 500 (0 for the server default)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of matches to skip")

	return cmd
}

func phonesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show phone details",
		Example: `  prl phones get 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := newClient().GetPhone(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printPhoneDetail(cmd.OutOrStdout(), p)
		},
	}
}

func phonesAddCmd() *cobra.Command {
	p := &apiclient.NewPhone{}

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a phone",
		Example: `  prl phones add --model "iPhone 12" --brand Apple --price 499.99 --stock 3 --condition New`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := newClient().CreatePhone(cmd.Context(), p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Phone added with id %d.\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Model, "model", "", "model name (required)")
	cmd.Flags().StringVar(&p.Brand, "brand", "", "brand (required)")
	cmd.Flags().Float64Var(&p.BasePrice, "price", 0, "base price (required)")
	cmd.Flags().IntVar(&p.Stock, "stock", 0, "units in stock")
	cmd.Flags().StringVar(&p.Condition, "condition", "New", "condition (New, Good, Scrap)")
	cmd.Flags().StringVar(&p.Specs, "specs", "", "free-text specifications")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("brand")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func phonesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a phone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := newClient().DeletePhone(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Phone deleted.")
			return nil
		},
	}
}
