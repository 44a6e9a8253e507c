// Package cmd implements the CLI commands for phone-resale.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "phone-resale",
	Short: "Refurbished phone inventory and resale listing service",
	Long: "Keeps an inventory of refurbished phones and decides whether each can be " +
		"listed on resale platforms X, Y and Z, and at what price.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (defaults apply when empty)")

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(quoteCommand())
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}
