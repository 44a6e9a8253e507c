// Package cmd implements the prl CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/phone-resale/internal/api/client"
)

// Settings read through viper. Each can come from a flag, a PRL_* env var
// or ~/.prl.yaml, in that order of precedence.
const (
	keyServer  = "server"
	keyOutput  = "output"
	keyTimeout = "timeout"
)

var errBadOutput = errors.New(`--output must be "table" or "json"`)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "prl",
	Short: "CLI client for phone-resale",
	Long: "prl talks to a running phone-resale server. It manages the phone\n" +
		"inventory, bulk imports CSV files and quotes or lists phones on the\n" +
		"X, Y and Z platforms.",
	SilenceUsage: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		switch viper.GetString(keyOutput) {
		case "table", "json":
			return nil
		default:
			return errBadOutput
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.prl.yaml)")
	flags.String(keyServer, "http://localhost:8080", "phone-resale server URL")
	flags.String(keyOutput, "table", "output format (table, json)")
	flags.Duration(keyTimeout, 30*time.Second, "per-request timeout")

	for _, key := range []string{keyServer, keyOutput, keyTimeout} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}

	rootCmd.AddCommand(phonesCmd(), quoteCmd(), listCmd(), importCmd())
}

func initConfig() {
	viper.SetEnvPrefix("PRL")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".prl")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "prl: ignoring config:", err)
		}
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(
		viper.GetString(keyServer),
		apiclient.WithTimeout(viper.GetDuration(keyTimeout)),
	)
}

func jsonOutput() bool {
	return viper.GetString(keyOutput) == "json"
}
