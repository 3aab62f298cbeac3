// Package cmd provides the CLI commands for telephone-bill.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"telephone-bill/internal/config"
	"telephone-bill/internal/logging"
)

// Version is the CLI version
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "telephone-bill",
	Short: "Price a telephone call log",
	Long: `telephone-bill computes the amount due for a log of telephone calls.

Calls between 08:00 and 16:00 are billed at the normal rate, all others at
the cheaper rate. The first five minutes of every call are billed at the
flat rate, the rest at a discounted rate. Calls to the most frequently
dialed number are free.

Examples:
  telephone-bill calculate calls.csv
  telephone-bill calculate --format json --details calls.csv
  cat calls.csv | telephone-bill calculate`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.json, .toml or .hcl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "telephone-bill version %s\n", Version)
	},
}
