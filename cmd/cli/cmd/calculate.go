// Package cmd - calculate command
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"telephone-bill/core/billing"
	"telephone-bill/core/output"
	"telephone-bill/internal/config"
	"telephone-bill/internal/errors"
	"telephone-bill/internal/logging"
)

var (
	outputFormat string
	showDetails  bool
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate [file]",
	Short: "Calculate the amount due for a call log",
	Long: `Read a call log and print the amount due.

Each line holds a phone number, a start and an end timestamp:

  420774577453,13-01-2020 18:10:15,13-01-2020 18:12:57

The log is read from stdin when no file (or "-") is given.

Examples:
  telephone-bill calculate calls.csv
  telephone-bill calculate --details calls.csv
  telephone-bill calculate --format json - < calls.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	calculateCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "show per-call breakdown")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	cfg := config.Get()

	format := output.Format(cfg.Output.DefaultFormat)
	if cmd.Flags().Changed("format") {
		format = output.Format(outputFormat)
	}
	details := cfg.Output.ShowDetails
	if cmd.Flags().Changed("details") {
		details = showDetails
	}

	formatter, err := output.NewFormatter(format, output.Options{ShowDetails: details})
	if err != nil {
		return err
	}

	phoneLog, err := readLog(cmd, args)
	if err != nil {
		return err
	}

	calc := billing.NewCalculator(
		billing.WithLogger(logging.Logger),
		billing.WithCurrency(cfg.Currency),
	)
	bill, err := calc.Bill(phoneLog)
	if err != nil {
		logging.Error("calculation failed", zap.Error(err))
		return err
	}

	logging.Info("calculation finished",
		zap.String("bill_id", bill.ID),
		zap.Duration("duration", time.Since(startTime)),
	)

	return formatter.Render(cmd.OutOrStdout(), bill)
}

func readLog(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Input("cannot read call log from stdin", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Input(fmt.Sprintf("cannot read call log %s", args[0]), err)
	}
	return string(data), nil
}
