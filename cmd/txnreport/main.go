package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jask/txnreport/internal/app"
	"github.com/jask/txnreport/internal/config"
	"github.com/jask/txnreport/internal/logger"
	"github.com/jask/txnreport/internal/report"
)

func main() {
	// .env is optional; real environment variables still win.
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txnreport [flags] <transactions.csv> [config.yaml]",
		Short: "Summarize a credit card statement by category",
		Long: `txnreport reads a credit card statement CSV, drops payments, assigns each
transaction a category and prints an overall summary followed by one
summary per category.

Categories come from config.yaml when given, otherwise from built-in rules.
Settings can also be supplied as TXNREPORT_LOG_LEVEL, TXNREPORT_LOG_FORMAT
and TXNREPORT_REPORT_COLOR.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				return usageError(stderr, cmd, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(cmd.Flags())
			if err != nil {
				fmt.Fprintln(stderr, "txnreport:", err)
				return err
			}
			log := logger.New(stderr, settings.Log.Level, settings.Log.Format)

			color, err := report.ParseColorMode(settings.Report.Color)
			if err != nil {
				log.Error().Err(err).Msg("invalid color mode")
				return err
			}

			opts := app.Options{TransactionsPath: args[0], Color: color}
			if len(args) > 1 {
				opts.ConfigPath = args[1]
			}

			ctx := logger.WithContext(cmd.Context(), log)
			if err := app.Run(ctx, opts, stdout); err != nil {
				log.Error().Err(err).Msg("report failed")
				return err
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(stderr, cmd, err)
	})

	f := cmd.Flags()
	f.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	f.String("log-format", "console", "log format (console or json)")
	f.String("color", "auto", "colour the report headers (auto, always or never)")
	return cmd
}

// usageError reports a command-line mistake along with the usage text.
func usageError(w io.Writer, cmd *cobra.Command, err error) error {
	fmt.Fprintf(w, "txnreport: %v\n\n%s", err, cmd.UsageString())
	return err
}
