// Package app wires ingest, sanitization, aggregation and rendering into a
// single report run.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jask/txnreport/internal/config"
	"github.com/jask/txnreport/internal/logger"
	"github.com/jask/txnreport/internal/report"
	"github.com/jask/txnreport/internal/service"
)

// Options describes one report run.
type Options struct {
	// TransactionsPath is the statement CSV. Required.
	TransactionsPath string
	// ConfigPath is a YAML rules file. Empty uses the built-in rules.
	ConfigPath string
	Color      report.ColorMode
}

// Run produces the report for opts and writes it to out. Nothing is written
// unless the whole pipeline succeeds.
func Run(ctx context.Context, opts Options, out io.Writer) error {
	log := logger.WithFields(logger.FromContext(ctx), map[string]string{
		"run_id":       uuid.NewString(),
		"transactions": opts.TransactionsPath,
	})
	ctx = logger.WithContext(ctx, log)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	for _, w := range config.Lint(cfg) {
		log.Warn().Str("field", w.Field).Msg(w.Message)
	}
	rules, err := cfg.Compile()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	raw, err := service.ImportFile(ctx, opts.TransactionsPath)
	if err != nil {
		return err
	}

	txns := service.Sanitize(service.NewCategorizer(rules), raw)
	log.Debug().
		Int("parsed", len(raw)).
		Int("dropped", len(raw)-len(txns)).
		Msg("transactions sanitized")

	stats, categories, err := service.Summarize(txns)
	if err != nil {
		return err
	}
	log.Debug().
		Int("categories", categories.Len()).
		Float64("total", stats.TotalAmount).
		Msg("transactions summarized")

	return report.NewPrinter(out, opts.Color).Print(stats, categories)
}
