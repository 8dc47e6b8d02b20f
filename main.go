package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cryptorates/internal/config"
	"cryptorates/internal/coordinator"
	"cryptorates/internal/fetcher"
	"cryptorates/internal/report"
	"cryptorates/internal/sink"
	"cryptorates/internal/telemetry"
)

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:          "cryptorates",
		Short:        "Scrapes altcoin INR rates and exports them to the console, CSV and XLSX.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			run(cmd.Context(), cfg, stdout, stderr)
			return nil
		},
	}

	d := config.Default()
	flags := cmd.Flags()
	flags.String("url", d.URL, "page to scrape")
	flags.String("table-id", d.TableID, "id of the table holding the rates")
	flags.String("csv-path", d.CSVPath, "CSV output file")
	flags.String("xlsx-path", d.XLSXPath, "XLSX output file")
	flags.String("sheet-name", d.SheetName, "XLSX sheet name")
	flags.String("validation", d.Validation, "row width policy: passthrough, strict or pad")
	flags.String("log-level", d.LogLevel, "debug, info, warn or error")
	flags.String("trace-endpoint", d.TraceEndpoint, "OTLP/HTTP endpoint for traces, empty disables tracing")

	cobra.CheckErr(bindFlags(v, cmd))
	return cmd
}

// bindFlags maps dashed flag names onto the underscored config keys
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, flag := range map[string]string{
		"url":        "url",
		"table_id":   "table-id",
		"csv_path":   "csv-path",
		"xlsx_path":  "xlsx-path",
		"sheet_name": "sheet-name",
		"validation": "validation",
		"log_level":  "log-level",

		"trace_endpoint": "trace-endpoint",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// run performs a single scrape and export. It never fails: every problem is
// logged and degrades to "no data".
func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) {
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	reporter := report.NewSlog(logger)

	tel, err := telemetry.Setup(ctx, cfg.TraceEndpoint)
	if err != nil {
		reporter.Error(ctx, "tracing disabled", "endpoint", cfg.TraceEndpoint, "err", err)
	}
	defer func() {
		if err := tel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			reporter.Error(ctx, "failed to flush traces", "err", err)
		}
	}()

	f := fetcher.NewHTTPFetcher(nil)
	defer f.Close()

	coord := coordinator.New(cfg, f, reporter,
		sink.NewConsole(stdout, reporter),
		sink.NewCSV(cfg.CSVPath, reporter),
		sink.NewXLSX(cfg.XLSXPath, cfg.SheetName, reporter),
	)

	records := coord.Run(ctx)
	slog.Debug("run complete", "records", len(records))
}
