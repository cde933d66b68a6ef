package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/odds-converter/internal/config"
	"github.com/cypherlabdev/odds-converter/internal/handler/cli"
	"github.com/cypherlabdev/odds-converter/internal/metrics"
	"github.com/cypherlabdev/odds-converter/internal/service"
	"github.com/cypherlabdev/odds-converter/pkg/oddsconv"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "oddsconv:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	// Missing .env is fine
	_ = godotenv.Load()

	fs := flag.NewFlagSet("oddsconv", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config file (optional)")
	format := fs.String("format", "", "output format: table|json|plain (overrides config)")
	lookup := fs.String("lookup", "", "lookup tables: none|basic|extended (overrides config)")
	fraction := fs.String("fraction", "", "fraction strategy: simplify|plain (overrides config)")
	rounding := fs.String("rounding", "", "rounding strategy, e.g. midpoint_nearest_even (overrides config)")
	verbose := fs.Bool("verbose", false, "set log level to debug")
	dumpMetrics := fs.Bool("metrics", false, "print conversion metrics to stderr on exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: oddsconv [flags] [odds...]")
		fmt.Fprintln(fs.Output(), "       oddsconv [flags] distance <yards...>")
		fmt.Fprintln(fs.Output(), "odds are read from stdin, one per line, when none are given;")
		fmt.Fprintln(fs.Output(), "use -- before a negative American price")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, *format, *lookup, *fraction, *rounding)
	if *verbose {
		cfg.Logging.Level = "debug"
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)

	conversion, err := cfg.Conversion.ToConversionConfig()
	if err != nil {
		return err
	}
	logger.Debug().
		Str("lookup", conversion.LookupVariant.String()).
		Str("fraction_strategy", conversion.FractionStrategy.String()).
		Str("rounding", conversion.RoundingStrategy.String()).
		Str("format", cfg.Output.Format).
		Msg("conversion configured")

	registry := prometheus.NewRegistry()
	converterService := service.NewConverterService(
		oddsconv.NewConverter(conversion),
		metrics.New(registry),
		logger,
	)

	handler, err := cli.NewQuoteHandler(converterService, cfg.Output.Format, stdout, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	inputs := fs.Args()
	if len(inputs) > 0 && inputs[0] == "distance" {
		return handler.HandleDistance(inputs[1:])
	}

	if len(inputs) == 0 {
		inputs, err = readInputs(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	err = handler.Handle(ctx, inputs)

	if *dumpMetrics {
		if dumpErr := writeMetrics(os.Stderr, registry); dumpErr != nil {
			logger.Error().Err(dumpErr).Msg("failed to write metrics")
		}
	}

	return err
}

// applyFlags overrides config values with non-empty flag values
func applyFlags(cfg *config.Config, format, lookup, fraction, rounding string) {
	if format != "" {
		cfg.Output.Format = format
	}
	if lookup != "" {
		cfg.Conversion.Lookup = lookup
	}
	if fraction != "" {
		cfg.Conversion.FractionStrategy = fraction
	}
	if rounding != "" {
		cfg.Conversion.Rounding = rounding
	}
}

// readInputs returns the non-blank lines of r
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	return inputs, scanner.Err()
}

// writeMetrics writes every gathered metric family in the text exposition format
func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Logs go to stderr; stdout carries the quotes
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.Format == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Logger = logger

	return logger.With().Str("service", "odds-converter").Logger()
}
