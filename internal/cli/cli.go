package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pfrederiksen/au-courses/internal/config"
	"github.com/pfrederiksen/au-courses/internal/logger"
	"github.com/pfrederiksen/au-courses/internal/metrics"
	"github.com/pfrederiksen/au-courses/internal/orchestrator"
	"github.com/pfrederiksen/au-courses/internal/scraper"
	"github.com/pfrederiksen/au-courses/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitPartial = 2
)

// codedError carries a non-default exit code out of a command
type codedError struct {
	Code int
	Err  error
}

func (e *codedError) Error() string {
	return e.Err.Error()
}

func (e *codedError) Unwrap() error {
	return e.Err
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "au-courses [flags] <output-path>...",
		Short: "Scrape the course calendar into a JSON document",
		Long: `A CLI tool to scrape the course calendar of every campus and term.
Lists the terms offered by each campus, extracts every course panel of every
term and writes the result as a single JSON document to the output path.
Trailing arguments are joined without a separator to form the path.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScrape,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (yaml, json or toml)")
	pf.String(config.KeyCalendarURL, scraper.CalendarURL, "Calendar endpoint")
	pf.StringSlice(config.KeyCampus, orchestrator.DefaultCampuses, "Campus codes to scrape (repeatable or comma separated)")
	pf.String(config.KeyUserAgent, scraper.UserAgent, "User-Agent header sent with every request")
	pf.Duration(config.KeyTimeout, scraper.Timeout, "Timeout for each request")
	pf.String(config.KeyCacheDir, "", "Cache responses on disk in this directory")
	pf.Bool(config.KeyAcceptErrorPages, false, "Parse pages returned with a non-2xx status instead of failing")
	pf.String(config.KeyLogLevel, "info", "Log level: debug, info, warn or error")
	pf.String(config.KeyLogFormat, "json", "Log format: json or console")

	f := cmd.Flags()
	f.Int(config.KeyConcurrency, orchestrator.DefaultConcurrency, "Maximum number of requests in flight")
	f.Bool(config.KeyPartial, false, "Keep going when a campus or term fails and report the failures")
	f.Bool(config.KeyPretty, false, "Indent the JSON output")
	f.String(config.KeyCSV, "", "Also write one CSV row per course to this path")
	f.String(config.KeyMetricsFile, "", "Write Prometheus metrics to this textfile")

	cmd.AddCommand(newTermsCmd())

	return cmd
}

// loadConfig reads the config for a command and installs the configured logger
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger.SetDefault(logger.NewWithFormat(level, logger.Format(cfg.Log.Format), cmd.ErrOrStderr()))

	return cfg, nil
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	outputPath := strings.Join(args, "")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sc := scraper.NewWithOptions(cfg.ScraperOptions())
	m := metrics.New()
	orch := orchestrator.New(sc, cfg.OrchestratorOptions(), m)

	result, runErr := orch.Run(cmd.Context())
	if runErr != nil && !errors.Is(runErr, orchestrator.ErrPartial) {
		logger.Error("Scrape failed", logger.Fields{"kind": errorKind(runErr)}, runErr)
		writeMetrics(cfg, m)
		return fmt.Errorf("scraping: %w", runErr)
	}

	// Write failures are reported but do not change the outcome of the run
	if err := storage.WriteResult(outputPath, result, cfg.Pretty); err != nil {
		logger.Error("Writing result failed", logger.Fields{"path": outputPath, "kind": errorKind(err)}, err)
	} else {
		logger.Info("Wrote result", logger.Fields{
			"path":     outputPath,
			"campuses": len(result.Campuses),
			"courses":  result.CourseCount(),
		})
	}

	if cfg.CSVPath != "" {
		if err := storage.WriteCSV(cfg.CSVPath, result); err != nil {
			logger.Error("Writing CSV failed", logger.Fields{"path": cfg.CSVPath, "kind": errorKind(err)}, err)
		} else {
			logger.Info("Wrote CSV", logger.Fields{"path": cfg.CSVPath})
		}
	}

	writeMetrics(cfg, m)

	if runErr != nil {
		for _, f := range result.Failures {
			logger.Warn("Scrape failure", logger.Fields{"campus": f.Campus, "term": f.Term, "error": f.Error})
		}
		return &codedError{Code: ExitPartial, Err: runErr}
	}

	return nil
}

// writeMetrics logs a metrics snapshot and writes the textfile when configured
func writeMetrics(cfg *config.Config, m *metrics.Metrics) {
	if snapshot, err := m.GetSnapshot(); err == nil {
		logger.Debug("Metrics", logger.Fields(snapshot))
	}

	if cfg.MetricsFile == "" {
		return
	}
	if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.Warn("Writing metrics failed", logger.Fields{"path": cfg.MetricsFile, "error": err.Error()})
	}
}

// errorKind names the failure category of an error for logs
func errorKind(err error) string {
	switch {
	case errors.Is(err, scraper.ErrUnreachable):
		return "unreachable"
	case errors.Is(err, scraper.ErrBadStatus):
		return "bad_status"
	case errors.Is(err, scraper.ErrPageShape):
		return "page_shape"
	case errors.Is(err, storage.ErrWrite):
		return "write"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "other"
	}
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		logger.Sync() // nolint:errcheck
		return
	}

	code := ExitError
	var coded *codedError
	if errors.As(err, &coded) {
		code = coded.Code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	logger.Sync() // nolint:errcheck
	stop()
	os.Exit(code)
}
