package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maskins/ticketwatch/internal/browser"
	"github.com/maskins/ticketwatch/internal/calendar"
	"github.com/maskins/ticketwatch/internal/config"
	"github.com/maskins/ticketwatch/internal/filter"
	"github.com/maskins/ticketwatch/internal/logging"
	"github.com/maskins/ticketwatch/internal/notifier"
	"github.com/maskins/ticketwatch/internal/performance"
	"github.com/maskins/ticketwatch/internal/scraper"
	"github.com/maskins/ticketwatch/internal/storage"
)

const (
	ExitSuccess       = 0
	ExitError         = 1
	ExitNewlyBookable = 2
)

var (
	flagConfig    string
	flagURL       string
	flagInput     string
	flagDataDir   string
	flagFormat    string
	flagFilter    string
	flagICSDir    string
	flagEventName string
	flagTimeout   time.Duration
	flagRefresh   bool
	flagDryRun    bool
	flagDebug     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticketwatch",
		Short: "Check a ticketing page for performance availability",
		Long: `A CLI tool that checks a ticketing page for performance availability.
Extracts the performance schedule, classifies each date's booking status,
tracks results across runs, and reports performances that became bookable
since the last check.`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagURL, "url", "", "Event page URL to check")
	cmd.Flags().StringVar(&flagInput, "input", "", "Read a saved HTML file instead of launching a browser")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory for snapshots")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagFilter, "filter", "", "Status filter, e.g. 'available,limited' or 'not:sold_out'")
	cmd.Flags().StringVar(&flagICSDir, "ics-dir", "", "Write an .ics calendar file per newly bookable performance")
	cmd.Flags().StringVar(&flagEventName, "event-name", "", "Event name used in calendar entries")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Page load timeout, e.g. 90s")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Refresh snapshot without reporting newly bookable performances")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of sending them")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable verbose logging")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine; variables may come from the real
	// environment.
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if flagURL != "" {
		cfg.EventURL = flagURL
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagFilter != "" {
		cfg.Filter = flagFilter
	}
	if flagTimeout > 0 {
		cfg.PageTimeout = flagTimeout
	}
	if flagDebug {
		cfg.Debug = true
	}
	if err := cfg.Finalize(); err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	statusFilter, err := filter.Parse(cfg.Filter)
	if err != nil {
		return fmt.Errorf("parsing filter: %w", err)
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	regions, err := loadRegions(cmd, cfg, log)
	if err != nil {
		return err
	}

	extractor := scraper.NewExtractor(scraper.Options{
		SiteOrigin:        cfg.SiteOrigin,
		RowSelectors:      cfg.RowSelectors,
		FallbackSelectors: cfg.FallbackSelectors,
	}, log)
	records := extractor.Extract(regions)
	performance.SortChronologically(records)
	log.Info("extraction complete", zap.Int("records", len(records)))

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	var previous *storage.Snapshot
	if !flagRefresh {
		previous, err = store.Load(cfg.EventURL)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
	}
	newlyBookable := storage.NewlyBookable(previous, records)

	if err := store.Save(storage.NewSnapshot(cfg.EventURL, records)); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	result := &OutputResult{
		RunID:         uuid.NewString(),
		CheckedAt:     time.Now().UTC(),
		EventURL:      cfg.EventURL,
		Records:       records,
		Available:     statusFilter.Apply(records),
		NewlyBookable: newlyBookable,
	}

	// In refresh mode the diff is not reported; the snapshot just gets
	// rebuilt from the current page.
	if flagRefresh {
		if format == FormatText {
			fmt.Println("Snapshot refreshed.")
		} else {
			result.NewlyBookable = nil
			if err := WriteOutput(os.Stdout, result, format); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		os.Exit(ExitSuccess)
		return nil
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if err := WriteStepSummary(result); err != nil {
		log.Warn("writing step summary failed", zap.Error(err))
	}

	if flagICSDir != "" {
		if err := writeCalendarFiles(flagICSDir, result); err != nil {
			log.Warn("writing calendar files failed", zap.Error(err))
		}
	}

	if len(newlyBookable) > 0 {
		if err := notify(cfg, newlyBookable); err != nil {
			log.Warn("notification failed", zap.Error(err))
		}
		os.Exit(ExitNewlyBookable)
	}

	os.Exit(ExitSuccess)
	return nil
}

// loadRegions captures the page regions to extract from: a saved HTML file
// when --input is given, otherwise a live browser fetch.
func loadRegions(cmd *cobra.Command, cfg config.Config, log *zap.Logger) ([]scraper.Region, error) {
	if flagInput != "" {
		f, err := os.Open(flagInput)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()

		region, err := scraper.NewDocumentRegion(f)
		if err != nil {
			return nil, fmt.Errorf("parsing input file: %w", err)
		}
		return []scraper.Region{region}, nil
	}

	regions, err := browser.FetchRegions(cmd.Context(), cfg.EventURL, browser.Options{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.PageTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	return regions, nil
}

// notify posts the newly bookable performances through the configured
// channel: stdout in dry-run mode, Slack when a webhook is set, otherwise
// nothing.
func notify(cfg config.Config, newlyBookable []performance.Record) error {
	var n notifier.Notifier
	switch {
	case flagDryRun:
		n = notifier.NewDryRunNotifier(cfg.EventURL, os.Stdout)
	case cfg.SlackWebhook != "":
		slack, err := notifier.NewSlackNotifier(cfg.SlackWebhook, cfg.EventURL)
		if err != nil {
			return err
		}
		n = slack
	default:
		return nil
	}
	return n.Notify(newlyBookable)
}

// writeCalendarFiles writes one .ics file per newly bookable performance.
func writeCalendarFiles(dir string, result *OutputResult) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating calendar directory: %w", err)
	}
	for i, rec := range result.NewlyBookable {
		ics := calendar.GenerateICS(rec, flagEventName, result.EventURL)
		name := fmt.Sprintf("performance_%02d.ics", i+1)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(ics), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
