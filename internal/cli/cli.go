package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/sweissman/mat-results/internal/config"
	"github.com/sweissman/mat-results/internal/pipeline"
	"github.com/sweissman/mat-results/internal/scraper"
	"github.com/sweissman/mat-results/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDataDir string
	flagFormat  string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command over the resolved configuration.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mat-results",
		Short: "Scrape athlete profile pages and update the result collection",
		Long: `Fetches the three athlete profile pages (flow, wrestlingtournaments,
track), extracts competition results, normalizes dates, merges them with
the persisted collection, and rewrites data/tournaments.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(cfg)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (overrides DATA_DIR)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Run the pipeline but print the merged list instead of writing")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")

	cmd.AddCommand(newStatusCmd(cfg))

	return cmd
}

// runScrape is the main command logic.
func runScrape(cfg *config.Config) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	store, err := storage.New(dataDir(cfg))
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	fetcher := scraper.NewFetcher(time.Duration(cfg.TimeoutSeconds) * time.Second)

	var opts []pipeline.Option
	if flagDryRun {
		opts = append(opts, pipeline.WithDryRun())
	}

	p := pipeline.New(store, fetcher, cfg.FlowURL, cfg.WrestlingURL, cfg.TrackURL, opts...)

	report, err := p.Run(context.Background())
	if err != nil {
		return err
	}

	if err := WriteReport(os.Stdout, report, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// newStatusCmd reports on the persisted data consumed by the static page.
func newStatusCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the athlete profile and persisted result count",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.New(dataDir(cfg))
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}

			profile, err := store.LoadProfile()
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}

			records, err := store.LoadResults()
			if err != nil {
				return fmt.Errorf("loading results: %w", err)
			}

			return WriteStatus(os.Stdout, profile, records, store.ResultsPath())
		},
	}
}

// dataDir resolves the data directory, letting the flag override config.
func dataDir(cfg *config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return cfg.DataDir
}

// Execute runs the CLI.
func Execute(cfg *config.Config) {
	if err := NewRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
