// Package pipeline orchestrates one scraping run: load prior state, fetch
// the three source pages concurrently, extract and normalize records,
// merge against the persisted collection, and write it back.
//
// Per-source failures degrade the run (warn log, empty page) instead of
// aborting it; only storage failures are fatal, so a corrupt or unwritable
// state file never results in a partial overwrite.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sweissman/mat-results/internal/logger"
	"github.com/sweissman/mat-results/internal/result"
	"github.com/sweissman/mat-results/internal/scraper"
	"github.com/sweissman/mat-results/internal/storage"
)

// source pairs an extractor with the URL it scrapes.
type source struct {
	url       string
	extractor *scraper.Extractor
}

// Report summarizes one completed run.
type Report struct {
	CompletedAt time.Time      `json:"completed_at"`
	Duration    time.Duration  `json:"-"`
	DurationMS  int64          `json:"duration_ms"`
	Prior       int            `json:"prior_records"`
	Scraped     map[string]int `json:"scraped_by_source"`
	Written     int            `json:"records_written"`
	New         int            `json:"new_records"`
	Path        string         `json:"path"`
	DryRun      bool           `json:"dry_run,omitempty"`
	// Merged is the full collection; populated only for dry runs so the
	// caller can show what would have been written.
	Merged []result.Record `json:"-"`
}

// Pipeline runs the scrape/normalize/merge/persist sequence.
type Pipeline struct {
	store   *storage.Storage
	fetcher *scraper.Fetcher
	sources []source
	path    string
	dryRun  bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDryRun makes Run skip the final write and return the merged
// collection in the report instead.
func WithDryRun() Option {
	return func(p *Pipeline) { p.dryRun = true }
}

// New creates a Pipeline over the given storage, fetcher, and the three
// source profile URLs.
func New(store *storage.Storage, fetcher *scraper.Fetcher, flowURL, wrestlingURL, trackURL string, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:   store,
		fetcher: fetcher,
		sources: []source{
			{url: flowURL, extractor: scraper.Flow(flowURL)},
			{url: wrestlingURL, extractor: scraper.Wrestling(wrestlingURL)},
			{url: trackURL, extractor: scraper.Track(trackURL)},
		},
		path: store.ResultsPath(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one full pipeline pass. Only storage errors are returned;
// everything else degrades with a warning.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	started := time.Now()

	existing, err := p.store.LoadResults()
	if err != nil {
		return nil, fmt.Errorf("loading prior results: %w", err)
	}

	logger.Info("Starting scrape run", logger.Fields{
		"prior_records": len(existing),
		"sources":       len(p.sources),
	})

	pages := p.fetchAll(ctx)

	scraped := make([]result.Record, 0)
	bySource := make(map[string]int, len(p.sources))
	for i, src := range p.sources {
		records := src.extractor.Extract(pages[i])
		for j := range records {
			records[j].Date = result.NormalizeDate(records[j].Date)
		}
		bySource[src.extractor.Source] = len(records)
		logger.SetGauge("records.scraped."+src.extractor.Source, float64(len(records)))
		logger.Debug("Extracted records", logger.Fields{
			"source": src.extractor.Source,
			"count":  len(records),
		})
		scraped = append(scraped, records...)
	}

	merged := result.Merge(existing, scraped)

	report := &Report{
		CompletedAt: time.Now().UTC(),
		Prior:       len(existing),
		Scraped:     bySource,
		Written:     len(merged),
		New:         len(merged) - len(existing),
		Path:        p.path,
		DryRun:      p.dryRun,
	}

	if p.dryRun {
		report.Merged = merged
	} else if err := p.store.SaveResults(merged); err != nil {
		return nil, fmt.Errorf("saving results: %w", err)
	}

	report.Duration = time.Since(started)
	report.DurationMS = report.Duration.Milliseconds()
	logger.SetGauge("records.total", float64(len(merged)))
	logger.RecordTiming("pipeline.run", report.Duration)

	logger.Info("Scrape run complete", logger.Fields{
		"records_written": report.Written,
		"new_records":     report.New,
		"dry_run":         p.dryRun,
	})

	return report, nil
}

// fetchAll issues all source fetches concurrently and blocks until every
// one settles. Each goroutine writes only its own slot, so no locking is
// needed; a failed fetch leaves its slot as the empty string.
func (p *Pipeline) fetchAll(ctx context.Context) []string {
	pages := make([]string, len(p.sources))

	var wg sync.WaitGroup
	for i, src := range p.sources {
		wg.Add(1)
		go func(i int, src source) {
			defer wg.Done()
			started := time.Now()
			html, err := p.fetcher.Fetch(ctx, src.url)
			logger.RecordTiming("fetch."+src.extractor.Source, time.Since(started))
			if err != nil {
				logger.Warn("Fetch failed, substituting empty page", logger.Fields{
					"source": src.extractor.Source,
					"url":    src.url,
					"error":  err.Error(),
				})
				return
			}
			pages[i] = html
		}(i, src)
	}
	wg.Wait()

	return pages
}
