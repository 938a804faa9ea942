package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sweissman/mat-results/internal/athlete"
	"github.com/sweissman/mat-results/internal/pipeline"
	"github.com/sweissman/mat-results/internal/result"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteReport writes a run report in the specified format.
func WriteReport(w io.Writer, report *pipeline.Report, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as indented JSON
func writeJSON(w io.Writer, report *pipeline.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// writeText outputs the report as human-readable text
func writeText(w io.Writer, report *pipeline.Report, verbose bool) error {
	if report.DryRun {
		fmt.Fprintf(w, "Dry run: %d entries would be written to %s (%d new)\n",
			report.Written, report.Path, report.New)
	} else {
		fmt.Fprintf(w, "Wrote %s with %d entries (%d new)\n",
			report.Path, report.Written, report.New)
	}

	if verbose {
		sources := make([]string, 0, len(report.Scraped))
		for source := range report.Scraped {
			sources = append(sources, source)
		}
		sort.Strings(sources)
		for _, source := range sources {
			fmt.Fprintf(w, "  %s: %d records scraped\n", source, report.Scraped[source])
		}
		fmt.Fprintf(w, "  completed in %s\n", report.Duration.Round(time.Millisecond))
	}

	if report.DryRun && verbose {
		fmt.Fprintln(w)
		for _, r := range report.Merged {
			writeRecord(w, r)
		}
	}

	return nil
}

// writeRecord prints one record on a single line, blank fields dashed.
func writeRecord(w io.Writer, r result.Record) {
	fmt.Fprintf(w, "%s  %s  %s  [%s]\n",
		orDash(r.Date), orDash(r.Title), orDash(r.Result), r.Source)
}

// WriteStatus prints the athlete profile summary and result count.
func WriteStatus(w io.Writer, profile *athlete.Profile, records []result.Record, path string) error {
	name := profile.Name
	if name == "" {
		name = "(no profile)"
	}
	fmt.Fprintf(w, "Athlete: %s\n", name)
	if profile.Nickname != "" {
		fmt.Fprintf(w, "Nickname: %s\n", profile.Nickname)
	}
	if profile.WeightClass != "" {
		fmt.Fprintf(w, "Weight class: %s lb\n", profile.WeightClass)
	}
	if profile.School != "" || profile.Club != "" {
		fmt.Fprintf(w, "Team: %s / %s\n", orDash(profile.School), orDash(profile.Club))
	}
	if profile.Record != "" {
		fmt.Fprintf(w, "Record: %s\n", profile.Record)
	}
	keys := make([]string, 0, len(profile.ExternalLinks))
	for key := range profile.ExternalLinks {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "Link[%s]: %s\n", key, profile.ExternalLinks[key])
	}
	fmt.Fprintf(w, "Results: %d entries in %s\n", len(records), path)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
