// Package cli implements the command-line interface for mat-results.
//
// The cli package provides the Cobra-based CLI with support for running
// the scraping pipeline, formatting output (text/JSON), previewing a run
// without writing (dry-run), and reporting on the persisted data the
// presentation layer consumes.
package cli
