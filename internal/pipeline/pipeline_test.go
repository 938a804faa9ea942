package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/sweissman/mat-results/internal/result"
	"github.com/sweissman/mat-results/internal/scraper"
	"github.com/sweissman/mat-results/internal/storage"
)

const flowFixture = `<html><body>
<table>
	<thead><tr><th>Date</th><th>Event</th><th>Result</th></tr></thead>
	<tbody><tr><td>3/1/24</td><td>Regional Open</td><td>1st</td></tr></tbody>
</table>
</body></html>`

const trackFixture = `<html><body>
<table>
	<thead><tr><th>Date</th><th>Tournament</th><th>Place</th></tr></thead>
	<tbody><tr><td>2/10/24</td><td>City Duals</td><td>3rd</td></tr></tbody>
</table>
</body></html>`

func htmlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func statusServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestPipeline(t *testing.T, flowURL, wrestlingURL, trackURL string, opts ...Option) (*Pipeline, *storage.Storage) {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	fetcher := scraper.NewFetcher(5 * time.Second)
	return New(store, fetcher, flowURL, wrestlingURL, trackURL, opts...), store
}

func TestRun_EndToEnd(t *testing.T) {
	flow := htmlServer(t, flowFixture)
	wrestling := htmlServer(t, "<html><body><p>no results yet</p></body></html>")
	track := htmlServer(t, "<html><body></body></html>")

	p, store := newTestPipeline(t, flow.URL, wrestling.URL, track.URL)

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Written != 1 {
		t.Fatalf("report.Written = %d, want 1", report.Written)
	}

	records, err := store.LoadResults()
	if err != nil {
		t.Fatalf("LoadResults() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("persisted %d records, want 1", len(records))
	}

	want := result.Record{
		Date:   "2024-03-01",
		Title:  "Regional Open",
		Result: "1st",
		Source: result.SourceFlow,
		Link:   flow.URL,
	}
	if records[0] != want {
		t.Errorf("persisted record = %+v, want %+v", records[0], want)
	}
}

func TestRun_SourceFailureDegrades(t *testing.T) {
	flow := statusServer(t, http.StatusInternalServerError)
	wrestling := htmlServer(t, `<html><body>
<table>
	<thead><tr><th>Event</th><th>Opponent</th></tr></thead>
	<tbody><tr><td>1/5/24</td><td>Sectional</td><td>W 4-1</td></tr></tbody>
</table>
</body></html>`)
	track := htmlServer(t, trackFixture)

	p, store := newTestPipeline(t, flow.URL, wrestling.URL, track.URL)

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, a single source failure must not abort the run", err)
	}

	if report.Scraped[result.SourceFlow] != 0 {
		t.Errorf("flow scraped = %d, want 0 for failed fetch", report.Scraped[result.SourceFlow])
	}
	if report.Scraped[result.SourceWrestling] != 1 || report.Scraped[result.SourceTrack] != 1 {
		t.Errorf("scraped counts = %v, want results from the surviving sources", report.Scraped)
	}

	records, err := store.LoadResults()
	if err != nil {
		t.Fatalf("LoadResults() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("persisted %d records, want 2", len(records))
	}
}

func TestRun_CorruptStateIsFatal(t *testing.T) {
	flow := htmlServer(t, flowFixture)

	p, store := newTestPipeline(t, flow.URL, flow.URL, flow.URL)

	corrupt := []byte("{definitely not json")
	if err := os.WriteFile(store.ResultsPath(), corrupt, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("Run() should fail on corrupt prior state")
	}

	// The corrupt file must be left untouched.
	data, err := os.ReadFile(store.ResultsPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(corrupt) {
		t.Error("corrupt state file was overwritten")
	}
}

func TestRun_ExistingRecordsWin(t *testing.T) {
	flow := htmlServer(t, flowFixture)
	empty := htmlServer(t, "<html></html>")

	p, store := newTestPipeline(t, flow.URL, empty.URL, empty.URL)

	curated := result.Record{
		Date:   "2024-03-01",
		Title:  "Regional Open",
		Result: "1st",
		Source: result.SourceFlow,
		Link:   "https://curated.example.com/profile",
	}
	if err := store.SaveResults([]result.Record{curated}); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	records, err := store.LoadResults()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("persisted %d records, want 1", len(records))
	}
	if records[0] != curated {
		t.Errorf("record = %+v, want curated version kept verbatim", records[0])
	}
}

func TestRun_DryRunDoesNotWrite(t *testing.T) {
	flow := htmlServer(t, flowFixture)
	empty := htmlServer(t, "<html></html>")

	p, store := newTestPipeline(t, flow.URL, empty.URL, empty.URL, WithDryRun())

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.DryRun {
		t.Error("report should be marked dry-run")
	}
	if len(report.Merged) != 1 {
		t.Errorf("report.Merged has %d records, want 1", len(report.Merged))
	}

	if _, err := os.Stat(store.ResultsPath()); !os.IsNotExist(err) {
		t.Error("dry run must not create the results file")
	}
}

func TestRun_RerunDoesNotGrow(t *testing.T) {
	flow := htmlServer(t, flowFixture)
	empty := htmlServer(t, "<html></html>")

	p, store := newTestPipeline(t, flow.URL, empty.URL, empty.URL)

	for i := 0; i < 3; i++ {
		if _, err := p.Run(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	records, err := store.LoadResults()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("after 3 runs persisted %d records, want 1", len(records))
	}
}
