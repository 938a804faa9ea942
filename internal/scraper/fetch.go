package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	UserAgent      = "mat-results/1.0 (github.com/sweissman/mat-results)"
	DefaultTimeout = 30 * time.Second
)

// Fetcher performs single best-effort page fetches. No retries and no
// backoff; a run issues exactly one request per source.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the given request timeout. A zero or
// negative timeout falls back to DefaultTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the page at url and returns its body. A non-2xx status
// is not an error: it yields empty content so the pipeline can degrade to
// the remaining sources. Transport-level failures are returned as errors
// for the caller to log.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	return string(body), nil
}
