package result

import "strings"

// Source tags identifying the origin profile site of a record.
const (
	SourceFlow      = "flow"
	SourceWrestling = "wrestlingtournaments"
	SourceTrack     = "track"
)

// Record represents one observed competition result scraped from a
// profile page. All fields default to the empty string; extractors fill
// in whatever the page markup yields.
type Record struct {
	Date   string `json:"date"`
	Title  string `json:"title"`
	Result string `json:"result"`
	Source string `json:"source"`
	Link   string `json:"link"`
}

// Key returns the identity key used for deduplication: the trimmed
// (title, date, result, source) tuple joined with "|". Link is
// source-level metadata and is deliberately excluded.
func (r Record) Key() string {
	return strings.Join([]string{
		strings.TrimSpace(r.Title),
		strings.TrimSpace(r.Date),
		strings.TrimSpace(r.Result),
		strings.TrimSpace(r.Source),
	}, "|")
}
