// Package athlete defines the static profile data consumed by the
// presentation layer. The scraper never writes this file; it is curated
// by hand and only read back for status reporting.
package athlete

// Profile holds the athlete's biographical and stat data stored in
// data/athlete.json.
type Profile struct {
	Name          string            `json:"name"`
	Nickname      string            `json:"nickname,omitempty"`
	WeightClass   string            `json:"weight_class,omitempty"`
	School        string            `json:"school,omitempty"`
	Club          string            `json:"club,omitempty"`
	Record        string            `json:"record,omitempty"`
	Pins          int               `json:"pins,omitempty"`
	Takedowns     int               `json:"takedowns,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	ExternalLinks map[string]string `json:"external_links,omitempty"`
}
