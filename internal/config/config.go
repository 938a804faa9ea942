// Package config defines process configuration for the scraping pipeline.
//
// Configuration is resolved once at startup and handed to the pipeline;
// nothing reads environment state ad hoc after that. Values layer as
// defaults, then an optional YAML file, then environment variables.
package config

// Default source URLs. Each can be overridden with its environment
// variable (FLOW_URL, WRESTLING_URL, TRACK_URL).
const (
	DefaultFlowURL      = "https://www.flowrestling.org/nextgen/people/13583018?tab=home"
	DefaultWrestlingURL = "https://www.wrestlingtournaments.com/wrestlerProfile/76818?tab=results"
	DefaultTrackURL     = "https://www.trackwrestling.com/membership/ViewProfile.jsp?twId=1225324138"
)

// Config contains process configuration.
type Config struct {
	// FlowURL is the flowrestling profile page to scrape.
	FlowURL string `koanf:"flow_url"`

	// WrestlingURL is the wrestlingtournaments profile page to scrape.
	WrestlingURL string `koanf:"wrestling_url"`

	// TrackURL is the trackwrestling profile page to scrape.
	TrackURL string `koanf:"track_url"`

	// DataDir holds tournaments.json and athlete.json.
	DataDir string `koanf:"data_dir"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// TimeoutSeconds bounds each page fetch.
	TimeoutSeconds int `koanf:"timeout_seconds"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		FlowURL:        DefaultFlowURL,
		WrestlingURL:   DefaultWrestlingURL,
		TrackURL:       DefaultTrackURL,
		DataDir:        "data",
		LogLevel:       "info",
		TimeoutSeconds: 30,
	}
}
