package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sweissman/mat-results/internal/athlete"
	"github.com/sweissman/mat-results/internal/result"
)

const (
	resultsFile = "tournaments.json"
	profileFile = "athlete.json"
)

// Storage handles persistence of the result collection and read access
// to the athlete profile.
type Storage struct {
	dataDir string
}

// New creates a new Storage instance rooted at dataDir, creating the
// directory if needed.
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// ResultsPath returns the path of the persisted result collection.
func (s *Storage) ResultsPath() string {
	return filepath.Join(s.dataDir, resultsFile)
}

// ProfilePath returns the path of the athlete profile file.
func (s *Storage) ProfilePath() string {
	return filepath.Join(s.dataDir, profileFile)
}

// LoadResults loads the persisted result collection. A missing file is
// not an error and yields an empty collection; a file that exists but
// does not parse as JSON is an error, since overwriting it would discard
// state we cannot account for.
func (s *Storage) LoadResults() ([]result.Record, error) {
	data, err := os.ReadFile(s.ResultsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []result.Record{}, nil
		}
		return nil, fmt.Errorf("reading results: %w", err)
	}

	var records []result.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}

	return records, nil
}

// SaveResults writes the full result collection, pretty-printed, fully
// replacing the previous file.
func (s *Storage) SaveResults(records []result.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if err := os.WriteFile(s.ResultsPath(), data, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	return nil
}

// LoadProfile loads the athlete profile. A missing file yields an empty
// profile, mirroring how the presentation layer tolerates its absence.
func (s *Storage) LoadProfile() (*athlete.Profile, error) {
	data, err := os.ReadFile(s.ProfilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return &athlete.Profile{}, nil
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var profile athlete.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	return &profile, nil
}
