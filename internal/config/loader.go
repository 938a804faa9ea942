package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Sentinel error kinds for this package, usable with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MATS_CONFIG is set
//  3. env (FLOW_URL, WRESTLING_URL, TRACK_URL, DATA_DIR, LOG_LEVEL,
//     TIMEOUT_SECONDS)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MATS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Join(ErrLoadConfig, err)
		}
	}

	// Environment variables map onto the flat koanf keys: FLOW_URL ->
	// flow_url and so on. Only keys with a matching koanf tag survive
	// the unmarshal, so unrelated environment noise is ignored.
	envProvider := env.Provider("", ".", strings.ToLower)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	if cfg.FlowURL == "" || cfg.WrestlingURL == "" || cfg.TrackURL == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("source URLs must not be empty"))
	}
	if cfg.DataDir == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("data_dir must not be empty"))
	}
	return &cfg, nil
}
