package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FlowURL != DefaultFlowURL {
		t.Errorf("FlowURL = %q, want default", cfg.FlowURL)
	}
	if cfg.WrestlingURL != DefaultWrestlingURL {
		t.Errorf("WrestlingURL = %q, want default", cfg.WrestlingURL)
	}
	if cfg.TrackURL != DefaultTrackURL {
		t.Errorf("TrackURL = %q, want default", cfg.TrackURL)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "data")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FLOW_URL", "https://flow.test/profile")
	t.Setenv("TRACK_URL", "https://track.test/profile")
	t.Setenv("DATA_DIR", "/tmp/mat-data")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FlowURL != "https://flow.test/profile" {
		t.Errorf("FlowURL = %q", cfg.FlowURL)
	}
	if cfg.TrackURL != "https://track.test/profile" {
		t.Errorf("TrackURL = %q", cfg.TrackURL)
	}
	if cfg.WrestlingURL != DefaultWrestlingURL {
		t.Errorf("WrestlingURL = %q, want untouched default", cfg.WrestlingURL)
	}
	if cfg.DataDir != "/tmp/mat-data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.TimeoutSeconds != 5 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mats.yaml")
	yaml := "flow_url: https://file.test/flow\nwrestling_url: https://file.test/wt\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MATS_CONFIG", path)
	t.Setenv("FLOW_URL", "https://env.test/flow")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Env wins over file; file wins over defaults.
	if cfg.FlowURL != "https://env.test/flow" {
		t.Errorf("FlowURL = %q, want env override", cfg.FlowURL)
	}
	if cfg.WrestlingURL != "https://file.test/wt" {
		t.Errorf("WrestlingURL = %q, want file value", cfg.WrestlingURL)
	}
	if cfg.TrackURL != DefaultTrackURL {
		t.Errorf("TrackURL = %q, want default", cfg.TrackURL)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mats.yaml")
	if err := os.WriteFile(path, []byte("flow_url: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MATS_CONFIG", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for empty source URL")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("MATS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !errors.Is(err, ErrLoadConfig) {
		t.Errorf("error = %v, want ErrLoadConfig", err)
	}
}
