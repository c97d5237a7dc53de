package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	opts, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.Seed != DefaultSeed || opts.Mute || opts.LogLevel != "info" || opts.Journal {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ECONFLOW_SEED", "42")
	t.Setenv("ECONFLOW_MUTE", "true")
	t.Setenv("ECONFLOW_LOG_LEVEL", "debug")

	opts, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.Seed != 42 || !opts.Mute || opts.LogLevel != "debug" {
		t.Fatalf("expected env values, got %+v", opts)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "econflow.yaml")
	if err := os.WriteFile(path, []byte("seed: 7\nlog-level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ECONFLOW_LOG_LEVEL", "error")

	v := New()
	v.Set(KeyConfig, path)
	opts, err := Load(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.Seed != 7 {
		t.Fatalf("expected seed from file, got %d", opts.Seed)
	}
	if opts.LogLevel != "error" {
		t.Fatalf("expected env to win over file, got %q", opts.LogLevel)
	}
}

func TestMissingConfigFile(t *testing.T) {
	v := New()
	v.Set(KeyConfig, filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(v); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNegativeSeed(t *testing.T) {
	t.Setenv("ECONFLOW_SEED", "-3")
	if _, err := Load(New()); err == nil {
		t.Fatal("expected error for negative seed")
	}
}
