package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "HTTP_HOST", "CORS_ORIGINS", "LOG_LEVEL", "LOG_ENCODING", "METRICS_PATH", "SEED_DATA"} {
		t.Setenv(key, "")
	}
	t.Setenv("PORT", "5000")
	t.Setenv("HTTP_HOST", "0.0.0.0")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000")
	t.Setenv("LOG_LEVEL", "INFO ")
	t.Setenv("METRICS_PATH", "metrics")
	t.Setenv("SEED_DATA", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Fatalf("expected 0.0.0.0:5000, got %s", cfg.Addr())
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("expected normalized log level, got %q", cfg.Log.Level)
	}
	if cfg.Log.Encoding != "json" {
		t.Fatalf("expected json encoding, got %q", cfg.Log.Encoding)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("expected leading slash on metrics path, got %q", cfg.Metrics.Path)
	}
	if !cfg.SeedData {
		t.Fatalf("expected seeding to be enabled")
	}
	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origins: %v", cfg.HTTP.CORSOrigins)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %v", cfg.HTTP.ShutdownTimeout)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative port")
	}
}

func TestLoadRejectsNonNumericPort(t *testing.T) {
	for _, value := range []string{"abc", "50OO", ""} {
		t.Setenv("PORT", value)
		_, err := Load()
		if err == nil {
			t.Fatalf("PORT=%q: expected error", value)
		}
		if !strings.Contains(err.Error(), "PORT") {
			t.Errorf("PORT=%q: error should name the variable, got %v", value, err)
		}
	}
}

func TestLoadRejectsUnknownEncoding(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("LOG_ENCODING", "xml")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported encoding")
	}
}

func TestStringSliceTrimsEntries(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")
	got := getEnvAsStringSlice("CORS_ORIGINS", nil)
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected slice: %v", got)
	}
}

func TestLoadRejectsUnknownGinMode(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("LOG_ENCODING", "json")
	t.Setenv("GIN_MODE", "verbose")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported gin mode")
	}
}
