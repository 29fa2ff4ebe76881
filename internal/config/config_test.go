package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Port:            "8080",
		DataBackend:     "file",
		DataFilePath:    filepath.Join(dir, "expenses.json"),
		SQLiteDBPath:    filepath.Join(dir, "kakeibo.db"),
		SyncEndpointURL: "https://script.google.com/macros/s/abc/exec",
		SyncTimeout:     15 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid file backend config",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid sqlite backend config",
			mutate: func(c *Config) { c.DataBackend = "sqlite" },
		},
		{
			name:   "valid memory backend config",
			mutate: func(c *Config) { c.DataBackend = "memory" },
		},
		{
			name:   "empty sync endpoint is allowed",
			mutate: func(c *Config) { c.SyncEndpointURL = "" },
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "redis" },
			wantErr:     true,
			errorString: "invalid data backend 'redis'",
		},
		{
			name: "file backend missing path",
			mutate: func(c *Config) {
				c.DataBackend = "file"
				c.DataFilePath = ""
			},
			wantErr:     true,
			errorString: "data file path cannot be empty",
		},
		{
			name: "sqlite backend missing path",
			mutate: func(c *Config) {
				c.DataBackend = "sqlite"
				c.SQLiteDBPath = ""
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name:        "invalid sync endpoint scheme",
			mutate:      func(c *Config) { c.SyncEndpointURL = "ftp://example.com" },
			wantErr:     true,
			errorString: "must be 'http' or 'https'",
		},
		{
			name:        "sync timeout too small",
			mutate:      func(c *Config) { c.SyncTimeout = 100 * time.Millisecond },
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name:        "sync timeout too large",
			mutate:      func(c *Config) { c.SyncTimeout = time.Hour },
			wantErr:     true,
			errorString: "must be at most 5 minutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "DATA_FILE_PATH", "SQLITE_DB_PATH", "SYNC_ENDPOINT_URL", "SYNC_TIMEOUT"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DataBackend != "file" {
		t.Fatalf("expected default backend file, got %s", cfg.DataBackend)
	}
	if cfg.SyncEndpointURL != "" {
		t.Fatalf("sync endpoint must default to unset")
	}
	if cfg.SyncTimeout != 15*time.Second {
		t.Fatalf("expected default sync timeout 15s, got %v", cfg.SyncTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SYNC_ENDPOINT_URL", "https://example.com/exec")
	t.Setenv("SYNC_TIMEOUT", "30s")

	cfg := Load()
	if cfg.Port != "9999" || cfg.DataBackend != "sqlite" {
		t.Fatalf("env values not picked up: %+v", cfg)
	}
	if cfg.SyncEndpointURL != "https://example.com/exec" {
		t.Fatalf("sync endpoint not picked up")
	}
	if cfg.SyncTimeout != 30*time.Second {
		t.Fatalf("sync timeout not parsed, got %v", cfg.SyncTimeout)
	}
}
