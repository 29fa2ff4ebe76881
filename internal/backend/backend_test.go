package backend

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"kakeibo/internal/config"
)

func TestTypeIsValid(t *testing.T) {
	for _, tt := range []struct {
		t    Type
		want bool
	}{
		{FileBackend, true},
		{SQLiteBackend, true},
		{MemoryBackend, true},
		{Type("redis"), false},
		{Type(""), false},
	} {
		if got := tt.t.IsValid(); got != tt.want {
			t.Fatalf("IsValid(%q) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestNewPerBackend(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"file", "sqlite", "memory"} {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Config{
				Port:         "8080",
				DataBackend:  name,
				DataFilePath: filepath.Join(dir, name, "expenses.json"),
				SQLiteDBPath: filepath.Join(dir, name, "kakeibo.db"),
				SyncTimeout:  15 * time.Second,
			}
			result, err := New(cfg)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			defer result.Cleanup()

			out, err := result.Adapter.Load(context.Background())
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(out) != 0 {
				t.Fatalf("fresh adapter must load empty, got %d", len(out))
			}
		})
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	if _, err := New(&config.Config{DataBackend: "redis"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
