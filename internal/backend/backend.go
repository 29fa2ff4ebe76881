package backend

import (
	"fmt"

	"kakeibo/internal/config"
	"kakeibo/internal/storage"
)

// Type selects the persistence adapter.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by an adapter.
type CleanupFunc func() error

// Result contains the constructed adapter and its cleanup function.
type Result struct {
	Adapter storage.Adapter
	Cleanup CleanupFunc
}

func noopCleanup() error { return nil }

// New constructs the persistence adapter selected by the configuration.
func New(cfg *config.Config) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	t := Type(cfg.DataBackend)
	switch t {
	case FileBackend:
		adapter, err := storage.NewFileAdapter(cfg.DataFilePath)
		if err != nil {
			return nil, fmt.Errorf("initialize file adapter: %w", err)
		}
		return &Result{Adapter: adapter, Cleanup: noopCleanup}, nil

	case SQLiteBackend:
		adapter, err := storage.NewSQLiteAdapter(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite adapter: %w", err)
		}
		return &Result{Adapter: adapter, Cleanup: adapter.Close}, nil

	case MemoryBackend:
		return &Result{Adapter: storage.NewMemoryAdapter(), Cleanup: noopCleanup}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
