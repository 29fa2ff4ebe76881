package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kakeibo/internal/core"
)

// FileAdapter stores the collection as a single JSON file. Writes go
// through a temporary file in the same directory followed by a rename,
// so a crash mid-write leaves the previous blob intact.
type FileAdapter struct {
	path string
}

func NewFileAdapter(path string) (*FileAdapter, error) {
	if path == "" {
		return nil, fmt.Errorf("data file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileAdapter{path: path}, nil
}

func (a *FileAdapter) Save(ctx context.Context, expenses []core.Expense) error {
	if expenses == nil {
		expenses = []core.Expense{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(a.path), ".expenses-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, a.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}

	slog.DebugContext(ctx, "Collection saved to file", "path", a.path, "count", len(expenses))
	return nil
}

func (a *FileAdapter) Load(ctx context.Context) ([]core.Expense, error) {
	data, err := os.ReadFile(a.path)
	if os.IsNotExist(err) {
		slog.DebugContext(ctx, "No data file yet, starting empty", "path", a.path)
		return []core.Expense{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var expenses []core.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		return nil, fmt.Errorf("decode data file %s: %w", a.path, err)
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	return expenses, nil
}
