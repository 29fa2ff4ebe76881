package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kakeibo/internal/core"

	_ "modernc.org/sqlite"
)

// snapshotKey is the single logical key for the persisted collection.
const snapshotKey = "expenses"

// SQLiteAdapter persists the collection as one serialized row in a
// snapshots table. It keeps the same one-key overwrite model as the
// file adapter while giving the blob transactional durability.
type SQLiteAdapter struct {
	db *sql.DB
}

func NewSQLiteAdapter(dbPath string) (*SQLiteAdapter, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteAdapter{db: db}, nil
}

func (a *SQLiteAdapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *SQLiteAdapter) Save(ctx context.Context, expenses []core.Expense) error {
	if expenses == nil {
		expenses = []core.Expense{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, blob, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = CURRENT_TIMESTAMP`,
		snapshotKey, data)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	slog.DebugContext(ctx, "Collection saved to sqlite", "count", len(expenses))
	return nil
}

func (a *SQLiteAdapter) Load(ctx context.Context) ([]core.Expense, error) {
	var data []byte
	err := a.db.QueryRowContext(ctx,
		`SELECT blob FROM snapshots WHERE key = ?`, snapshotKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []core.Expense{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var expenses []core.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	return expenses, nil
}
