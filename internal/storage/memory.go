package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"kakeibo/internal/core"
)

// MemoryAdapter keeps the serialized blob in process memory. It is the
// default dev backend and the adapter used in tests. Storing the encoded
// bytes rather than the slice keeps the save/load contract identical to
// the durable adapters.
type MemoryAdapter struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

func (a *MemoryAdapter) Save(_ context.Context, expenses []core.Expense) error {
	if expenses == nil {
		expenses = []core.Expense{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	a.mu.Lock()
	a.blob = data
	a.mu.Unlock()
	return nil
}

func (a *MemoryAdapter) Load(_ context.Context) ([]core.Expense, error) {
	a.mu.Lock()
	data := a.blob
	a.mu.Unlock()

	if data == nil {
		return []core.Expense{}, nil
	}
	var expenses []core.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	return expenses, nil
}

// Seed replaces the stored blob with raw bytes, bypassing encoding.
// Tests use it to simulate malformed persisted data.
func (a *MemoryAdapter) Seed(raw []byte) {
	a.mu.Lock()
	a.blob = raw
	a.mu.Unlock()
}
