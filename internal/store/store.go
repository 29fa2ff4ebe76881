// Package store owns the session expense collection. It is the single
// write path to the persistence adapter: every mutation rewrites the
// full collection, and a failed write rolls the in-memory change back
// so the durable copy and the session copy never diverge.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

type Store struct {
	mu       sync.Mutex
	adapter  storage.Adapter
	expenses []core.Expense
	lastID   int64
}

// Open constructs a Store seeded from the adapter. A malformed persisted
// blob fails Open; the caller decides whether that is fatal.
func Open(ctx context.Context, adapter storage.Adapter) (*Store, error) {
	expenses, err := adapter.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	s := &Store{adapter: adapter, expenses: expenses}
	for _, e := range expenses {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}

	slog.InfoContext(ctx, "Expense store opened", "count", len(expenses))
	return s, nil
}

// NextID allocates an identifier for a new record: the creation
// timestamp in milliseconds, kept strictly increasing across the session
// and above every loaded record.
func (s *Store) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID = core.NewID(s.lastID)
	return s.lastID
}

// Add validates the record, rejects a duplicate id, appends it and
// writes the collection through to the adapter.
func (s *Store) Add(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.expenses {
		if existing.ID == e.ID {
			return fmt.Errorf("add expense %d: %w", e.ID, core.ErrDuplicateID)
		}
	}

	s.expenses = append(s.expenses, e)
	if err := s.adapter.Save(ctx, s.expenses); err != nil {
		s.expenses = s.expenses[:len(s.expenses)-1]
		return fmt.Errorf("persist collection: %w", err)
	}
	if e.ID > s.lastID {
		s.lastID = e.ID
	}

	slog.InfoContext(ctx, "Expense added",
		"id", e.ID,
		"date", e.Date.String(),
		"category", e.Category,
		"amount_yen", e.Amount.Yen)
	return nil
}

// Remove deletes the record with the given id. An absent id is a no-op
// and does not touch the adapter.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, e := range s.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.DebugContext(ctx, "Remove for absent id ignored", "id", id)
		return nil
	}

	removed := s.expenses[idx]
	s.expenses = append(s.expenses[:idx], s.expenses[idx+1:]...)
	if err := s.adapter.Save(ctx, s.expenses); err != nil {
		s.expenses = append(s.expenses[:idx], append([]core.Expense{removed}, s.expenses[idx:]...)...)
		return fmt.Errorf("persist collection: %w", err)
	}

	slog.InfoContext(ctx, "Expense removed", "id", id, "category", removed.Category)
	return nil
}

// All returns a snapshot copy of the collection in insertion order.
func (s *Store) All() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Len returns the number of records in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expenses)
}
