package storage

import (
	"context"

	"kakeibo/internal/core"
)

// Adapter persists the expense collection as a single overwritten blob.
// There is one logical key: every Save replaces the previous collection
// wholesale, and Load returns what the last Save wrote. An absent blob
// loads as the empty collection; a malformed blob is an error the caller
// decides how to treat.
type Adapter interface {
	Save(ctx context.Context, expenses []core.Expense) error
	Load(ctx context.Context) ([]core.Expense, error)
}
