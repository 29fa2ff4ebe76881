package sync

import (
	"context"

	"kakeibo/internal/core"
)

// Result reports the outcome of a successful push.
type Result struct {
	// Added is the number of records the remote reported as newly
	// appended. The remote deduplicates against everything it has
	// received before, so Added is usually smaller than the payload.
	Added int
}

// Pusher sends the full local collection to the remote spreadsheet
// endpoint. Implementations never mutate local state: the remote side
// owns deduplication and the caller only reports the outcome.
type Pusher interface {
	Push(ctx context.Context, expenses []core.Expense) (Result, error)
}
