// Package sync implements the one-shot push of the local collection to
// the remote spreadsheet endpoint. There is no retry, no backoff and no
// partial resend: one request, one structured response, one outcome.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"kakeibo/internal/core"
	"kakeibo/internal/log"
)

var (
	// ErrEndpointNotConfigured aborts a push before any network
	// activity when no endpoint URL is set.
	ErrEndpointNotConfigured = errors.New("sync endpoint not configured")

	// ErrSyncInFlight rejects a push while a previous one is still
	// awaiting its response.
	ErrSyncInFlight = errors.New("sync already in progress")
)

const defaultTimeout = 15 * time.Second

// Client pushes the collection to a script-host endpoint such as a
// Google Apps Script web app.
type Client struct {
	endpoint string
	httpc    *http.Client
	inFlight atomic.Bool
}

type payload struct {
	Expenses []core.Expense `json:"expenses"`
}

type response struct {
	Status  string `json:"status"`
	Added   int    `json:"added"`
	Message string `json:"message"`
}

// NewClient creates a sync client. An empty endpoint is allowed; pushes
// will fail with ErrEndpointNotConfigured until one is set. A zero
// timeout falls back to the default.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an endpoint URL is set.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Push serializes the entire collection and POSTs it to the endpoint.
// The request body is {"expenses": [...]}; the remote answers with
// {status, added, message}. Only status "success" is a success, and the
// local collection is never modified based on the response.
func (c *Client) Push(ctx context.Context, expenses []core.Expense) (Result, error) {
	if c.endpoint == "" {
		return Result{}, ErrEndpointNotConfigured
	}
	if !c.inFlight.CompareAndSwap(false, true) {
		return Result{}, ErrSyncInFlight
	}
	defer c.inFlight.Store(false)

	if expenses == nil {
		expenses = []core.Expense{}
	}
	body, err := json.Marshal(payload{Expenses: expenses})
	if err != nil {
		return Result{}, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	// text/plain keeps the script host from demanding a CORS preflight
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	slog.InfoContext(ctx, "Pushing collection to remote",
		log.FieldComponent, log.ComponentSync,
		log.FieldOperation, log.OpSync,
		log.FieldCount, len(expenses))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("sync request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, fmt.Errorf("read sync response: %w", err)
	}

	var r response
	if err := json.Unmarshal(raw, &r); err != nil {
		return Result{}, fmt.Errorf("decode sync response (http %d): %w", resp.StatusCode, err)
	}
	if r.Status != "success" {
		msg := r.Message
		if msg == "" {
			msg = "unknown error"
		}
		return Result{}, fmt.Errorf("remote rejected sync: %s", msg)
	}

	slog.InfoContext(ctx, "Sync completed",
		log.FieldComponent, log.ComponentSync,
		log.FieldAdded, r.Added,
		log.FieldCount, len(expenses))
	return Result{Added: r.Added}, nil
}
