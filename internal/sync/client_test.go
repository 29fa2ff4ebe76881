package sync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"kakeibo/internal/core"
)

func collection() []core.Expense {
	d1, _ := core.ParseDate("2024-01-10")
	d2, _ := core.ParseDate("2024-01-11")
	return []core.Expense{
		{ID: 1, Date: d1, Category: "食費", Amount: core.Money{Yen: 1000}},
		{ID: 2, Date: d2, Category: "交通費", Amount: core.Money{Yen: 300}, Memo: "バス"},
	}
}

func TestPushSuccess(t *testing.T) {
	var gotBody struct {
		Expenses []struct {
			ID       int64  `json:"id"`
			Date     string `json:"date"`
			Category string `json:"category"`
			Amount   int64  `json:"amount"`
			Memo     string `json:"memo"`
		} `json:"expenses"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "text/plain;charset=utf-8" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "added": 2})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	res, err := c.Push(context.Background(), collection())
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if res.Added != 2 {
		t.Fatalf("expected added=2, got %d", res.Added)
	}
	if len(gotBody.Expenses) != 2 {
		t.Fatalf("remote received %d records, want 2", len(gotBody.Expenses))
	}
	if gotBody.Expenses[0].Date != "2024-01-10" || gotBody.Expenses[0].Amount != 1000 {
		t.Fatalf("unexpected wire shape: %+v", gotBody.Expenses[0])
	}
}

func TestPushEndpointNotConfigured(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewClient("", time.Second)
	if c.Configured() {
		t.Fatalf("client with empty endpoint reports configured")
	}
	_, err := c.Push(context.Background(), collection())
	if !errors.Is(err, ErrEndpointNotConfigured) {
		t.Fatalf("expected ErrEndpointNotConfigured, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected zero network calls, got %d", calls.Load())
	}
}

func TestPushRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "error", "message": "sheet is locked"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Push(context.Background(), collection())
	if err == nil {
		t.Fatalf("expected error for non-success status")
	}
	if got := err.Error(); got != "remote rejected sync: sheet is locked" {
		t.Fatalf("expected remote message in error, got %q", got)
	}
}

func TestPushRemoteFailureWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "error"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Push(context.Background(), collection())
	if err == nil || err.Error() != "remote rejected sync: unknown error" {
		t.Fatalf("expected generic fallback message, got %v", err)
	}
}

func TestPushMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, time.Second).Push(context.Background(), collection()); err == nil {
		t.Fatalf("expected error for malformed response")
	}
}

func TestPushRejectsOverlappingCalls(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "added": 0})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	done := make(chan error, 1)
	go func() {
		_, err := c.Push(context.Background(), collection())
		done <- err
	}()

	// Wait until the first push is holding the in-flight flag
	deadline := time.After(2 * time.Second)
	for !c.inFlight.Load() {
		select {
		case <-deadline:
			t.Fatalf("first push never became in-flight")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := c.Push(context.Background(), collection()); !errors.Is(err, ErrSyncInFlight) {
		t.Fatalf("expected ErrSyncInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first push failed: %v", err)
	}
}

func TestPushEmptyCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		if string(body["expenses"]) != "[]" {
			t.Errorf("expected empty array payload, got %s", body["expenses"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "added": 0})
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL, time.Second).Push(context.Background(), nil)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if res.Added != 0 {
		t.Fatalf("expected added=0, got %d", res.Added)
	}
}
