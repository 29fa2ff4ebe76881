package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	applog "kakeibo/internal/log"
	"kakeibo/internal/notify"
	syncclient "kakeibo/internal/sync"
)

// handleSync pushes the full local collection to the remote endpoint.
// The triggering button carries a confirmation prompt and htmx disables
// it for the duration of the request; the client-side guard is backed
// by the pusher's own in-flight check. The outcome only produces a
// notification, never a change to the local collection.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}

	collection := s.store.All()
	result, err := s.pusher.Push(r.Context(), collection)
	if err != nil {
		s.writeSyncError(w, r, err)
		return
	}

	n := s.notifier.Publish("同期完了: "+strconv.Itoa(result.Added)+"件追加しました", notify.KindSuccess)
	NewHTMXResponse().
		TriggerSyncCompleted(result.Added).
		TriggerNotification(n).
		BodyHTML(`<div class="success">同期が完了しました</div>`).
		Write(w)
}

func (s *Server) writeSyncError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status  int
		message string
	)
	switch {
	case errors.Is(err, syncclient.ErrEndpointNotConfigured):
		status = http.StatusUnprocessableEntity
		message = "同期先URLが設定されていません"
	case errors.Is(err, syncclient.ErrSyncInFlight):
		status = http.StatusConflict
		message = "同期は既に実行中です"
	default:
		status = http.StatusBadGateway
		message = "同期に失敗しました: " + err.Error()
	}

	slog.ErrorContext(r.Context(), "Sync error",
		applog.FieldComponent, applog.ComponentSync,
		applog.FieldError, err,
		applog.FieldStatusCode, status)
	n := s.notifier.Publish(message, notify.KindError)
	ErrorResponse(status, message).TriggerNotification(n).Write(w)
}
