package http

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"kakeibo/internal/core"
	applog "kakeibo/internal/log"
	"kakeibo/internal/notify"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		BadRequestError("リクエストの形式が正しくありません").Write(w)
		return
	}

	form := ParseExpenseForm(r.Form)
	expense, err := form.ToExpense(s.store.NextID())
	if err != nil {
		UnprocessableEntityError(validationMessage(err)).Write(w)
		return
	}

	if err := s.store.Add(r.Context(), expense); err != nil {
		if errors.Is(err, core.ErrDuplicateID) {
			ConflictError("同じIDの記録が既に存在します").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Expense add error",
			applog.FieldError, err,
			applog.FieldExpenseID, expense.ID,
			applog.FieldAmountYen, expense.Amount.Yen)
		InternalServerError("保存に失敗しました").Write(w)
		return
	}
	s.invalidateViews()

	n := s.notifier.Publish("支出を記録しました", notify.KindSuccess)
	NewHTMXResponse().
		TriggerExpenseCreated(expense.ID).
		TriggerNotification(n).
		BodyHTML(`<div class="success">記録しました: ` +
			template.HTMLEscapeString(expense.Category) + ` ¥` +
			template.HTMLEscapeString(strconv.FormatInt(expense.Amount.Yen, 10)) + `</div>`).
		Write(w)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		BadRequestError("リクエストの形式が正しくありません").Write(w)
		return
	}

	id, err := strconv.ParseInt(strings.TrimSpace(r.Form.Get("id")), 10, 64)
	if err != nil {
		UnprocessableEntityError("IDが正しくありません").Write(w)
		return
	}

	if err := s.store.Remove(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Expense remove error", applog.FieldError, err, applog.FieldExpenseID, id)
		InternalServerError("削除に失敗しました").Write(w)
		return
	}
	s.invalidateViews()

	n := s.notifier.Publish("支出を削除しました", notify.KindSuccess)
	NewHTMXResponse().
		TriggerExpenseDeleted(id).
		TriggerNotification(n).
		BodyHTML(`<div class="success">削除しました</div>`).
		Write(w)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		return "日付が正しくありません"
	case errors.Is(err, core.ErrInvalidAmount):
		return "金額は1以上の整数で入力してください"
	case errors.Is(err, core.ErrEmptyCategory):
		return "カテゴリを入力してください"
	default:
		return "入力内容が正しくありません"
	}
}
