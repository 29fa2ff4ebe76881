package http

import (
	"log/slog"
	"net/http"

	"kakeibo/internal/core"
	"kakeibo/internal/render"
)

// listView returns the rendered list, computing it on a cache miss.
func (s *Server) listView() render.ListView {
	if v, ok := s.listCache.Get(listCacheKey); ok {
		return v
	}
	v := render.BuildList(s.store.All())
	s.listCache.Set(listCacheKey, v)
	return v
}

// summaryView returns the rendered summary, computing it on a cache miss.
func (s *Server) summaryView() render.SummaryView {
	if v, ok := s.summaryCache.Get(summaryCacheKey); ok {
		return v
	}
	v := render.BuildSummary(core.Summarize(s.store.All()))
	s.summaryCache.Set(summaryCacheKey, v)
	return v
}

type pageData struct {
	Today       string
	List        render.ListView
	Summary     render.SummaryView
	SyncEnabled bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := pageData{
		Today:       render.Today(),
		List:        s.listView(),
		Summary:     s.summaryView(),
		SyncEnabled: s.syncConfigured(),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleExpenseList renders the expense list partial.
func (s *Server) handleExpenseList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "expense_list.html", s.listView()); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "expense_list.html")
		_, _ = w.Write([]byte(`<div class="placeholder">リストを表示できません</div>`))
	}
}

// handleSummary renders the total and per-category summary partial.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "summary.html", s.summaryView()); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "summary.html")
		_, _ = w.Write([]byte(`<div class="placeholder">集計を表示できません</div>`))
	}
}

func (s *Server) syncConfigured() bool {
	type configured interface{ Configured() bool }
	if c, ok := s.pusher.(configured); ok {
		return c.Configured()
	}
	return s.pusher != nil
}
