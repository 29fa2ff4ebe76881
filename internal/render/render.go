// Package render projects the collection and its summary into view
// models for the templates. It is a strict one-way projection: nothing
// in here mutates store state.
package render

import (
	"strconv"
	"time"

	"kakeibo/internal/core"
)

// EmptyPlaceholder is shown in place of the list and the summary when
// the collection has no records.
const EmptyPlaceholder = "データがありません"

// memoPlaceholder stands in for a missing memo.
const memoPlaceholder = "-"

type (
	// Row is one rendered expense, newest first.
	Row struct {
		ID       int64
		Date     string
		Category string
		Memo     string
		Amount   string
	}

	ListView struct {
		Rows  []Row
		Empty bool
	}

	CategoryRow struct {
		Name   string
		Amount string
		// Width is the bar width in percent relative to the largest
		// category, rounded, floored at 2 for visibility.
		Width int
	}

	SummaryView struct {
		Total      string
		ByCategory []CategoryRow
		Empty      bool
	}
)

var weekdayKanji = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatDate renders a date the way the list shows it: abbreviated
// Japanese month/day plus weekday, e.g. 1月10日(水).
func FormatDate(d core.Date) string {
	return strconv.Itoa(int(d.Month())) + "月" + strconv.Itoa(d.Day()) + "日(" + weekdayKanji[int(d.Weekday())] + ")"
}

// FormatYen renders whole yen with a currency glyph and comma thousands
// grouping, e.g. ¥1,234,567.
func FormatYen(yen int64) string {
	neg := yen < 0
	if neg {
		yen = -yen
	}
	s := strconv.FormatInt(yen, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-¥" + s
	}
	return "¥" + s
}

// BuildList renders the collection sorted by date descending, one row
// per record. Records without a memo show a dash.
func BuildList(expenses []core.Expense) ListView {
	if len(expenses) == 0 {
		return ListView{Empty: true}
	}

	sorted := core.SortedByDateDesc(expenses)
	rows := make([]Row, len(sorted))
	for i, e := range sorted {
		memo := e.Memo
		if memo == "" {
			memo = memoPlaceholder
		}
		rows[i] = Row{
			ID:       e.ID,
			Date:     FormatDate(e.Date),
			Category: e.Category,
			Memo:     memo,
			Amount:   FormatYen(e.Amount.Yen),
		}
	}
	return ListView{Rows: rows}
}

// BuildSummary renders the grand total and the ordered per-category
// breakdown. The bar widths are scaled against the largest category.
func BuildSummary(s core.Summary) SummaryView {
	view := SummaryView{Total: FormatYen(s.Total.Yen)}
	if len(s.ByCategory) == 0 {
		view.Empty = true
		return view
	}

	maxYen := s.ByCategory[0].Amount.Yen
	view.ByCategory = make([]CategoryRow, len(s.ByCategory))
	for i, ct := range s.ByCategory {
		width := 0
		if maxYen > 0 && ct.Amount.Yen > 0 {
			width = int((ct.Amount.Yen*100 + maxYen/2) / maxYen)
			if width < 2 {
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		view.ByCategory[i] = CategoryRow{
			Name:   ct.Name,
			Amount: FormatYen(ct.Amount.Yen),
			Width:  width,
		}
	}
	return view
}

// Today returns the form default date in wire encoding.
func Today() string {
	return time.Now().Format(core.DateLayout)
}
