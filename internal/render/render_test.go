package render

import (
	"testing"

	"kakeibo/internal/core"
)

func exp(id int64, date, category string, yen int64, memo string) core.Expense {
	d, _ := core.ParseDate(date)
	return core.Expense{ID: id, Date: d, Category: category, Amount: core.Money{Yen: yen}, Memo: memo}
}

func TestFormatYen(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "¥0"},
		{1, "¥1"},
		{999, "¥999"},
		{1000, "¥1,000"},
		{1800, "¥1,800"},
		{1234567, "¥1,234,567"},
		{-500, "-¥500"},
		{-1234567, "-¥1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatYen(tc.in); got != tc.want {
			t.Fatalf("FormatYen(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-10", "1月10日(水)"},
		{"2024-05-03", "5月3日(金)"},
		{"2024-12-01", "12月1日(日)"},
	}
	for _, tc := range cases {
		d, err := core.ParseDate(tc.in)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.in, err)
		}
		if got := FormatDate(d); got != tc.want {
			t.Fatalf("FormatDate(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildListSortsByDateDesc(t *testing.T) {
	list := BuildList([]core.Expense{
		exp(1, "2024-05-01", "a", 100, ""),
		exp(2, "2024-05-03", "b", 100, ""),
		exp(3, "2024-05-02", "c", 100, ""),
	})
	if list.Empty {
		t.Fatalf("list should not be empty")
	}
	wantIDs := []int64{2, 3, 1}
	for i, id := range wantIDs {
		if list.Rows[i].ID != id {
			t.Fatalf("row %d: expected id %d, got %d", i, id, list.Rows[i].ID)
		}
	}
}

func TestBuildListMemoPlaceholder(t *testing.T) {
	list := BuildList([]core.Expense{exp(1, "2024-05-01", "食費", 1000, "")})
	if list.Rows[0].Memo != "-" {
		t.Fatalf("missing memo must render as dash, got %q", list.Rows[0].Memo)
	}

	list = BuildList([]core.Expense{exp(1, "2024-05-01", "食費", 1000, "ランチ")})
	if list.Rows[0].Memo != "ランチ" {
		t.Fatalf("memo lost: %q", list.Rows[0].Memo)
	}
}

func TestBuildListEmpty(t *testing.T) {
	list := BuildList(nil)
	if !list.Empty || len(list.Rows) != 0 {
		t.Fatalf("empty collection must yield the empty state, got %+v", list)
	}
}

func TestBuildSummary(t *testing.T) {
	s := core.Summarize([]core.Expense{
		exp(1, "2024-01-10", "食費", 1000, ""),
		exp(2, "2024-01-11", "食費", 500, ""),
		exp(3, "2024-01-09", "交通費", 300, ""),
	})
	view := BuildSummary(s)

	if view.Empty {
		t.Fatalf("summary should not be empty")
	}
	if view.Total != "¥1,800" {
		t.Fatalf("expected total ¥1,800, got %s", view.Total)
	}
	if view.ByCategory[0].Name != "食費" || view.ByCategory[0].Amount != "¥1,500" {
		t.Fatalf("unexpected first category %+v", view.ByCategory[0])
	}
	if view.ByCategory[1].Name != "交通費" || view.ByCategory[1].Amount != "¥300" {
		t.Fatalf("unexpected second category %+v", view.ByCategory[1])
	}
	if view.ByCategory[0].Width != 100 {
		t.Fatalf("largest category must render full width, got %d", view.ByCategory[0].Width)
	}
	if w := view.ByCategory[1].Width; w < 2 || w > 100 {
		t.Fatalf("width out of range: %d", w)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	view := BuildSummary(core.Summarize(nil))
	if !view.Empty {
		t.Fatalf("empty collection must yield the empty summary state")
	}
	if view.Total != "¥0" {
		t.Fatalf("empty total must display as ¥0, got %s", view.Total)
	}
}
