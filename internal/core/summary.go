package core

import "sort"

// CategoryTotal is an amount aggregated by category label.
type CategoryTotal struct {
	Name   string
	Amount Money
}

// Summary is the derived view of a collection: the grand total plus the
// per-category breakdown ordered by descending amount.
type Summary struct {
	Total      Money
	ByCategory []CategoryTotal
}

// Summarize computes the summary for a collection. It is a pure function
// of its input: the grand total is the sum of all amounts (0 for an empty
// collection) and each record is counted in exactly one category bucket.
// Categories with equal totals keep first-encountered order, so identical
// input always yields identical output.
func Summarize(expenses []Expense) Summary {
	var s Summary

	totals := make(map[string]int64, len(expenses))
	var order []string
	for _, e := range expenses {
		s.Total.Yen += e.Amount.Yen
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount.Yen
	}

	s.ByCategory = make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Name: name, Amount: Money{Yen: totals[name]}})
	}
	sort.SliceStable(s.ByCategory, func(i, j int) bool {
		return s.ByCategory[i].Amount.Yen > s.ByCategory[j].Amount.Yen
	})

	return s
}

// SortedByDateDesc returns a copy of the collection sorted newest first.
// Records sharing a date keep their original relative order.
func SortedByDateDesc(expenses []Expense) []Expense {
	out := make([]Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}
