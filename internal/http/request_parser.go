// Package http provides the HTTP server and handler implementations.
//
// This file implements parsing of the expense entry form into a domain
// record: date, category, integer yen amount and an optional memo.
package http

import (
	"net/url"

	"kakeibo/internal/core"
)

// ExpenseForm holds the raw form fields of a new expense entry.
type ExpenseForm struct {
	Date     string
	Category string
	Amount   string
	Memo     string
}

// ParseExpenseForm extracts and sanitizes the entry form fields.
func ParseExpenseForm(form url.Values) ExpenseForm {
	return ExpenseForm{
		Date:     sanitizeInput(form.Get("date")),
		Category: sanitizeInput(form.Get("category")),
		Amount:   sanitizeInput(form.Get("amount")),
		Memo:     sanitizeInput(form.Get("memo")),
	}
}

// ToExpense converts the form into a validated domain record using the
// supplied identifier. Browser-side form validation is the first line
// of defense; this is the authoritative one.
func (f ExpenseForm) ToExpense(id int64) (core.Expense, error) {
	date, err := core.ParseDate(f.Date)
	if err != nil {
		return core.Expense{}, err
	}
	yen, err := core.ParseYen(f.Amount)
	if err != nil {
		return core.Expense{}, err
	}

	e := core.Expense{
		ID:       id,
		Date:     date,
		Category: f.Category,
		Amount:   core.Money{Yen: yen},
		Memo:     f.Memo,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return e, nil
}
