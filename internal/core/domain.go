package core

import (
	"errors"
	"strings"
	"time"
)

type (
	Date struct {
		time.Time
	}

	// Money is an amount in whole yen. There is no minor unit.
	Money struct {
		Yen int64
	}

	// Expense is one user-entered spending event. ID doubles as the
	// deletion key and is assigned from the creation timestamp.
	Expense struct {
		ID       int64
		Date     Date
		Category string
		Amount   Money
		Memo     string
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidID     = errors.New("invalid id")
	ErrDuplicateID   = errors.New("duplicate id")
)

// DateLayout is the wire and form encoding for dates.
const DateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String returns the YYYY-MM-DD encoding.
func (d Date) String() string {
	return d.Format(DateLayout)
}

func (m Money) Validate() error {
	if m.Yen <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if e.ID <= 0 {
		return ErrInvalidID
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if len(e.Category) > 100 {
		return errors.New("category too long (max 100 characters)")
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if len(e.Memo) > 200 {
		return errors.New("memo too long (max 200 characters)")
	}
	return nil
}

// NewID returns an identifier derived from the current time in
// milliseconds, bumped to stay strictly above after so that records
// created within the same millisecond keep distinct ids.
func NewID(after int64) int64 {
	id := time.Now().UnixMilli()
	if id <= after {
		id = after + 1
	}
	return id
}
