// Package core provides the expense domain model and money handling.
//
// This file contains functions for parsing yen amounts from user input.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseYen converts a string to a whole-yen amount.
//
// Only unsigned digit sequences are accepted; the result must be a
// positive amount. Returns ErrInvalidAmount for blanks, signs, decimal
// separators, non-digits, zero, or values that overflow int64.
//
// Examples:
//
//	ParseYen("1000")  -> 1000, nil
//	ParseYen("0")     -> 0, ErrInvalidAmount
//	ParseYen("12.5")  -> 0, ErrInvalidAmount
//	ParseYen("-300")  -> 0, ErrInvalidAmount
func ParseYen(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
