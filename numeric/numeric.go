// Package numeric recognizes loosely-formatted numeric dates such as
// "13.06.2024", "03/12" or a bare "9".
//
// The package is built from three kinds of units:
//
//   - Field matchers (Day, Month, Year4) consume a bounded run of ASCII
//     digits and enforce the field's lexical range.
//   - The separator matcher (Sep) consumes a possibly-empty run of
//     date-part separators; separators within one date may differ, so
//     "12/04-2023" and "12-04.2023" are both accepted.
//   - Layout composers sequence fields and separators into the six
//     recognized orderings (day; day-month; month-day; day-month-year;
//     month-day-year; year-month-day).
//
// Fields missing from a layout are defaulted from the reference date:
// "01/02" parsed as day-month against a reference date in 2024 resolves to
// 2024-02-01. Calendar validity is checked only after defaulting, so a
// lexically valid day like 31 still fails for a 30-day month.
//
// All recognizers are safe for concurrent use by multiple goroutines.
package numeric

import (
	"github.com/syrtcevvi/go-date-parsers/parser"
)

// Lexical field ranges. Calendar validity (e.g. Feb 30) is not checked
// here; that is the resolver's job.
const (
	minDay   = 1
	maxDay   = 31
	minMonth = 1
	maxMonth = 12

	fieldWidth = 2 // max digits in a day or month field
	yearWidth  = 4 // exact digits in a year field
)

// digits consumes up to max leading ASCII digits of s and returns the
// parsed value and the number of bytes consumed.
func digits(s string, max int) (value, n int) {
	for n < len(s) && n < max && s[n] >= '0' && s[n] <= '9' {
		value = value*10 + int(s[n]-'0')
		n++
	}
	return value, n
}

// Day matches one or two leading digits as a day-of-month. It returns the
// value and the number of bytes consumed. Values outside 1..31 fail with
// ErrOutOfRange; absent digits fail with ErrLexicalMismatch.
func Day(s string) (int, int, error) {
	v, n := digits(s, fieldWidth)
	if n == 0 {
		return 0, 0, parser.Errf("", parser.ErrLexicalMismatch, "want day digits")
	}
	if v < minDay || v > maxDay {
		return 0, 0, parser.Errf("", parser.ErrOutOfRange, "day %d outside %d..%d", v, minDay, maxDay)
	}
	return v, n, nil
}

// Month matches one or two leading digits as a month number. Values
// outside 1..12 fail with ErrOutOfRange.
func Month(s string) (int, int, error) {
	v, n := digits(s, fieldWidth)
	if n == 0 {
		return 0, 0, parser.Errf("", parser.ErrLexicalMismatch, "want month digits")
	}
	if v < minMonth || v > maxMonth {
		return 0, 0, parser.Errf("", parser.ErrOutOfRange, "month %d outside %d..%d", v, minMonth, maxMonth)
	}
	return v, n, nil
}

// Year4 matches exactly four leading digits as a year. The value is not
// range-restricted beyond its width; fewer than four digits fail with
// ErrLexicalMismatch.
func Year4(s string) (int, int, error) {
	v, n := digits(s, yearWidth)
	if n < yearWidth {
		return 0, 0, parser.Errf("", parser.ErrLexicalMismatch, "want 4 year digits")
	}
	return v, n, nil
}

// Sep consumes the longest leading run of date-part separators ('/', '-',
// '.', spaces and tabs) and returns its byte length. An empty run is
// valid: separator presence is optional because every field has a bounded
// digit width.
func Sep(s string) int {
	n := 0
	for n < len(s) {
		switch s[n] {
		case '/', '-', '.', ' ', '\t':
			n++
		default:
			return n
		}
	}
	return n
}
