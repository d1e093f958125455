// Package i18n holds the machinery shared by the per-language date
// recognizers: static token lexicons with longest-token-first matching,
// day-offset recognizers, and weekday arithmetic.
//
// The language packages (i18n/en, i18n/ru) supply only their token tables
// and wire them through the builders here; the resolution semantics are
// identical across languages.
//
// Lexicons are built once at package init and never mutated, so they may
// be shared freely across goroutines.
package i18n

import (
	"time"
	"unicode/utf8"

	"github.com/syrtcevvi/go-date-parsers/internal/fold"
	"github.com/syrtcevvi/go-date-parsers/parser"
)

// Entry associates a lexicon token with its semantic value.
type Entry[T any] struct {
	Token string
	Value T
}

// lexEntry is an Entry with its precomputed case-folded match key.
type lexEntry[T any] struct {
	folded string
	runes  int
	value  T
}

// Lexicon is a static token table matched case-insensitively against the
// head of the input. Longer tokens are tried before shorter ones, so an
// ambiguous prefix ("thu" vs "thurs") always resolves to the most specific
// entry. Matching is exact-token: no fuzzy or typo tolerance.
type Lexicon[T any] struct {
	entries []lexEntry[T]
}

// NewLexicon builds a lexicon from entries. Entries with equal token
// length keep their given order.
func NewLexicon[T any](entries ...Entry[T]) *Lexicon[T] {
	l := &Lexicon[T]{entries: make([]lexEntry[T], 0, len(entries))}
	for _, e := range entries {
		l.entries = append(l.entries, lexEntry[T]{
			folded: fold.Key(e.Token),
			runes:  utf8.RuneCountInString(e.Token),
			value:  e.Value,
		})
	}
	// Stable insertion sort, longest token first.
	for i := 1; i < len(l.entries); i++ {
		for j := i; j > 0 && l.entries[j].runes > l.entries[j-1].runes; j-- {
			l.entries[j], l.entries[j-1] = l.entries[j-1], l.entries[j]
		}
	}
	return l
}

// MatchPrefix returns the value of the longest entry matching a prefix of
// s, together with the byte length of that prefix.
func (l *Lexicon[T]) MatchPrefix(s string) (T, int, bool) {
	for _, e := range l.entries {
		if n, ok := fold.MatchFolded(s, e.folded, e.runes); ok {
			return e.value, n, true
		}
	}
	var zero T
	return zero, 0, false
}

// Midnight returns midnight UTC of t's calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextWeekday returns the closest calendar day on or after ref that falls
// on wd. When ref itself falls on wd, ref's day is returned, so the
// result is always 0 to 6 days forward.
func NextWeekday(ref time.Time, wd time.Weekday) time.Time {
	days := int(wd) - int(ref.Weekday())
	if days < 0 {
		days += 7
	}
	return Midnight(ref.AddDate(0, 0, days))
}

// Offset builds a recognizer that matches token case-insensitively and
// resolves to the reference date shifted by days ("yesterday" is -1,
// "tomorrow" is +1, "today" is 0).
func Offset(name, token string, days int) parser.Recognizer {
	folded := fold.Key(token)
	runes := utf8.RuneCountInString(token)
	return parser.New(name, func(s string, ref time.Time) (parser.Match, error) {
		n, ok := fold.MatchFolded(s, folded, runes)
		if !ok {
			return parser.Match{}, parser.Errf(name, parser.ErrLexicalMismatch, "want %q", token)
		}
		return parser.Match{Date: Midnight(ref.AddDate(0, 0, days)), Consumed: n}, nil
	})
}

// WeekdayFunc matches a weekday name at the head of s and returns the
// weekday plus the number of bytes consumed.
type WeekdayFunc func(s string) (time.Weekday, int, error)

// CurrentWeekdayOnly builds a recognizer that succeeds only when the
// reference date already falls on the matched weekday, resolving to the
// reference day itself. Any other reference weekday fails with
// ErrDayMismatch instead of searching forward.
func CurrentWeekdayOnly(name string, match WeekdayFunc) parser.Recognizer {
	return parser.New(name, func(s string, ref time.Time) (parser.Match, error) {
		wd, n, err := match(s)
		if err != nil {
			return parser.Match{}, err
		}
		if ref.Weekday() != wd {
			return parser.Match{}, parser.Errf(name, parser.ErrDayMismatch,
				"reference date is %s, not %s", ref.Weekday(), wd)
		}
		return parser.Match{Date: Midnight(ref), Consumed: n}, nil
	})
}

// UpcomingWeekday builds a recognizer that resolves a weekday name to the
// closest day on or after the reference date falling on that weekday (see
// NextWeekday).
func UpcomingWeekday(name string, match WeekdayFunc) parser.Recognizer {
	return parser.New(name, func(s string, ref time.Time) (parser.Match, error) {
		wd, n, err := match(s)
		if err != nil {
			return parser.Match{}, err
		}
		return parser.Match{Date: NextWeekday(ref, wd), Consumed: n}, nil
	})
}
