// Package quick recognizes shorthand day offsets relative to the
// reference date: "+10" or "+ 2 weeks" for days ahead, "-3" or "- 1 week"
// for days back.
//
// The unit token is optional and day-granular: a bare count means days,
// "w"/"week"/"weeks" multiply the count by seven. The sign is required in
// both directions: ForwardFromNow wants a leading "+", BackwardFromNow a
// leading "-", and Bundle tries both. An unsigned digit run never matches
// here, so composing quick recognizers ahead of the numeric layouts leaves
// bare numbers like "22" to the day-only layout.
//
// Importing the package registers its recognizers with the parser
// registry. All recognizers are safe for concurrent use.
package quick

import (
	"time"

	"github.com/syrtcevvi/go-date-parsers/i18n"
	"github.com/syrtcevvi/go-date-parsers/parser"
)

// maxOffsetDigits bounds the day count so the offset arithmetic cannot
// overflow.
const maxOffsetDigits = 9

// units maps unit tokens to their length in days.
var units = i18n.NewLexicon(
	i18n.Entry[int]{Token: "d", Value: 1},
	i18n.Entry[int]{Token: "day", Value: 1},
	i18n.Entry[int]{Token: "days", Value: 1},
	i18n.Entry[int]{Token: "w", Value: 7},
	i18n.Entry[int]{Token: "week", Value: 7},
	i18n.Entry[int]{Token: "weeks", Value: 7},
)

// spaces consumes leading spaces and tabs.
func spaces(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// offsetDays matches "<digits> [unit]" at the head of s and returns the
// offset in days plus the bytes consumed.
func offsetDays(name, s string) (int, int, error) {
	count, pos := 0, 0
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		if pos == maxOffsetDigits {
			return 0, 0, parser.Errf(name, parser.ErrOutOfRange, "day offset too large")
		}
		count = count*10 + int(s[pos]-'0')
		pos++
	}
	if pos == 0 {
		return 0, 0, parser.Errf(name, parser.ErrLexicalMismatch, "want day count digits")
	}

	// Optional unit; back out fully when no unit follows the whitespace.
	ws := spaces(s[pos:])
	if mult, n, ok := units.MatchPrefix(s[pos+ws:]); ok {
		return count * mult, pos + ws + n, nil
	}
	return count, pos, nil
}

// Registration names of the offset recognizers.
const (
	forwardName  = "quick/forward-from-now"
	backwardName = "quick/backward-from-now"
)

var (
	// ForwardFromNow recognizes "+ N [unit]" and resolves to the
	// reference date plus N days (or weeks).
	ForwardFromNow = parser.New(forwardName, forwardFromNow)

	// BackwardFromNow recognizes "- N [unit]" and resolves to the
	// reference date minus N days (or weeks).
	BackwardFromNow = parser.New(backwardName, backwardFromNow)

	// Bundle tries ForwardFromNow, then BackwardFromNow.
	Bundle = parser.First("quick/bundle", ForwardFromNow, BackwardFromNow)
)

func init() {
	parser.Register(ForwardFromNow)
	parser.Register(BackwardFromNow)
	parser.Register(Bundle)
}

func forwardFromNow(s string, ref time.Time) (parser.Match, error) {
	if len(s) == 0 || s[0] != '+' {
		return parser.Match{}, parser.Errf(forwardName, parser.ErrLexicalMismatch,
			"want leading '+'")
	}
	pos := 1 + spaces(s[1:])
	days, n, err := offsetDays(forwardName, s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	return parser.Match{Date: i18n.Midnight(ref.AddDate(0, 0, days)), Consumed: pos + n}, nil
}

func backwardFromNow(s string, ref time.Time) (parser.Match, error) {
	if len(s) == 0 || s[0] != '-' {
		return parser.Match{}, parser.Errf(backwardName, parser.ErrLexicalMismatch,
			"want leading '-'")
	}
	pos := 1 + spaces(s[1:])
	days, n, err := offsetDays(backwardName, s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	return parser.Match{Date: i18n.Midnight(ref.AddDate(0, 0, -days)), Consumed: pos + n}, nil
}
