// Package en recognizes English date expressions: relative words
// ("yesterday", "tomorrow"), weekday names ("Friday", "fri", "fri."), and
// bundles combining them with the numeric layouts.
//
// English is used in both day-month-year and month-day-year regions, so
// the package exposes one bundle per field order: BundleDMY reads "03/12"
// as the 3rd of December, BundleMDY as March 12th.
//
// Importing the package registers its recognizers with the parser
// registry. All recognizers are safe for concurrent use.
package en

import (
	"time"

	"github.com/syrtcevvi/go-date-parsers/i18n"
	"github.com/syrtcevvi/go-date-parsers/numeric"
	"github.com/syrtcevvi/go-date-parsers/parser"
)

// Weekday lexicons. Matching is case-insensitive; longer tokens win over
// shorter ones, so "thurs" is never read as "thu" plus trailing input.
var (
	fullWeekdays = i18n.NewLexicon(
		i18n.Entry[time.Weekday]{Token: "monday", Value: time.Monday},
		i18n.Entry[time.Weekday]{Token: "tuesday", Value: time.Tuesday},
		i18n.Entry[time.Weekday]{Token: "wednesday", Value: time.Wednesday},
		i18n.Entry[time.Weekday]{Token: "thursday", Value: time.Thursday},
		i18n.Entry[time.Weekday]{Token: "friday", Value: time.Friday},
		i18n.Entry[time.Weekday]{Token: "saturday", Value: time.Saturday},
		i18n.Entry[time.Weekday]{Token: "sunday", Value: time.Sunday},
	)

	shortWeekdays = i18n.NewLexicon(
		i18n.Entry[time.Weekday]{Token: "mon", Value: time.Monday},
		i18n.Entry[time.Weekday]{Token: "tue", Value: time.Tuesday},
		i18n.Entry[time.Weekday]{Token: "tues", Value: time.Tuesday},
		i18n.Entry[time.Weekday]{Token: "wed", Value: time.Wednesday},
		i18n.Entry[time.Weekday]{Token: "thu", Value: time.Thursday},
		i18n.Entry[time.Weekday]{Token: "thur", Value: time.Thursday},
		i18n.Entry[time.Weekday]{Token: "thurs", Value: time.Thursday},
		i18n.Entry[time.Weekday]{Token: "fri", Value: time.Friday},
		i18n.Entry[time.Weekday]{Token: "sat", Value: time.Saturday},
		i18n.Entry[time.Weekday]{Token: "sun", Value: time.Sunday},
	)
)

// ShortNamedWeekday matches a short English weekday name ("mon", "tues")
// at the head of s.
func ShortNamedWeekday(s string) (time.Weekday, int, error) {
	wd, n, ok := shortWeekdays.MatchPrefix(s)
	if !ok {
		return 0, 0, parser.Errf("en/short-named-weekday", parser.ErrLexicalMismatch,
			"want short weekday name")
	}
	return wd, n, nil
}

// ShortNamedWeekdayDot matches a short English weekday name followed by a
// period ("fri."). The dotted form is its own alternative, not derived by
// stripping punctuation.
func ShortNamedWeekdayDot(s string) (time.Weekday, int, error) {
	wd, n, err := ShortNamedWeekday(s)
	if err != nil {
		return 0, 0, err
	}
	if n >= len(s) || s[n] != '.' {
		return 0, 0, parser.Errf("en/short-named-weekday-dot", parser.ErrLexicalMismatch,
			"want trailing period")
	}
	return wd, n + 1, nil
}

// FullNamedWeekday matches a full English weekday name ("Wednesday") at
// the head of s.
func FullNamedWeekday(s string) (time.Weekday, int, error) {
	wd, n, ok := fullWeekdays.MatchPrefix(s)
	if !ok {
		return 0, 0, parser.Errf("en/full-named-weekday", parser.ErrLexicalMismatch,
			"want full weekday name")
	}
	return wd, n, nil
}

// NamedWeekday matches any English weekday name, trying the full name,
// then the dotted short name, then the bare short name.
func NamedWeekday(s string) (time.Weekday, int, error) {
	if wd, n, err := FullNamedWeekday(s); err == nil {
		return wd, n, nil
	}
	if wd, n, err := ShortNamedWeekdayDot(s); err == nil {
		return wd, n, nil
	}
	return ShortNamedWeekday(s)
}

var (
	// Yesterday recognizes "yesterday" as the day before the reference date.
	Yesterday = i18n.Offset("en/yesterday", "yesterday", -1)

	// Today recognizes "today" as the reference date itself.
	Today = i18n.Offset("en/today", "today", 0)

	// Tomorrow recognizes "tomorrow" as the day after the reference date.
	Tomorrow = i18n.Offset("en/tomorrow", "tomorrow", 1)

	// CurrentNamedWeekdayOnly recognizes a weekday name, succeeding only
	// when the reference date already falls on that weekday.
	CurrentNamedWeekdayOnly = i18n.CurrentWeekdayOnly("en/current-named-weekday", NamedWeekday)

	// NextNamedWeekday recognizes a weekday name as the closest day on or
	// after the reference date falling on that weekday.
	NextNamedWeekday = i18n.UpcomingWeekday("en/next-named-weekday", NamedWeekday)
)

// The documented bundles. Member order is a contract: the full numeric
// layout is tried before its prefixes, and numeric layouts before the
// language-specific words.
var (
	// BundleDMY tries, in order: day-month-year, day-month, day-only,
	// yesterday, tomorrow, current-weekday-only.
	BundleDMY = parser.First("en/bundle-dmy",
		numeric.DayMonthYear,
		numeric.DayMonth,
		numeric.DayOnly,
		Yesterday,
		Tomorrow,
		CurrentNamedWeekdayOnly,
	)

	// BundleMDY tries, in order: month-day-year, month-day, day-only,
	// yesterday, tomorrow, current-weekday-only.
	BundleMDY = parser.First("en/bundle-mdy",
		numeric.MonthDayYear,
		numeric.MonthDay,
		numeric.DayOnly,
		Yesterday,
		Tomorrow,
		CurrentNamedWeekdayOnly,
	)
)

func init() {
	parser.Register(Yesterday)
	parser.Register(Today)
	parser.Register(Tomorrow)
	parser.Register(CurrentNamedWeekdayOnly)
	parser.Register(NextNamedWeekday)
	parser.Register(BundleDMY)
	parser.Register(BundleMDY)
}
