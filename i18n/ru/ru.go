// Package ru recognizes Russian date expressions: relative words
// ("вчера", "послезавтра"), weekday names ("пятница", "пт", "пт."), and
// the Bundle combining them with the numeric day-month-year layouts.
//
// Importing the package registers its recognizers with the parser
// registry. All recognizers are safe for concurrent use.
package ru

import (
	"time"

	"github.com/syrtcevvi/go-date-parsers/i18n"
	"github.com/syrtcevvi/go-date-parsers/numeric"
	"github.com/syrtcevvi/go-date-parsers/parser"
)

// Weekday lexicons. Matching is case-insensitive; longer tokens win over
// shorter ones.
var (
	fullWeekdays = i18n.NewLexicon(
		i18n.Entry[time.Weekday]{Token: "понедельник", Value: time.Monday},
		i18n.Entry[time.Weekday]{Token: "вторник", Value: time.Tuesday},
		i18n.Entry[time.Weekday]{Token: "среда", Value: time.Wednesday},
		i18n.Entry[time.Weekday]{Token: "четверг", Value: time.Thursday},
		i18n.Entry[time.Weekday]{Token: "пятница", Value: time.Friday},
		i18n.Entry[time.Weekday]{Token: "суббота", Value: time.Saturday},
		i18n.Entry[time.Weekday]{Token: "воскресенье", Value: time.Sunday},
	)

	shortWeekdays = i18n.NewLexicon(
		i18n.Entry[time.Weekday]{Token: "пн", Value: time.Monday},
		i18n.Entry[time.Weekday]{Token: "вт", Value: time.Tuesday},
		i18n.Entry[time.Weekday]{Token: "ср", Value: time.Wednesday},
		i18n.Entry[time.Weekday]{Token: "чт", Value: time.Thursday},
		i18n.Entry[time.Weekday]{Token: "пт", Value: time.Friday},
		i18n.Entry[time.Weekday]{Token: "сб", Value: time.Saturday},
		i18n.Entry[time.Weekday]{Token: "вс", Value: time.Sunday},
	)
)

// ShortNamedWeekday matches a short Russian weekday name ("пн", "вс") at
// the head of s.
func ShortNamedWeekday(s string) (time.Weekday, int, error) {
	wd, n, ok := shortWeekdays.MatchPrefix(s)
	if !ok {
		return 0, 0, parser.Errf("ru/short-named-weekday", parser.ErrLexicalMismatch,
			"want short weekday name")
	}
	return wd, n, nil
}

// ShortNamedWeekdayDot matches a short Russian weekday name followed by a
// period ("пт.").
func ShortNamedWeekdayDot(s string) (time.Weekday, int, error) {
	wd, n, err := ShortNamedWeekday(s)
	if err != nil {
		return 0, 0, err
	}
	if n >= len(s) || s[n] != '.' {
		return 0, 0, parser.Errf("ru/short-named-weekday-dot", parser.ErrLexicalMismatch,
			"want trailing period")
	}
	return wd, n + 1, nil
}

// FullNamedWeekday matches a full Russian weekday name ("среда") at the
// head of s.
func FullNamedWeekday(s string) (time.Weekday, int, error) {
	wd, n, ok := fullWeekdays.MatchPrefix(s)
	if !ok {
		return 0, 0, parser.Errf("ru/full-named-weekday", parser.ErrLexicalMismatch,
			"want full weekday name")
	}
	return wd, n, nil
}

// NamedWeekday matches any Russian weekday name, trying the full name,
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
	// DayBeforeYesterday recognizes "позавчера" as two days before the
	// reference date.
	DayBeforeYesterday = i18n.Offset("ru/day-before-yesterday", "позавчера", -2)

	// Yesterday recognizes "вчера" as the day before the reference date.
	Yesterday = i18n.Offset("ru/yesterday", "вчера", -1)

	// Today recognizes "сегодня" as the reference date itself.
	Today = i18n.Offset("ru/today", "сегодня", 0)

	// Tomorrow recognizes "завтра" as the day after the reference date.
	Tomorrow = i18n.Offset("ru/tomorrow", "завтра", 1)

	// DayAfterTomorrow recognizes "послезавтра" as two days after the
	// reference date.
	DayAfterTomorrow = i18n.Offset("ru/day-after-tomorrow", "послезавтра", 2)

	// CurrentNamedWeekdayOnly recognizes a weekday name, succeeding only
	// when the reference date already falls on that weekday.
	CurrentNamedWeekdayOnly = i18n.CurrentWeekdayOnly("ru/current-named-weekday", NamedWeekday)

	// NextNamedWeekday recognizes a weekday name as the closest day on or
	// after the reference date falling on that weekday.
	NextNamedWeekday = i18n.UpcomingWeekday("ru/next-named-weekday", NamedWeekday)
)

// Bundle tries, in order: day-month-year, day-month, day-only,
// day-before-yesterday, yesterday, tomorrow, day-after-tomorrow,
// current-weekday-only. The order is a contract; "позавчера" is listed
// before "вчера" but matching is exact-token, so neither shadows the
// other.
var Bundle = parser.First("ru/bundle",
	numeric.DayMonthYear,
	numeric.DayMonth,
	numeric.DayOnly,
	DayBeforeYesterday,
	Yesterday,
	Tomorrow,
	DayAfterTomorrow,
	CurrentNamedWeekdayOnly,
)

func init() {
	parser.Register(DayBeforeYesterday)
	parser.Register(Yesterday)
	parser.Register(Today)
	parser.Register(Tomorrow)
	parser.Register(DayAfterTomorrow)
	parser.Register(CurrentNamedWeekdayOnly)
	parser.Register(NextNamedWeekday)
	parser.Register(Bundle)
}
