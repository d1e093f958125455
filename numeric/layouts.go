package numeric

import (
	"time"

	"github.com/syrtcevvi/go-date-parsers/parser"
)

// Explicit-field bits for one parsed layout.
const (
	hasYear = 1 << iota
	hasMonth
	hasDay
)

// fields holds the raw values one layout produced before defaulting.
// It never escapes a composer invocation.
type fields struct {
	year, month, day int
	explicit         uint8
}

// resolve is the single chokepoint all six layouts converge on: it
// substitutes missing fields from the reference date and attempts calendar
// construction. consumed is the byte count the layout matched.
func resolve(name string, f fields, ref time.Time, consumed int) (parser.Match, error) {
	year, month, day := ref.Year(), int(ref.Month()), ref.Day()
	if f.explicit&hasYear != 0 {
		year = f.year
	}
	if f.explicit&hasMonth != 0 {
		month = f.month
	}
	if f.explicit&hasDay != 0 {
		day = f.day
	}

	// time.Date normalizes overflowing fields, so a round-trip mismatch
	// means the combination does not denote a real calendar day.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return parser.Match{}, parser.Errf(name, parser.ErrCalendarInvalid,
			"%04d-%02d-%02d", year, month, day)
	}
	return parser.Match{Date: t, Consumed: consumed}, nil
}

// Registration names of the layout recognizers.
const (
	dayOnlyName      = "numeric/dd"
	dayMonthName     = "numeric/dd-mm"
	monthDayName     = "numeric/mm-dd"
	dayMonthYearName = "numeric/dd-mm-y4"
	monthDayYearName = "numeric/mm-dd-y4"
	yearMonthDayName = "numeric/y4-mm-dd"
)

// The six layout composers. Partial layouts consume no trailing
// separator: "13-" as day-only matches "13" and leaves "-" unconsumed.
var (
	// DayOnly recognizes a bare day number ("9", "13"), defaulting month
	// and year from the reference date.
	DayOnly = parser.New(dayOnlyName, dayOnly)

	// DayMonth recognizes "dd mm" with a flexible separator ("3/9",
	// "03-09"), defaulting the year from the reference date.
	DayMonth = parser.New(dayMonthName, dayMonth)

	// MonthDay recognizes "mm dd" with a flexible separator ("10/18"),
	// defaulting the year from the reference date.
	MonthDay = parser.New(monthDayName, monthDay)

	// DayMonthYear recognizes "dd mm yyyy" with flexible separators
	// ("13/06/2024", "13.06-2024").
	DayMonthYear = parser.New(dayMonthYearName, dayMonthYear)

	// MonthDayYear recognizes "mm dd yyyy" with flexible separators
	// ("06-13-2024").
	MonthDayYear = parser.New(monthDayYearName, monthDayYear)

	// YearMonthDay recognizes "yyyy mm dd" with flexible separators
	// ("2024-06-13").
	YearMonthDay = parser.New(yearMonthDayName, yearMonthDay)
)

func init() {
	parser.Register(DayOnly)
	parser.Register(DayMonth)
	parser.Register(MonthDay)
	parser.Register(DayMonthYear)
	parser.Register(MonthDayYear)
	parser.Register(YearMonthDay)
}

func dayOnly(s string, ref time.Time) (parser.Match, error) {
	d, n, err := Day(s)
	if err != nil {
		return parser.Match{}, err
	}
	return resolve(dayOnlyName, fields{day: d, explicit: hasDay}, ref, n)
}

func dayMonth(s string, ref time.Time) (parser.Match, error) {
	d, n, err := Day(s)
	if err != nil {
		return parser.Match{}, err
	}
	pos := n
	pos += Sep(s[pos:])
	m, n, err := Month(s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	pos += n
	return resolve(dayMonthName, fields{month: m, day: d, explicit: hasMonth | hasDay}, ref, pos)
}

func monthDay(s string, ref time.Time) (parser.Match, error) {
	m, n, err := Month(s)
	if err != nil {
		return parser.Match{}, err
	}
	pos := n
	pos += Sep(s[pos:])
	d, n, err := Day(s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	pos += n
	return resolve(monthDayName, fields{month: m, day: d, explicit: hasMonth | hasDay}, ref, pos)
}

func dayMonthYear(s string, ref time.Time) (parser.Match, error) {
	d, n, err := Day(s)
	if err != nil {
		return parser.Match{}, err
	}
	pos := n
	pos += Sep(s[pos:])
	m, n, err := Month(s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	pos += n
	pos += Sep(s[pos:])
	y, n, err := Year4(s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	pos += n
	f := fields{year: y, month: m, day: d, explicit: hasYear | hasMonth | hasDay}
	return resolve(dayMonthYearName, f, ref, pos)
}

func monthDayYear(s string, ref time.Time) (parser.Match, error) {
	m, n, err := Month(s)
	if err != nil {
		return parser.Match{}, err
	}
	pos := n
	pos += Sep(s[pos:])
	d, n, err := Day(s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	pos += n
	pos += Sep(s[pos:])
	y, n, err := Year4(s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	pos += n
	f := fields{year: y, month: m, day: d, explicit: hasYear | hasMonth | hasDay}
	return resolve(monthDayYearName, f, ref, pos)
}

func yearMonthDay(s string, ref time.Time) (parser.Match, error) {
	y, n, err := Year4(s)
	if err != nil {
		return parser.Match{}, err
	}
	pos := n
	pos += Sep(s[pos:])
	m, n, err := Month(s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	pos += n
	pos += Sep(s[pos:])
	d, n, err := Day(s[pos:])
	if err != nil {
		return parser.Match{}, err
	}
	pos += n
	f := fields{year: y, month: m, day: d, explicit: hasYear | hasMonth | hasDay}
	return resolve(yearMonthDayName, f, ref, pos)
}
