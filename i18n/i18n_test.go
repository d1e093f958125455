package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syrtcevvi/go-date-parsers/parser"
)

// ref is the fixed reference date used across tests: Friday, 2024-03-15.
var ref = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// d builds a UTC date-only time.
func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestLexiconLongestFirst(t *testing.T) {
	t.Parallel()

	// "thu" is a prefix of "thurs"; the longer token must win even when
	// listed later.
	lex := NewLexicon(
		Entry[int]{Token: "thu", Value: 1},
		Entry[int]{Token: "thurs", Value: 2},
	)

	value, n, ok := lex.MatchPrefix("thursday")
	require.True(t, ok)
	assert.Equal(t, 2, value)
	assert.Equal(t, 5, n)

	value, n, ok = lex.MatchPrefix("thu?")
	require.True(t, ok)
	assert.Equal(t, 1, value)
	assert.Equal(t, 3, n)

	_, _, ok = lex.MatchPrefix("wed")
	assert.False(t, ok)
}

func TestLexiconCaseInsensitive(t *testing.T) {
	t.Parallel()

	lex := NewLexicon(
		Entry[int]{Token: "вторник", Value: 2},
		Entry[int]{Token: "mon", Value: 1},
	)

	for _, in := range []string{"вторник", "Вторник", "ВТОРНИК"} {
		value, n, ok := lex.MatchPrefix(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, 2, value)
		assert.Equal(t, len(in), n)
	}

	value, _, ok := lex.MatchPrefix("MONDAY")
	require.True(t, ok)
	assert.Equal(t, 1, value)
}

func TestLexiconStableForEqualLengths(t *testing.T) {
	t.Parallel()

	// Equal-length entries keep their listed order.
	lex := NewLexicon(
		Entry[int]{Token: "aaa", Value: 1},
		Entry[int]{Token: "aab", Value: 2},
	)
	value, _, ok := lex.MatchPrefix("aaa")
	require.True(t, ok)
	assert.Equal(t, 1, value)
}

func TestMidnight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, d(2024, time.March, 15), Midnight(ref))
	assert.Equal(t, d(2024, time.March, 15), Midnight(d(2024, time.March, 15)))
}

func TestNextWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wd   time.Weekday
		want time.Time
	}{
		{name: "same day counts as zero forward", wd: time.Friday, want: d(2024, time.March, 15)},
		{name: "tomorrow", wd: time.Saturday, want: d(2024, time.March, 16)},
		{name: "wraps the week", wd: time.Monday, want: d(2024, time.March, 18)},
		{name: "furthest forward", wd: time.Thursday, want: d(2024, time.March, 21)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NextWeekday(ref, tt.wd)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wd, got.Weekday())
		})
	}

	// Property: for every reference day and target weekday, the result is
	// the requested weekday, 0 to 6 days forward.
	for dayShift := 0; dayShift < 7; dayShift++ {
		r := ref.AddDate(0, 0, dayShift)
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			got := NextWeekday(r, wd)
			require.Equal(t, wd, got.Weekday())
			forward := int(got.Sub(Midnight(r)).Hours() / 24)
			assert.GreaterOrEqual(t, forward, 0)
			assert.LessOrEqual(t, forward, 6)
		}
	}
}

func TestOffset(t *testing.T) {
	t.Parallel()

	rec := Offset("test/back-two", "spam", -2)

	match, err := rec.Parse("SPAM and eggs", ref)
	require.NoError(t, err)
	assert.Equal(t, d(2024, time.March, 13), match.Date)
	assert.Equal(t, 4, match.Consumed)

	_, err = rec.Parse("eggs", ref)
	assert.ErrorIs(t, err, parser.ErrLexicalMismatch)

	// Offsets cross month boundaries through plain date arithmetic.
	match, err = rec.Parse("spam", d(2024, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, d(2024, time.February, 28), match.Date)
}

// stubWeekday is a WeekdayFunc fixed to Wednesday, consuming three bytes.
func stubWeekday(s string) (time.Weekday, int, error) {
	if len(s) < 3 {
		return 0, 0, parser.Errf("stub", parser.ErrLexicalMismatch, "too short")
	}
	return time.Wednesday, 3, nil
}

func TestCurrentWeekdayOnly(t *testing.T) {
	t.Parallel()

	rec := CurrentWeekdayOnly("test/current-wed", stubWeekday)

	// Reference date is a Wednesday: succeeds with the reference day.
	wed := d(2024, time.March, 13)
	match, err := rec.Parse("wed", wed)
	require.NoError(t, err)
	assert.Equal(t, wed, match.Date)
	assert.Equal(t, 3, match.Consumed)

	// Any other reference weekday fails without searching forward.
	_, err = rec.Parse("wed", ref)
	assert.ErrorIs(t, err, parser.ErrDayMismatch)

	// Token failures pass through as lexical mismatches.
	_, err = rec.Parse("x", wed)
	assert.ErrorIs(t, err, parser.ErrLexicalMismatch)
}

func TestUpcomingWeekday(t *testing.T) {
	t.Parallel()

	rec := UpcomingWeekday("test/next-wed", stubWeekday)

	// Friday reference: next Wednesday is five days ahead.
	match, err := rec.Parse("wed", ref)
	require.NoError(t, err)
	assert.Equal(t, d(2024, time.March, 20), match.Date)

	// Wednesday reference: same day.
	wed := d(2024, time.March, 13)
	match, err = rec.Parse("wed", wed)
	require.NoError(t, err)
	assert.Equal(t, wed, match.Date)
}
