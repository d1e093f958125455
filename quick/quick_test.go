package quick

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

func TestForwardFromNow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		want     time.Time
		consumed int
		wantErr  error
	}{
		{name: "signed with space", in: "+ 1", want: d(2024, time.March, 16), consumed: 3},
		{name: "signed compact", in: "+42", want: d(2024, time.April, 26), consumed: 3},
		{name: "tab after sign", in: "+\t42", want: d(2024, time.April, 26), consumed: 4},
		{name: "day unit", in: "+3 days", want: d(2024, time.March, 18), consumed: 7},
		{name: "week unit", in: "+2 weeks", want: d(2024, time.March, 29), consumed: 8},
		{name: "short week unit", in: "+1w", want: d(2024, time.March, 22), consumed: 3},
		{name: "zero", in: "+0", want: d(2024, time.March, 15), consumed: 2},
		{name: "sign required", in: "10", wantErr: parser.ErrLexicalMismatch},
		{name: "unit needs count", in: "+ days", wantErr: parser.ErrLexicalMismatch},
		{name: "no digits", in: "abc", wantErr: parser.ErrLexicalMismatch},
		{name: "negative is not forward", in: "-3", wantErr: parser.ErrLexicalMismatch},
		{name: "numeric date is not an offset", in: "22-04", wantErr: parser.ErrLexicalMismatch},
		{name: "absurd count", in: "+9999999999", wantErr: parser.ErrOutOfRange},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			match, err := ForwardFromNow.Parse(tt.in, ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, match.Date)
			assert.Equal(t, tt.consumed, match.Consumed)
		})
	}
}

func TestBackwardFromNow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		want     time.Time
		consumed int
		wantErr  error
	}{
		{name: "signed with space", in: "- 1", want: d(2024, time.March, 14), consumed: 3},
		{name: "signed compact", in: "-123", want: d(2023, time.November, 13), consumed: 4},
		{name: "week unit", in: "- 1 week", want: d(2024, time.March, 8), consumed: 8},
		{name: "sign required", in: "3", wantErr: parser.ErrLexicalMismatch},
		{name: "sign alone", in: "-", wantErr: parser.ErrLexicalMismatch},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			match, err := BackwardFromNow.Parse(tt.in, ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, match.Date)
			assert.Equal(t, tt.consumed, match.Consumed)
		})
	}
}

func TestBundle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr error
	}{
		{name: "explicit plus", in: "+\t42", want: d(2024, time.April, 26)},
		{name: "explicit minus spaced", in: "-   1", want: d(2024, time.March, 14)},
		{name: "explicit minus", in: "-123", want: d(2023, time.November, 13)},
		{name: "bare count needs a sign", in: "7", wantErr: parser.ErrNoAlternative},
		{name: "numeric date falls through", in: "22-04", wantErr: parser.ErrNoAlternative},
		{name: "no digits", in: "someday", wantErr: parser.ErrNoAlternative},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			match, err := Bundle.Parse(tt.in, ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, match.Date)
		})
	}
}

// TestUnitNotConsumedWithoutMatch checks that trailing words that are not
// unit tokens stay unconsumed.
func TestUnitNotConsumedWithoutMatch(t *testing.T) {
	t.Parallel()

	match, err := ForwardFromNow.Parse("+3 години", ref)
	require.NoError(t, err)
	assert.Equal(t, d(2024, time.March, 18), match.Date)
	assert.Equal(t, 2, match.Consumed) // "+3" only
}

func TestRecognizersRegistered(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"quick/forward-from-now", "quick/backward-from-now", "quick/bundle",
	} {
		_, ok := parser.Lookup(name)
		assert.True(t, ok, "recognizer %s not registered", name)
	}
}
