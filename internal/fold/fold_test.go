package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Monday", "monday"},
		{"FRIDAY", "friday"},
		{"Вторник", "вторник"},
		{"СУББОТА", "суббота"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.in), "Key(%q)", tt.in)
	}
}

func TestMatchPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		s     string
		token string
		n     int
		ok    bool
	}{
		{name: "exact", s: "monday", token: "monday", n: 6, ok: true},
		{name: "mixed case", s: "MonDay", token: "monday", n: 6, ok: true},
		{name: "prefix with rest", s: "fri.", token: "fri", n: 3, ok: true},
		{name: "cyrillic upper", s: "ВТОРНИК и среда", token: "вторник", n: 14, ok: true},
		{name: "input too short", s: "mon", token: "monday"},
		{name: "different word", s: "tuesday", token: "monday"},
		{name: "empty token", s: "monday", token: "", n: 0, ok: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, ok := MatchPrefix(tt.s, tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestMatchFolded(t *testing.T) {
	t.Parallel()

	// Pre-folded form of "среда" with the rune count, as lexicons store it.
	n, ok := MatchFolded("Среда вечером", "среда", 5)
	assert.True(t, ok)
	assert.Equal(t, 10, n) // five Cyrillic runes, two bytes each

	_, ok = MatchFolded("Сред", "среда", 5)
	assert.False(t, ok)
}
