// Package fold provides case-insensitive prefix matching for lexicon
// tokens, built on Unicode case folding from golang.org/x/text.
//
// Lexicon tokens in this module are plain ASCII or Cyrillic words, for
// which case folding maps runes one-to-one. Tokens whose folded form has a
// different rune count (e.g. containing ß) are not supported.
//
// All functions are safe for concurrent use.
package fold

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Key returns the case-folded form of s, suitable for precomputing lexicon
// match keys.
func Key(s string) string {
	// cases.Caser carries internal state, so a fresh one is needed per call.
	return cases.Fold().String(s)
}

// MatchPrefix reports whether a prefix of s case-folds to the same string
// as token, returning the byte length of that prefix.
func MatchPrefix(s, token string) (int, bool) {
	return MatchFolded(s, Key(token), utf8.RuneCountInString(token))
}

// MatchFolded is MatchPrefix for a token given in pre-folded form together
// with its rune count.
func MatchFolded(s, folded string, runes int) (int, bool) {
	n, ok := prefixLen(s, runes)
	if !ok {
		return 0, false
	}
	if Key(s[:n]) != folded {
		return 0, false
	}
	return n, true
}

// prefixLen returns the byte length of the prefix of s holding n runes.
// ok is false when s has fewer than n runes.
func prefixLen(s string, n int) (int, bool) {
	i := 0
	for ; n > 0; n-- {
		if i >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i, true
}
