// Package parser defines the recognizer contract shared by every date
// recognizer in this module, and the rules used to combine recognizers
// into larger ones.
//
// A Recognizer is a named, stateless function from an input string and a
// caller-supplied reference date to a resolved calendar date. Recognizers
// consume a prefix of the input and report how many bytes they consumed;
// callers that need the whole input to match can wrap a recognizer with
// Standalone.
//
// Recognizers never read the system clock. Every call receives the
// reference date explicitly, which keeps parsing deterministic and
// testable without time mocking. Only the calendar fields (year, month,
// day) of the reference date are read; resolved dates are always midnight
// UTC of the matched calendar day.
//
// Importing a recognizer package (numeric, quick, i18n/en, i18n/ru)
// registers its recognizers in a process-wide registry, so the set of
// recognizers compiled into a binary is selected by its imports. Parse
// resolves a registered recognizer by name.
//
// All functions are safe for concurrent use by multiple goroutines.
package parser

import "time"

// Match is the result of a successful recognition: the resolved date and
// the number of input bytes the recognizer consumed.
type Match struct {
	Date     time.Time // midnight UTC of the resolved calendar day
	Consumed int       // bytes of input consumed
}

// Func is the underlying shape of a recognizer: it matches a prefix of
// input and resolves it against the reference date ref.
type Func func(input string, ref time.Time) (Match, error)

// Recognizer is a named, stateless date recognizer. The zero value is not
// usable; construct recognizers with New or First.
type Recognizer struct {
	name string
	fn   Func
}

// New returns a recognizer with the given name backed by fn.
func New(name string, fn Func) Recognizer {
	return Recognizer{name: name, fn: fn}
}

// Name returns the recognizer's registration name.
func (r Recognizer) Name() string { return r.name }

// Parse matches a prefix of input against the reference date ref.
func (r Recognizer) Parse(input string, ref time.Time) (Match, error) {
	return r.fn(input, ref)
}

// First returns a bundle recognizer that tries each member in order and
// commits to the first success. The member order is part of the bundle's
// contract: earlier, more specific recognizers must not be shadowed by
// looser ones. When every member fails, First returns a *BundleError
// wrapping ErrNoAlternative with the individual failures preserved for
// diagnostics.
func First(name string, members ...Recognizer) Recognizer {
	return Recognizer{name: name, fn: func(input string, ref time.Time) (Match, error) {
		causes := make([]error, 0, len(members))
		for _, m := range members {
			match, err := m.Parse(input, ref)
			if err == nil {
				return match, nil
			}
			causes = append(causes, err)
		}
		return Match{}, &BundleError{Recognizer: name, Causes: causes}
	}}
}

// Standalone wraps rec so that a match must consume the whole input.
// A match that leaves trailing input fails with ErrLexicalMismatch.
func Standalone(rec Recognizer) Recognizer {
	name := rec.name + "/standalone"
	return Recognizer{name: name, fn: func(input string, ref time.Time) (Match, error) {
		match, err := rec.Parse(input, ref)
		if err != nil {
			return Match{}, err
		}
		if match.Consumed != len(input) {
			return Match{}, Errf(name, ErrLexicalMismatch,
				"trailing input %q", input[match.Consumed:])
		}
		return match, nil
	}}
}
