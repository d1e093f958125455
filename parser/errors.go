package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds. Every error produced by a recognizer wraps exactly one of
// these sentinels, so callers can classify failures with errors.Is.
var (
	// ErrLexicalMismatch reports input that does not match the expected
	// token or digit shape at all.
	ErrLexicalMismatch = errors.New("lexical mismatch")

	// ErrOutOfRange reports digits that matched lexically but violate the
	// field's range, e.g. month 13.
	ErrOutOfRange = errors.New("value out of range")

	// ErrCalendarInvalid reports resolved fields that do not denote a real
	// calendar date, e.g. day 31 in a 30-day month.
	ErrCalendarInvalid = errors.New("no such calendar date")

	// ErrDayMismatch reports a reference date whose weekday differs from
	// the requested weekday.
	ErrDayMismatch = errors.New("weekday mismatch")

	// ErrNoAlternative reports a bundle whose members all failed.
	ErrNoAlternative = errors.New("no alternative matched")
)

// Error is a recognizer failure: the kind of failure plus the recognizer
// that produced it. Failures are local and non-fatal; inside a bundle they
// mean "try the next alternative".
type Error struct {
	Recognizer string // name of the failing recognizer; may be empty
	Kind       error  // one of the sentinel kinds above
	Detail     string // optional human-readable context
}

// Errf builds an *Error of the given kind with a formatted detail string.
func Errf(recognizer string, kind error, format string, args ...any) *Error {
	return &Error{Recognizer: recognizer, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg = e.Detail + ": " + msg
	}
	if e.Recognizer != "" {
		msg = e.Recognizer + ": " + msg
	}
	return msg
}

// Unwrap exposes the failure kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// BundleError is the aggregate failure of a bundle recognizer. It wraps
// ErrNoAlternative and keeps the per-member failures for diagnostics.
type BundleError struct {
	Recognizer string
	Causes     []error // one failure per member, in bundle order
}

func (e *BundleError) Error() string {
	var b strings.Builder
	b.WriteString(e.Recognizer)
	b.WriteString(": ")
	b.WriteString(ErrNoAlternative.Error())
	if len(e.Causes) > 0 {
		fmt.Fprintf(&b, " (%d alternatives tried)", len(e.Causes))
	}
	return b.String()
}

// Unwrap exposes ErrNoAlternative to errors.Is.
func (e *BundleError) Unwrap() error { return ErrNoAlternative }
