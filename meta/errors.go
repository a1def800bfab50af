package meta

import (
	"fmt"
	"strconv"
)

// ErrSyntaxError matches, via errors.Is, every error caused by a pattern the
// full engine rejects.
var ErrSyntaxError = &Error{
	Kind:    ErrSyntax,
	Message: "invalid pattern",
}

// ErrArgumentError matches, via errors.Is, every error caused by invalid
// caller input other than pattern syntax: an empty pattern set or an
// invalid Config.
var ErrArgumentError = &Error{
	Kind:    ErrArgument,
	Message: "invalid argument",
}

// ErrorKind classifies construction errors.
type ErrorKind uint8

const (
	// ErrSyntax indicates a pattern failed to compile with the full engine.
	ErrSyntax ErrorKind = iota

	// ErrArgument indicates invalid caller input: no patterns, or a Config
	// that does not validate.
	ErrArgument
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "Syntax"
	case ErrArgument:
		return "Argument"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is returned by every constructor in this package. Searches never
// fail.
type Error struct {
	Kind ErrorKind

	// Pattern is the offending pattern, empty for argument errors.
	Pattern string

	// Index is the position of Pattern in a multi-pattern set, or -1.
	Index int

	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "fregex: " + e.Message
	if e.Pattern != "" || e.Kind == ErrSyntax {
		msg += " " + strconv.Quote(e.Pattern)
	}
	if e.Index >= 0 && e.Kind == ErrSyntax {
		msg += " at index " + strconv.Itoa(e.Index)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error (for errors.Is/As).
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is. Two errors are equal when
// their kinds are.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func syntaxError(pattern string, index int, cause error) *Error {
	return &Error{
		Kind:    ErrSyntax,
		Pattern: pattern,
		Index:   index,
		Message: "invalid pattern",
		Cause:   cause,
	}
}

func argumentError(message string, cause error) *Error {
	return &Error{
		Kind:    ErrArgument,
		Index:   -1,
		Message: message,
		Cause:   cause,
	}
}
