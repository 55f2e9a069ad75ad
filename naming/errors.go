package naming

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for package naming.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrSyntax is wrapped by every *SyntaxError.
	ErrSyntax = errors.New("filename does not match the naming grammar")

	// ErrInvalid is wrapped by every *ValidationError.
	ErrInvalid = errors.New("filename encodes an invalid date/provenance record")
)

// SyntaxError reports a single structural mismatch between a filename and
// the grammar. Parsing stops at the first mismatch, so a SyntaxError always
// has exactly one cause.
type SyntaxError struct {
	// Field is the positional field that failed (e.g. "month", "sequence",
	// "suffix").
	Field string
	// Token is the offending token as it appeared in the filename.
	Token string
	// Reason describes what was expected.
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid filename syntax: %s %q: %s", e.Field, e.Token, e.Reason)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Violation is a single semantic rule failure. Message carries the
// user-facing text naming the offending value and the accepted range.
type Violation struct {
	Field   string
	Message string
}

// ValidationError is the complete, ordered set of semantic rule violations
// for one filename. It is never empty.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Messages returns the violation messages in report order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return msgs
}
