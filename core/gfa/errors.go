package gfa

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors
var (
	ErrFormat   = errors.New("malformed GFA record")
	ErrIO       = errors.New("GFA stream failure")
	ErrNotFound = errors.New("not found")
)

// FormatError reports an unparsable field, a missing column or an
// unexpected record layout. Line is 1-based and 0 when unknown.
type FormatError struct {
	Line   int
	Kind   Kind
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	var b []byte
	if e.Line > 0 {
		b = fmt.Appendf(b, "line %d: ", e.Line)
	}
	b = fmt.Appendf(b, "%s-line", e.Kind)
	if e.Field != "" {
		b = fmt.Appendf(b, " field %s", e.Field)
	}
	b = fmt.Appendf(b, ": %s", e.Reason)
	return string(b)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// IOError reports a failure to open, read or write a stream.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// NotFoundError reports a lookup of a node or a named traversal that the
// graph does not hold.
type NotFoundError struct {
	What string // "node", "segment", "path", ...
	ID   NodeID
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %q: %v", e.What, e.Name, ErrNotFound)
	}
	return fmt.Sprintf("%s %d: %v", e.What, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func formatErr(kind Kind, field, reason string, a ...any) *FormatError {
	if len(a) > 0 {
		reason = fmt.Sprintf(reason, a...)
	}
	return &FormatError{Kind: kind, Field: field, Reason: reason}
}
