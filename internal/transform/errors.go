package transform

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTable is wrapped by errors in auxiliary TSV inputs.
var ErrTable = errors.New("malformed table")

// TableError reports a bad line in an auxiliary TSV file.
type TableError struct {
	Path   string
	Line   int
	Reason string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

func (e *TableError) Unwrap() error { return ErrTable }
