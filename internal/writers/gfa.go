// internal/writers/gfa.go
package writers

import (
	"io"

	"pangfa-core/gfa"
)

// RecordWriter writes GFA records, one line each.
type RecordWriter struct {
	w io.Writer
	n int
}

func NewRecordWriter(w io.Writer) *RecordWriter { return &RecordWriter{w: w} }

// Write formats r and appends a newline. Failures are *gfa.IOError.
func (rw *RecordWriter) Write(r gfa.Record) error {
	if _, err := io.WriteString(rw.w, gfa.Format(r)+"\n"); err != nil {
		return &gfa.IOError{Op: "write", Err: err}
	}
	rw.n++
	return nil
}

// Count is the number of records written so far.
func (rw *RecordWriter) Count() int { return rw.n }
