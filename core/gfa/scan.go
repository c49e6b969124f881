package gfa

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Scan parses r line by line and calls fn for each record, in input
// order. A *FormatError carries the 1-based line number; read failures
// are *IOError; errors returned by fn are passed through unchanged.
func Scan(r io.Reader, fn func(Record) error) error {
	br := bufio.NewReaderSize(r, 1<<16)
	ln := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return &IOError{Op: "read", Err: err}
		}
		if len(line) == 0 && err == io.EOF {
			return nil
		}
		ln++
		rec, perr := Parse(line)
		if perr != nil {
			var fe *FormatError
			if errors.As(perr, &fe) {
				fe.Line = ln
			}
			return perr
		}
		if ferr := fn(rec); ferr != nil {
			return ferr
		}
		if err == io.EOF {
			return nil
		}
	}
}

// ForEach opens src once and scans it.
func ForEach(src Source, fn func(Record) error) error {
	rc, err := src.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := Scan(rc, fn); err != nil {
		var ioe *IOError
		if errors.As(err, &ioe) && ioe.Op == "read" && ioe.Path == "" {
			ioe.Path = src.Name()
		}
		return err
	}
	return nil
}

// ReadAll buffers every record of r.
func ReadAll(r io.Reader) ([]Record, error) {
	var recs []Record
	err := Scan(r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	return recs, err
}
