// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table formats (name → constructor).
var TableWriters = map[string]func(w io.Writer) Table{}

// RegisterTable adds or replaces a table format (last wins).
func RegisterTable(format string, fn func(io.Writer) Table) { TableWriters[format] = fn }

func init() {
	RegisterTable("tsv", func(w io.Writer) Table { return &tsvTable{w: w} })
	RegisterTable("pretty", func(w io.Writer) Table { return &prettyTable{tw: tablewriter.NewWriter(w)} })
}

// NewTable returns the table registered for format.
func NewTable(format string, w io.Writer) (Table, error) {
	fn, ok := TableWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown table format %q (no writer registered)", format)
	}
	return fn(w), nil
}

// TableFormat picks the format name for the --pretty switch.
func TableFormat(pretty bool) string {
	if pretty {
		return "pretty"
	}
	return "tsv"
}
