// internal/writers/table.go
package writers

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Table receives report rows. Header must be called before the first Row.
type Table interface {
	Header(cols ...string) error
	Row(cells ...any) error
	Close() error
}

// tsvTable writes "# col1\tcol2" then one tab-separated line per row.
type tsvTable struct {
	w io.Writer
}

func (t *tsvTable) Header(cols ...string) error {
	_, err := fmt.Fprintf(t.w, "# %s\n", strings.Join(cols, "\t"))
	return err
}

func (t *tsvTable) Row(cells ...any) error {
	_, err := io.WriteString(t.w, strings.Join(cellStrings(cells), "\t")+"\n")
	return err
}

func (t *tsvTable) Close() error { return nil }

// prettyTable buffers rows and renders an aligned table on Close.
type prettyTable struct {
	tw *tablewriter.Table
}

func (t *prettyTable) Header(cols ...string) error {
	hdr := make([]any, len(cols))
	for i, c := range cols {
		hdr[i] = c
	}
	t.tw.Header(hdr...)
	return nil
}

func (t *prettyTable) Row(cells ...any) error { return t.tw.Append(cellStrings(cells)) }

func (t *prettyTable) Close() error { return t.tw.Render() }

func cellStrings(cells []any) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case string:
			out[i] = v
		case fmt.Stringer:
			out[i] = v.String()
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
