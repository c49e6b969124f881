// internal/transform/rename.go
package transform

import (
	"bufio"
	"context"
	"io"
	"strings"

	"pangfa-core/gfa"
	"pangfa/internal/cmdutil"
)

// LoadNames reads a two-column TSV (old name, new name). Blank lines and
// lines starting with '#' are skipped.
func LoadNames(path string) (map[string]string, error) {
	rc, err := gfa.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadNames(path, rc)
}

// ReadNames parses the rename table from r; name labels errors.
func ReadNames(name string, r io.Reader) (map[string]string, error) {
	names := make(map[string]string)
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 2 || cols[0] == "" || cols[1] == "" {
			return nil, &TableError{Path: name, Line: ln, Reason: "want two tab-separated columns"}
		}
		if _, dup := names[cols[0]]; dup {
			return nil, &TableError{Path: name, Line: ln, Reason: "duplicate name " + cols[0]}
		}
		names[cols[0]] = cols[1]
	}
	if err := sc.Err(); err != nil {
		return nil, &gfa.IOError{Op: "read", Path: name, Err: err}
	}
	return names, nil
}

// Rename renames every P-line through names and returns the number of
// records emitted. A path missing from names is a *gfa.NotFoundError.
// Other records pass through.
func Rename(ctx context.Context, src gfa.Source, names map[string]string, emit func(gfa.Record) error) (int, error) {
	return cmdutil.RunStream(ctx, src, func(r gfa.Record) (bool, gfa.Record, error) {
		p, ok := r.(*gfa.Path)
		if !ok {
			return true, r, nil
		}
		to, ok := names[p.Name]
		if !ok {
			return false, nil, &gfa.NotFoundError{What: "path", Name: p.Name}
		}
		out := *p
		out.Name = to
		return true, &out, nil
	}, emit)
}
