// core/gfa/parse.go
package gfa

import (
	"strconv"
	"strings"
)

// Parse turns one GFA line (without its newline) into a Record.
// S, L, P and W lines are interpreted; every other line is returned as
// *Other. Interpreted lines that are malformed yield a *FormatError.
func Parse(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 2 || line[1] != '\t' {
		return &Other{Line: line}, nil
	}
	cols := strings.Split(line, "\t")
	switch Kind(line[0]) {
	case KindSegment:
		return parseSegment(cols)
	case KindLink:
		return parseLink(cols)
	case KindPath:
		return parsePath(cols)
	case KindWalk:
		return parseWalk(cols)
	}
	return &Other{Line: line}, nil
}

func parseSegment(cols []string) (*Segment, error) {
	if len(cols) < 3 {
		return nil, formatErr(KindSegment, "", "expected at least 3 columns, got %d", len(cols))
	}
	id, err := ParseID(cols[1])
	if err != nil {
		return nil, formatErr(KindSegment, "id", err.Error())
	}
	if cols[2] == "" {
		return nil, formatErr(KindSegment, "sequence", "empty sequence (use *)")
	}
	return &Segment{ID: id, Seq: []byte(cols[2]), Tags: tail(cols, 3)}, nil
}

func parseLink(cols []string) (*Link, error) {
	if len(cols) < 6 {
		return nil, formatErr(KindLink, "", "expected at least 6 columns, got %d", len(cols))
	}
	from, err := ParseID(cols[1])
	if err != nil {
		return nil, formatErr(KindLink, "from", err.Error())
	}
	fo, err := ParseOrient(cols[2])
	if err != nil {
		return nil, formatErr(KindLink, "from orientation", err.Error())
	}
	to, err := ParseID(cols[3])
	if err != nil {
		return nil, formatErr(KindLink, "to", err.Error())
	}
	tor, err := ParseOrient(cols[4])
	if err != nil {
		return nil, formatErr(KindLink, "to orientation", err.Error())
	}
	return &Link{
		From: from, FromOrient: fo,
		To: to, ToOrient: tor,
		Overlap: cols[5],
		Tags:    tail(cols, 6),
	}, nil
}

func parsePath(cols []string) (*Path, error) {
	if len(cols) < 3 {
		return nil, formatErr(KindPath, "", "expected at least 3 columns, got %d", len(cols))
	}
	if cols[1] == "" {
		return nil, formatErr(KindPath, "name", "empty path name")
	}
	steps, err := ParsePathSteps(cols[2])
	if err != nil {
		return nil, formatErr(KindPath, "segments", err.Error())
	}
	p := &Path{Name: cols[1], Steps: steps}
	if len(cols) > 3 {
		p.Overlaps = cols[3]
		p.Tags = tail(cols, 4)
	}
	return p, nil
}

func parseWalk(cols []string) (*Walk, error) {
	if len(cols) < 7 {
		return nil, formatErr(KindWalk, "", "expected at least 7 columns, got %d", len(cols))
	}
	hap, err := strconv.Atoi(cols[2])
	if err != nil || hap < 0 {
		return nil, formatErr(KindWalk, "haplotype index", "not a non-negative integer: %q", cols[2])
	}
	for i, field := range [...]string{"start", "end"} {
		v := cols[4+i]
		if v == "*" {
			continue
		}
		if _, err := strconv.ParseUint(v, 10, 64); err != nil {
			return nil, formatErr(KindWalk, field, "not an integer or *: %q", v)
		}
	}
	steps, err := ParseWalkSteps(cols[6])
	if err != nil {
		return nil, formatErr(KindWalk, "walk", err.Error())
	}
	return &Walk{
		Sample:   cols[1],
		HapIndex: hap,
		SeqID:    cols[3],
		Start:    cols[4],
		End:      cols[5],
		Steps:    steps,
		Tags:     tail(cols, 7),
	}, nil
}

// ParseID parses a positive integer node id.
func ParseID(s string) (NodeID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, &strconv.NumError{Func: "ParseID", Num: s, Err: strconv.ErrSyntax}
	}
	return NodeID(v), nil
}

// ParseOrient parses "+" or "-".
func ParseOrient(s string) (Orient, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	}
	return 0, &strconv.NumError{Func: "ParseOrient", Num: s, Err: strconv.ErrSyntax}
}

// ParsePathSteps parses the comma-separated P-line list, e.g. "1+,2-".
func ParsePathSteps(s string) ([]Step, error) {
	if s == "" {
		return nil, &strconv.NumError{Func: "ParsePathSteps", Num: s, Err: strconv.ErrSyntax}
	}
	parts := strings.Split(s, ",")
	steps := make([]Step, 0, len(parts))
	for _, p := range parts {
		if len(p) < 2 {
			return nil, &strconv.NumError{Func: "ParsePathSteps", Num: p, Err: strconv.ErrSyntax}
		}
		o, err := ParseOrient(p[len(p)-1:])
		if err != nil {
			return nil, err
		}
		id, err := ParseID(p[:len(p)-1])
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{ID: id, Orient: o})
	}
	return steps, nil
}

// ParseWalkSteps parses the W-line traversal, e.g. ">1<2>3". Every step
// starts with its own direction glyph.
func ParseWalkSteps(s string) ([]Step, error) {
	if s == "" || (s[0] != '>' && s[0] != '<') {
		return nil, &strconv.NumError{Func: "ParseWalkSteps", Num: s, Err: strconv.ErrSyntax}
	}
	var steps []Step
	for i := 0; i < len(s); {
		o := Forward
		if s[i] == '<' {
			o = Reverse
		}
		j := i + 1
		for j < len(s) && s[j] != '>' && s[j] != '<' {
			j++
		}
		id, err := ParseID(s[i+1 : j])
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{ID: id, Orient: o})
		i = j
	}
	return steps, nil
}

func tail(cols []string, from int) []string {
	if len(cols) <= from {
		return nil
	}
	out := make([]string, len(cols)-from)
	copy(out, cols[from:])
	return out
}
