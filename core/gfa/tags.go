package gfa

import (
	"strconv"
	"strings"
)

// Tag returns the type and value of the optional field name (e.g. "LN")
// from tags written as NAME:TYPE:VALUE.
func Tag(tags []string, name string) (typ, val string, ok bool) {
	for _, t := range tags {
		n, rest, found := strings.Cut(t, ":")
		if !found || n != name {
			continue
		}
		typ, val, found = strings.Cut(rest, ":")
		if !found {
			continue
		}
		return typ, val, true
	}
	return "", "", false
}

// SetTag returns tags with name set to typ:val, replacing an existing
// field of the same name or appending a new one. The input is not modified.
func SetTag(tags []string, name, typ, val string) []string {
	field := name + ":" + typ + ":" + val
	out := make([]string, 0, len(tags)+1)
	replaced := false
	for _, t := range tags {
		if strings.HasPrefix(t, name+":") {
			if !replaced {
				out = append(out, field)
				replaced = true
			}
			continue
		}
		out = append(out, t)
	}
	if !replaced {
		out = append(out, field)
	}
	return out
}

// Length is the number of bases of s: len(Seq), or the LN:i: tag when
// the sequence is "*". An absent sequence without LN counts as 0.
func (s *Segment) Length() int {
	if !Absent(s.Seq) {
		return len(s.Seq)
	}
	if typ, val, ok := Tag(s.Tags, "LN"); ok && typ == "i" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
	}
	return 0
}
