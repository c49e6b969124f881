// core/gfa/format.go
package gfa

import (
	"strconv"
	"strings"
)

// Format renders r as one GFA line without a trailing newline.
func Format(r Record) string {
	var b strings.Builder
	switch v := r.(type) {
	case *Segment:
		b.WriteString("S\t")
		b.WriteString(v.ID.String())
		b.WriteByte('\t')
		b.Write(v.Seq)
		writeTags(&b, v.Tags)
	case *Link:
		b.WriteString("L\t")
		b.WriteString(v.From.String())
		b.WriteByte('\t')
		b.WriteByte(byte(v.FromOrient))
		b.WriteByte('\t')
		b.WriteString(v.To.String())
		b.WriteByte('\t')
		b.WriteByte(byte(v.ToOrient))
		b.WriteByte('\t')
		b.WriteString(v.Overlap)
		writeTags(&b, v.Tags)
	case *Path:
		b.WriteString("P\t")
		b.WriteString(v.Name)
		b.WriteByte('\t')
		b.WriteString(FormatPathSteps(v.Steps))
		if v.Overlaps != "" || len(v.Tags) > 0 {
			b.WriteByte('\t')
			if v.Overlaps == "" {
				b.WriteByte('*')
			} else {
				b.WriteString(v.Overlaps)
			}
		}
		writeTags(&b, v.Tags)
	case *Walk:
		b.WriteString("W\t")
		b.WriteString(v.Sample)
		b.WriteByte('\t')
		b.WriteString(strconv.Itoa(v.HapIndex))
		b.WriteByte('\t')
		b.WriteString(v.SeqID)
		b.WriteByte('\t')
		b.WriteString(v.Start)
		b.WriteByte('\t')
		b.WriteString(v.End)
		b.WriteByte('\t')
		b.WriteString(FormatWalkSteps(v.Steps))
		writeTags(&b, v.Tags)
	case *Other:
		b.WriteString(v.Line)
	}
	return b.String()
}

// FormatPathSteps renders steps in P-line syntax: "1+,2-".
func FormatPathSteps(steps []Step) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s.ID.String())
		b.WriteByte(byte(s.Orient))
	}
	return b.String()
}

// FormatWalkSteps renders steps in W-line syntax: ">1<2". The glyph is
// written for every step, the first one included.
func FormatWalkSteps(steps []Step) string {
	var b strings.Builder
	for _, s := range steps {
		b.WriteByte(s.Orient.Glyph())
		b.WriteString(s.ID.String())
	}
	return b.String()
}

func writeTags(b *strings.Builder, tags []string) {
	for _, t := range tags {
		b.WriteByte('\t')
		b.WriteString(t)
	}
}
