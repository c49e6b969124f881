// core/gfa/record.go
package gfa

import (
	"strconv"
	"strings"
)

// NodeID identifies a segment. GFA ids handled here are positive integers.
type NodeID uint64

func (id NodeID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Orient is the strand of a signed reference.
type Orient byte

const (
	Forward Orient = '+'
	Reverse Orient = '-'
)

// Flip returns the opposite strand.
func (o Orient) Flip() Orient {
	if o == Forward {
		return Reverse
	}
	return Forward
}

func (o Orient) String() string { return string(rune(o)) }

// Glyph is the walk (W-line) spelling of o.
func (o Orient) Glyph() byte {
	if o == Reverse {
		return '<'
	}
	return '>'
}

// Step is one element of a path or walk traversal.
type Step struct {
	ID     NodeID
	Orient Orient
}

// Kind tags the record variants.
type Kind byte

const (
	KindOther   Kind = 0
	KindSegment Kind = 'S'
	KindLink    Kind = 'L'
	KindPath    Kind = 'P'
	KindWalk    Kind = 'W'
)

func (k Kind) String() string {
	if k == KindOther {
		return "other"
	}
	return string(rune(k))
}

// Record is one GFA line. Concrete types are *Segment, *Link, *Path,
// *Walk and *Other; callers dispatch with a type switch.
type Record interface {
	Kind() Kind
}

// Segment is an S-line. Seq holds "*" when the sequence is absent.
type Segment struct {
	ID   NodeID
	Seq  []byte
	Tags []string
}

// Link is an L-line.
type Link struct {
	From       NodeID
	FromOrient Orient
	To         NodeID
	ToOrient   Orient
	Overlap    string
	Tags       []string
}

// Path is a P-line. Overlaps is the raw per-step overlap column ("" when
// the line has none).
type Path struct {
	Name     string
	Steps    []Step
	Overlaps string
	Tags     []string
}

// Walk is a W-line. Start and End are kept verbatim ("*" or an integer).
type Walk struct {
	Sample   string
	HapIndex int
	SeqID    string
	Start    string
	End      string
	Steps    []Step
	Tags     []string
}

// Other is any line this package does not interpret (H, C, comments, ...).
type Other struct {
	Line string
}

func (*Segment) Kind() Kind { return KindSegment }
func (*Link) Kind() Kind    { return KindLink }
func (*Path) Kind() Kind    { return KindPath }
func (*Walk) Kind() Kind    { return KindWalk }
func (*Other) Kind() Kind   { return KindOther }

// Name joins sample, haplotype and sequence id the way walk names are
// usually reported: sample#hap#seqid.
func (w *Walk) Name() string {
	return strings.Join([]string{w.Sample, strconv.Itoa(w.HapIndex), w.SeqID}, "#")
}

// Absent reports whether a segment sequence is the "*" placeholder.
func Absent(seq []byte) bool { return len(seq) == 1 && seq[0] == '*' }

// Traversal returns the name and steps of a path or walk record.
func Traversal(r Record) (name string, steps []Step, ok bool) {
	switch v := r.(type) {
	case *Path:
		return v.Name, v.Steps, true
	case *Walk:
		return v.Name(), v.Steps, true
	}
	return "", nil, false
}
