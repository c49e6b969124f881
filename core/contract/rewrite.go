// core/contract/rewrite.go
package contract

import (
	"strconv"

	"github.com/pkg/errors"

	"pangfa-core/gfa"
)

// RewriteStats counts what a Rewriter did with the records it saw.
type RewriteStats struct {
	Segments          int // emitted
	MergedSegments    int // emitted with a merged sequence
	AbsorbedSegments  int // dropped: absorbed into another segment
	Links             int // emitted
	SelfLinks         int // dropped: the bridge of a merge
	CircularLinks     int // emitted as a self link on a merged node
	DuplicateLinks    int // dropped: identical to an emitted link
	Traversals        int // paths and walks emitted
	DroppedSteps      int
	EmptyTraversals   []string // names of paths/walks left with no steps
	PassedThrough     int
	DuplicateSegments int
}

// Rewriter turns records of the original graph into records of the
// contracted one.
type Rewriter struct {
	m        *Mapping
	seqs     *Merger
	consumed map[edge]struct{}
	links    map[string]struct{}
	segments map[gfa.NodeID]struct{}
	Stats    RewriteStats
}

// NewRewriter needs a Mapping on which ResolveAll has succeeded. A
// Rewriter made here keeps every link; Engine.Rewriter also drops the
// bridges its merges consumed.
func NewRewriter(m *Mapping, seqs *Merger) (*Rewriter, error) {
	if !m.Resolved() {
		return nil, errors.New("rewrite: mapping is not fully resolved")
	}
	return &Rewriter{
		m:        m,
		seqs:     seqs,
		links:    make(map[string]struct{}),
		segments: make(map[gfa.NodeID]struct{}),
	}, nil
}

// Rewrite returns the record to emit for r, or keep=false when r has no
// counterpart in the contracted graph. Only a *CycleError (or another
// non-lookup failure) is returned as an error.
func (rw *Rewriter) Rewrite(r gfa.Record) (out gfa.Record, keep bool, err error) {
	switch v := r.(type) {
	case *gfa.Segment:
		return rw.segment(v)
	case *gfa.Link:
		return rw.link(v)
	case *gfa.Path:
		steps, dropped, err := rw.filter(v.Steps)
		if err != nil || len(steps) == 0 {
			return rw.empty(v.Name, err)
		}
		rw.Stats.Traversals++
		if dropped == 0 {
			return v, true, nil
		}
		p := *v
		p.Steps = steps
		if p.Overlaps != "" {
			p.Overlaps = "*"
		}
		return &p, true, nil
	case *gfa.Walk:
		steps, dropped, err := rw.filter(v.Steps)
		if err != nil || len(steps) == 0 {
			return rw.empty(v.Name(), err)
		}
		rw.Stats.Traversals++
		if dropped == 0 {
			return v, true, nil
		}
		w := *v
		w.Steps = steps
		return &w, true, nil
	}
	rw.Stats.PassedThrough++
	return r, true, nil
}

// resolve maps id to its representative; ok is false for unknown ids.
func (rw *Rewriter) resolve(id gfa.NodeID) (gfa.NodeID, bool, error) {
	rep, err := rw.m.Resolve(id)
	if errors.Is(err, gfa.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rep, true, nil
}

func (rw *Rewriter) segment(s *gfa.Segment) (gfa.Record, bool, error) {
	rep, ok, err := rw.resolve(s.ID)
	if err != nil {
		return nil, false, err
	}
	if !ok || rep != s.ID {
		rw.Stats.AbsorbedSegments++
		return nil, false, nil
	}
	if _, dup := rw.segments[s.ID]; dup {
		rw.Stats.DuplicateSegments++
		return nil, false, nil
	}
	rw.segments[s.ID] = struct{}{}
	rw.Stats.Segments++
	if !rw.seqs.Merged(s.ID) {
		return s, true, nil
	}
	rw.Stats.MergedSegments++
	merged, _ := rw.seqs.Sequence(s.ID)
	out := &gfa.Segment{ID: s.ID, Seq: merged, Tags: s.Tags}
	if _, _, has := gfa.Tag(s.Tags, "LN"); has && !gfa.Absent(merged) {
		out.Tags = gfa.SetTag(s.Tags, "LN", "i", strconv.Itoa(len(merged)))
	}
	return out, true, nil
}

func (rw *Rewriter) link(l *gfa.Link) (gfa.Record, bool, error) {
	from, okf, err := rw.resolve(l.From)
	if err != nil {
		return nil, false, err
	}
	to, okt, err := rw.resolve(l.To)
	if err != nil {
		return nil, false, err
	}
	if !okf || !okt {
		return nil, false, nil
	}
	if _, ok := rw.consumed[edgeOf(l)]; ok {
		rw.Stats.SelfLinks++
		return nil, false, nil
	}
	changed := from != l.From || to != l.To
	// Self loops of the input reach here unchanged and are kept as they
	// are. A changed link that collapsed onto one node without being a
	// merge bridge closes a cycle through the merged segment.
	circular := from == to && changed
	out := l
	if changed {
		cp := *l
		cp.From, cp.To = from, to
		out = &cp
	}
	key := gfa.Format(out)
	if _, dup := rw.links[key]; dup {
		rw.Stats.DuplicateLinks++
		return nil, false, nil
	}
	rw.links[key] = struct{}{}
	rw.Stats.Links++
	if circular {
		rw.Stats.CircularLinks++
	}
	return out, true, nil
}

func (rw *Rewriter) filter(steps []gfa.Step) (kept []gfa.Step, dropped int, err error) {
	kept = make([]gfa.Step, 0, len(steps))
	for _, st := range steps {
		rep, ok, err := rw.resolve(st.ID)
		if err != nil {
			return nil, 0, err
		}
		if !ok || rep != st.ID {
			dropped++
			continue
		}
		kept = append(kept, st)
	}
	rw.Stats.DroppedSteps += dropped
	return kept, dropped, nil
}

func (rw *Rewriter) empty(name string, err error) (gfa.Record, bool, error) {
	if err != nil {
		return nil, false, err
	}
	rw.Stats.EmptyTraversals = append(rw.Stats.EmptyTraversals, name)
	return nil, false, nil
}
