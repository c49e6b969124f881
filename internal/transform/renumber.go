// internal/transform/renumber.go
package transform

import (
	"context"
	"fmt"
	"io"

	"pangfa-core/gfa"
	"pangfa/internal/pipeline"
)

// Renumbering maps old segment ids to new ones.
type Renumbering struct {
	ids   map[gfa.NodeID]gfa.NodeID
	order []gfa.NodeID
}

// assign numbers the segments of src from next upwards, in S-line order.
func assign(ctx context.Context, src gfa.Source, next gfa.NodeID) (*Renumbering, error) {
	rn := &Renumbering{ids: make(map[gfa.NodeID]gfa.NodeID)}
	err := pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		s, ok := r.(*gfa.Segment)
		if !ok {
			return nil
		}
		if _, dup := rn.ids[s.ID]; dup {
			return nil
		}
		rn.ids[s.ID] = next
		rn.order = append(rn.order, s.ID)
		next++
		return nil
	})
	return rn, err
}

func (rn *Renumbering) lookup(id gfa.NodeID) (gfa.NodeID, error) {
	n, ok := rn.ids[id]
	if !ok {
		return 0, &gfa.NotFoundError{What: "segment", ID: id}
	}
	return n, nil
}

// WriteTSV writes "old\tnew" per segment in S-line order.
func (rn *Renumbering) WriteTSV(w io.Writer) error {
	for _, old := range rn.order {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", old, rn.ids[old]); err != nil {
			return &gfa.IOError{Op: "write", Err: err}
		}
	}
	return nil
}

func (rn *Renumbering) Len() int { return len(rn.ids) }

// apply returns r with every segment id renumbered. Links touching an
// unknown segment are dropped (ok=false); traversal steps naming one are
// a *gfa.NotFoundError.
func (rn *Renumbering) apply(r gfa.Record) (out gfa.Record, ok bool, err error) {
	switch v := r.(type) {
	case *gfa.Segment:
		s := *v
		s.ID, _ = rn.lookup(v.ID)
		return &s, true, nil
	case *gfa.Link:
		from, ferr := rn.lookup(v.From)
		to, terr := rn.lookup(v.To)
		if ferr != nil || terr != nil {
			return nil, false, nil
		}
		l := *v
		l.From, l.To = from, to
		return &l, true, nil
	case *gfa.Path:
		steps, err := rn.steps(v.Steps)
		if err != nil {
			return nil, false, err
		}
		p := *v
		p.Steps = steps
		return &p, true, nil
	case *gfa.Walk:
		steps, err := rn.steps(v.Steps)
		if err != nil {
			return nil, false, err
		}
		w := *v
		w.Steps = steps
		return &w, true, nil
	}
	return r, true, nil
}

func (rn *Renumbering) steps(in []gfa.Step) ([]gfa.Step, error) {
	out := make([]gfa.Step, len(in))
	for i, s := range in {
		id, err := rn.lookup(s.ID)
		if err != nil {
			return nil, err
		}
		out[i] = gfa.Step{ID: id, Orient: s.Orient}
	}
	return out, nil
}

// RenumberStats counts what a renumbering transform did.
type RenumberStats struct {
	Segments     int
	DroppedLinks int
}

// Optimize renumbers segments contiguously from 1 in S-line order and
// rewrites links, paths and walks to match. The mapping is written to
// mapping as "old\tnew" lines.
func Optimize(ctx context.Context, src gfa.Source, mapping io.Writer, emit func(gfa.Record) error) (RenumberStats, error) {
	rn, err := assign(ctx, src, 1)
	if err != nil {
		return RenumberStats{}, err
	}
	if err := rn.WriteTSV(mapping); err != nil {
		return RenumberStats{}, err
	}
	return rewrite(ctx, src, rn, false, emit)
}

// Concatenate emits first unchanged, then second with its segments
// renumbered after the largest segment id of first. Header lines of
// second are dropped.
func Concatenate(ctx context.Context, first, second gfa.Source, emit func(gfa.Record) error) (RenumberStats, error) {
	var top gfa.NodeID
	err := pipeline.ForEach(ctx, first, func(r gfa.Record) error {
		if s, ok := r.(*gfa.Segment); ok && s.ID > top {
			top = s.ID
		}
		return emit(r)
	})
	if err != nil {
		return RenumberStats{}, err
	}
	rn, err := assign(ctx, second, top+1)
	if err != nil {
		return RenumberStats{}, err
	}
	return rewrite(ctx, second, rn, true, emit)
}

func rewrite(ctx context.Context, src gfa.Source, rn *Renumbering, dropHeader bool, emit func(gfa.Record) error) (RenumberStats, error) {
	st := RenumberStats{Segments: rn.Len()}
	err := pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		if o, ok := r.(*gfa.Other); ok && dropHeader && isHeader(o.Line) {
			return nil
		}
		out, ok, err := rn.apply(r)
		if err != nil {
			return err
		}
		if !ok {
			st.DroppedLinks++
			return nil
		}
		return emit(out)
	})
	return st, err
}

func isHeader(line string) bool { return len(line) >= 2 && line[0] == 'H' && line[1] == '\t' }
