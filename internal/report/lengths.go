// internal/report/lengths.go
package report

import (
	"context"

	"pangfa-core/gfa"
	"pangfa/internal/pipeline"
	"pangfa/internal/writers"
)

// Index writes, per path or walk, its total length and the part read on
// each strand.
func Index(ctx context.Context, src gfa.Source, t writers.Table) error {
	segs, err := loadSegments(ctx, src)
	if err != nil {
		return err
	}
	if err := t.Header("PathName", "Length", "ForwardLength", "ReverseLength"); err != nil {
		return err
	}
	return eachTraversal(ctx, src, func(name string, steps []gfa.Step) error {
		var fwd, rev int
		for _, st := range steps {
			n, err := segs.length(st.ID)
			if err != nil {
				return err
			}
			if st.Orient == gfa.Reverse {
				rev += n
			} else {
				fwd += n
			}
		}
		return t.Row(name, fwd+rev, fwd, rev)
	})
}

// Lengths writes the length of every segment in file order.
func Lengths(ctx context.Context, src gfa.Source, t writers.Table) error {
	if err := t.Header("NodeName", "Length"); err != nil {
		return err
	}
	return pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		if s, ok := r.(*gfa.Segment); ok {
			return t.Row(s.ID, s.Length())
		}
		return nil
	})
}

// Offsets writes one row per traversal step: the step's start and end on
// the traversal (0-based, end exclusive), its length and orientation.
func Offsets(ctx context.Context, src gfa.Source, t writers.Table) error {
	segs, err := loadSegments(ctx, src)
	if err != nil {
		return err
	}
	if err := t.Header("NodeName", "Path", "StartPos", "EndPos", "Length", "Orientation"); err != nil {
		return err
	}
	return eachTraversal(ctx, src, func(name string, steps []gfa.Step) error {
		pos := 0
		for _, st := range steps {
			n, err := segs.length(st.ID)
			if err != nil {
				return err
			}
			if err := t.Row(st.ID, name, pos, pos+n, n, st.Orient); err != nil {
				return err
			}
			pos += n
		}
		return nil
	})
}
