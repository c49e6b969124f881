// internal/transform/mask.go
package transform

import (
	"context"

	"github.com/emirpasic/gods/sets/hashset"

	"pangfa-core/gfa"
	"pangfa/internal/pipeline"
)

// MaskStats counts what Mask removed.
type MaskStats struct {
	Traversals int
	Segments   int
	Links      int
}

// Mask removes the named paths/walks (walks are named sample#hap#seqid)
// together with the segments that only they traverse, and every link
// touching such a segment. Unknown names are a *gfa.NotFoundError.
func Mask(ctx context.Context, src gfa.Source, names []string, emit func(gfa.Record) error) (MaskStats, error) {
	var st MaskStats
	masked := hashset.New()
	for _, n := range names {
		masked.Add(n)
	}

	found := hashset.New()
	private := hashset.New()
	kept := hashset.New()
	err := pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		name, steps, ok := gfa.Traversal(r)
		if !ok {
			return nil
		}
		dst := kept
		if masked.Contains(name) {
			found.Add(name)
			dst = private
		}
		for _, s := range steps {
			dst.Add(s.ID)
		}
		return nil
	})
	if err != nil {
		return st, err
	}
	for _, n := range names {
		if !found.Contains(n) {
			return st, &gfa.NotFoundError{What: "path", Name: n}
		}
	}
	private.Remove(kept.Values()...)

	err = pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		switch v := r.(type) {
		case *gfa.Segment:
			if private.Contains(v.ID) {
				st.Segments++
				return nil
			}
		case *gfa.Link:
			if private.Contains(v.From) || private.Contains(v.To) {
				st.Links++
				return nil
			}
		case *gfa.Path, *gfa.Walk:
			name, _, _ := gfa.Traversal(v)
			if masked.Contains(name) {
				st.Traversals++
				return nil
			}
		}
		return emit(r)
	})
	return st, err
}
