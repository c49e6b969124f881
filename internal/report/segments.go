package report

import (
	"context"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"pangfa-core/gfa"
	"pangfa/internal/pipeline"
)

// segmentIndex holds segment lengths in file order.
type segmentIndex struct {
	m *linkedhashmap.Map // gfa.NodeID -> int
}

func loadSegments(ctx context.Context, src gfa.Source) (*segmentIndex, error) {
	idx := &segmentIndex{m: linkedhashmap.New()}
	err := pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		if s, ok := r.(*gfa.Segment); ok {
			if _, dup := idx.m.Get(s.ID); !dup {
				idx.m.Put(s.ID, s.Length())
			}
		}
		return nil
	})
	return idx, err
}

func (idx *segmentIndex) length(id gfa.NodeID) (int, error) {
	v, ok := idx.m.Get(id)
	if !ok {
		return 0, &gfa.NotFoundError{What: "segment", ID: id}
	}
	return v.(int), nil
}

// each visits segments in file order.
func (idx *segmentIndex) each(fn func(id gfa.NodeID, length int) error) error {
	it := idx.m.Iterator()
	for it.Next() {
		if err := fn(it.Key().(gfa.NodeID), it.Value().(int)); err != nil {
			return err
		}
	}
	return nil
}

// eachTraversal visits paths and walks in file order.
func eachTraversal(ctx context.Context, src gfa.Source, fn func(name string, steps []gfa.Step) error) error {
	return pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		name, steps, ok := gfa.Traversal(r)
		if !ok {
			return nil
		}
		return fn(name, steps)
	})
}
