// internal/report/anchors.go
package report

import (
	"context"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"pangfa-core/gfa"
	"pangfa/internal/writers"
)

// Anchors writes, per segment in file order, the number of distinct
// traversals crossing it. With rank >= 0 only segments whose count is at
// least max-rank are written; rank < 0 writes all of them.
func Anchors(ctx context.Context, src gfa.Source, rank int, t writers.Table) error {
	segs, err := loadSegments(ctx, src)
	if err != nil {
		return err
	}
	counts := linkedhashmap.New()
	_ = segs.each(func(id gfa.NodeID, _ int) error {
		counts.Put(id, 0)
		return nil
	})
	err = eachTraversal(ctx, src, func(_ string, steps []gfa.Step) error {
		seen := make(map[gfa.NodeID]struct{}, len(steps))
		for _, st := range steps {
			if _, dup := seen[st.ID]; dup {
				continue
			}
			seen[st.ID] = struct{}{}
			v, ok := counts.Get(st.ID)
			if !ok {
				return &gfa.NotFoundError{What: "segment", ID: st.ID}
			}
			counts.Put(st.ID, v.(int)+1)
		}
		return nil
	})
	if err != nil {
		return err
	}

	floor := 0
	if rank >= 0 {
		top := 0
		for _, v := range counts.Values() {
			if n := v.(int); n > top {
				top = n
			}
		}
		floor = top - rank
	}
	if err := t.Header("NodeName", "AnchorRank"); err != nil {
		return err
	}
	it := counts.Iterator()
	for it.Next() {
		if n := it.Value().(int); n >= floor {
			if err := t.Row(it.Key(), n); err != nil {
				return err
			}
		}
	}
	return nil
}
