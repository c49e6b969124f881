// Package rgfa annotates a GFA graph with rGFA stable coordinates.
package rgfa

import (
	"context"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"pangfa-core/gfa"
	"pangfa/internal/pipeline"
)

// Origin is the rGFA placement of a segment: stable sequence name (SN),
// offset on it (SO) and rank (SR, 0 on the reference).
type Origin struct {
	Name   string
	Offset int
	Rank   int
}

// Backbone places segments on traversals. The reference traversal has
// rank 0; every other traversal, in file order, gets the next rank and
// places the segments it reaches from an already placed one.
type Backbone struct {
	nodes  map[gfa.NodeID]Origin
	length map[gfa.NodeID]int
}

// Build places the segments of traversals (name -> []gfa.Step, in file
// order) starting from reference.
func Build(reference string, traversals *linkedhashmap.Map, length map[gfa.NodeID]int) (*Backbone, error) {
	b := &Backbone{nodes: make(map[gfa.NodeID]Origin), length: length}
	v, ok := traversals.Get(reference)
	if !ok {
		return nil, &gfa.NotFoundError{What: "path", Name: reference}
	}
	off := 0
	for _, st := range v.([]gfa.Step) {
		n, err := b.len(st.ID)
		if err != nil {
			return nil, err
		}
		if _, placed := b.nodes[st.ID]; !placed {
			b.nodes[st.ID] = Origin{Name: reference, Offset: off, Rank: 0}
		}
		off += n
	}

	rank := 0
	it := traversals.Iterator()
	for it.Next() {
		name := it.Key().(string)
		if name == reference {
			continue
		}
		rank++
		var parent *Origin
		var parentLen int
		for _, st := range it.Value().([]gfa.Step) {
			n, err := b.len(st.ID)
			if err != nil {
				return nil, err
			}
			if _, placed := b.nodes[st.ID]; !placed && parent != nil {
				b.nodes[st.ID] = Origin{Name: name, Offset: parent.Offset + parentLen, Rank: rank}
			}
			if o, placed := b.nodes[st.ID]; placed {
				parent, parentLen = &o, n
			}
		}
	}
	return b, nil
}

func (b *Backbone) len(id gfa.NodeID) (int, error) {
	n, ok := b.length[id]
	if !ok {
		return 0, &gfa.NotFoundError{What: "segment", ID: id}
	}
	return n, nil
}

// Origin returns where id was placed.
func (b *Backbone) Origin(id gfa.NodeID) (Origin, bool) {
	o, ok := b.nodes[id]
	return o, ok
}

// ConvertStats counts placed and unplaced segments.
type ConvertStats struct {
	Placed   int
	Unplaced int
}

// Convert writes the rGFA form of src: S-lines carry SN/SO/SR tags when
// the segment could be placed, L-lines are kept, everything else is
// dropped.
func Convert(ctx context.Context, src gfa.Source, reference string, emit func(gfa.Record) error) (ConvertStats, error) {
	var st ConvertStats
	length := make(map[gfa.NodeID]int)
	traversals := linkedhashmap.New()
	err := pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		switch v := r.(type) {
		case *gfa.Segment:
			length[v.ID] = v.Length()
		case *gfa.Path, *gfa.Walk:
			name, steps, _ := gfa.Traversal(v)
			traversals.Put(name, steps)
		}
		return nil
	})
	if err != nil {
		return st, err
	}
	bb, err := Build(reference, traversals, length)
	if err != nil {
		return st, err
	}

	err = pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		switch v := r.(type) {
		case *gfa.Segment:
			o, ok := bb.Origin(v.ID)
			if !ok {
				st.Unplaced++
				return emit(v)
			}
			st.Placed++
			s := *v
			s.Tags = gfa.SetTag(s.Tags, "SN", "Z", o.Name)
			s.Tags = gfa.SetTag(s.Tags, "SO", "i", strconv.Itoa(o.Offset))
			s.Tags = gfa.SetTag(s.Tags, "SR", "i", strconv.Itoa(o.Rank))
			return emit(&s)
		case *gfa.Link:
			return emit(v)
		}
		return nil
	})
	return st, err
}
