// core/contract/classify.go
package contract

import (
	"github.com/emirpasic/gods/maps/treemap"

	"pangfa-core/gfa"
	"pangfa-core/graph"
)

// PairKey is an unordered node pair, stored sorted.
type PairKey struct {
	Lo, Hi gfa.NodeID
}

func keyOf(a, b gfa.NodeID) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}

func comparePairKey(a, b interface{}) int {
	x, y := a.(PairKey), b.(PairKey)
	switch {
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	}
	return 0
}

// Candidate is a contraction pair in forward-strand order: reading the
// forward strand, First is immediately followed by Second. Strand is the
// sign of the bridge the pair was found on.
type Candidate struct {
	First  gfa.NodeID
	Second gfa.NodeID
	Strand gfa.Orient
}

func (c Candidate) Key() PairKey { return keyOf(c.First, c.Second) }

// Candidates is a registry of contraction pairs deduplicated on the
// sorted pair. Iteration follows the sorted key order.
type Candidates struct {
	m *treemap.Map
}

func NewCandidates() *Candidates {
	return &Candidates{m: treemap.NewWith(comparePairKey)}
}

// Add registers c unless its pair is already known. It reports whether c
// was added.
func (cs *Candidates) Add(c Candidate) bool {
	k := c.Key()
	if _, ok := cs.m.Get(k); ok {
		return false
	}
	cs.m.Put(k, c)
	return true
}

func (cs *Candidates) Len() int { return cs.m.Size() }

func (cs *Candidates) Has(a, b gfa.NodeID) bool {
	_, ok := cs.m.Get(keyOf(a, b))
	return ok
}

// List returns the candidates in sorted key order.
func (cs *Candidates) List() []Candidate {
	out := make([]Candidate, 0, cs.m.Size())
	it := cs.m.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Candidate))
	}
	return out
}

// Classify returns every unary bridge of adj.
//
// X -> Y is a bridge when Y is the only successor of X, both are read on
// the same strand, Y has no predecessor other than X, and -Y leads
// nowhere or only back to -X.
func Classify(adj *graph.Adjacency) *Candidates {
	cs := NewCandidates()
	for _, x := range adj.Sources() {
		if c, ok := bridge(adj, x); ok {
			cs.Add(c)
		}
	}
	return cs
}

func bridge(adj *graph.Adjacency, x graph.Ref) (Candidate, bool) {
	succ := adj.Successors(x)
	if len(succ) != 1 {
		return Candidate{}, false
	}
	y := succ[0]
	if y.Orient != x.Orient || y.ID == x.ID {
		return Candidate{}, false
	}
	switch back := adj.Successors(y.Flip()); {
	case len(back) == 0:
	case len(back) == 1 && back[0] == x.Flip():
	default:
		return Candidate{}, false
	}
	if adj.InDegree(y) != 1 {
		return Candidate{}, false
	}
	if x.Orient == gfa.Reverse {
		// X- -> Y- is Y+ -> X+ read on the forward strand.
		return Candidate{First: y.ID, Second: x.ID, Strand: gfa.Reverse}, true
	}
	return Candidate{First: x.ID, Second: y.ID, Strand: gfa.Forward}, true
}
