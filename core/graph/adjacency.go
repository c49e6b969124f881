// core/graph/adjacency.go
package graph

import (
	"sort"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"pangfa-core/gfa"
)

// Ref is a signed node reference: a node read on one strand.
type Ref struct {
	ID     gfa.NodeID
	Orient gfa.Orient
}

// Flip returns the reference on the opposite strand.
func (r Ref) Flip() Ref { return Ref{ID: r.ID, Orient: r.Orient.Flip()} }

func (r Ref) String() string { return r.ID.String() + r.Orient.String() }

func lessRef(a, b Ref) bool {
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.Orient < b.Orient
}

// Options controls how links populate the model.
type Options struct {
	// Complement also inserts the implied edge (-to, -from) for every link.
	Complement bool
}

// Adjacency is the signed-node directed graph built from L-lines.
// Successor and predecessor lists keep insertion order and never hold
// the same reference twice.
type Adjacency struct {
	opts  Options
	succ  map[Ref]*linkedhashset.Set
	pred  map[Ref]*linkedhashset.Set
	edges int
}

func New(opts Options) *Adjacency {
	return &Adjacency{
		opts: opts,
		succ: make(map[Ref]*linkedhashset.Set),
		pred: make(map[Ref]*linkedhashset.Set),
	}
}

// AddLink records the edge of an L-line.
func (a *Adjacency) AddLink(l *gfa.Link) {
	from := Ref{ID: l.From, Orient: l.FromOrient}
	to := Ref{ID: l.To, Orient: l.ToOrient}
	a.Connect(from, to)
}

// Connect records the edge from -> to, and its complement when the model
// was built with Options.Complement.
func (a *Adjacency) Connect(from, to Ref) {
	a.AddEdge(from, to)
	if a.opts.Complement {
		a.AddEdge(to.Flip(), from.Flip())
	}
}

// AddEdge inserts from -> to. Inserting an existing edge is a no-op.
func (a *Adjacency) AddEdge(from, to Ref) {
	out := a.succ[from]
	if out == nil {
		out = linkedhashset.New()
		a.succ[from] = out
	}
	if out.Contains(to) {
		return
	}
	out.Add(to)
	in := a.pred[to]
	if in == nil {
		in = linkedhashset.New()
		a.pred[to] = in
	}
	in.Add(from)
	a.edges++
}

// Successors returns the references reachable in one hop from r.
func (a *Adjacency) Successors(r Ref) []Ref { return refs(a.succ[r]) }

// Predecessors returns the references with an edge into r.
func (a *Adjacency) Predecessors(r Ref) []Ref { return refs(a.pred[r]) }

func (a *Adjacency) OutDegree(r Ref) int { return size(a.succ[r]) }
func (a *Adjacency) InDegree(r Ref) int  { return size(a.pred[r]) }

// Edges is the number of distinct edges.
func (a *Adjacency) Edges() int { return a.edges }

// Sources returns every reference with at least one successor, sorted
// by id then strand.
func (a *Adjacency) Sources() []Ref {
	out := make([]Ref, 0, len(a.succ))
	for r := range a.succ {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return lessRef(out[i], out[j]) })
	return out
}

func refs(s *linkedhashset.Set) []Ref {
	if s == nil {
		return nil
	}
	vals := s.Values()
	out := make([]Ref, len(vals))
	for i, v := range vals {
		out[i] = v.(Ref)
	}
	return out
}

func size(s *linkedhashset.Set) int {
	if s == nil {
		return 0
	}
	return s.Size()
}
