// core/contract/contract.go
package contract

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pkg/errors"

	"pangfa-core/gfa"
	"pangfa-core/graph"
)

// Options configures an Engine.
type Options struct {
	// ComplementEdges makes every link also count as its implied
	// reverse-complement edge during classification.
	ComplementEdges bool
}

// Merge is one applied contraction.
type Merge struct {
	Candidate
	Survivor gfa.NodeID
	Absorbed gfa.NodeID
}

// Skip is a candidate that was not applied.
type Skip struct {
	Candidate
	Reason string
}

const (
	SkipSameBlock      = "already merged into the same node"
	SkipMissingSegment = "segment not present"
)

// Plan is the outcome of Engine.Contract, accumulated over all rounds.
type Plan struct {
	Candidates []Candidate
	Merges     []Merge
	Skipped    []Skip
	Rounds     int // classification passes; the last one merged nothing
}

// edge is a link as a pair of signed ends.
type edge struct {
	from, to graph.Ref
}

func edgeOf(l *gfa.Link) edge {
	return edge{
		from: graph.Ref{ID: l.From, Orient: l.FromOrient},
		to:   graph.Ref{ID: l.To, Orient: l.ToOrient},
	}
}

// Engine owns the state of one contraction run: the adjacency model, the
// mapping and the segment sequences. Feed it every record of the first
// pass with Observe, then call Contract once.
type Engine struct {
	gopts      graph.Options
	adj        *graph.Adjacency
	links      *linkedhashset.Set // of edge, in input order
	consumed   map[edge]struct{}  // links joining two merged halves
	mapping    *Mapping
	seqs       *Merger
	contracted bool
}

func NewEngine(opts Options) *Engine {
	gopts := graph.Options{Complement: opts.ComplementEdges}
	return &Engine{
		gopts:    gopts,
		adj:      graph.New(gopts),
		links:    linkedhashset.New(),
		consumed: make(map[edge]struct{}),
		mapping:  NewMapping(),
		seqs:     NewMerger(),
	}
}

// Observe takes one record of the first pass.
func (e *Engine) Observe(r gfa.Record) {
	switch v := r.(type) {
	case *gfa.Segment:
		e.mapping.Observe(v.ID)
		e.seqs.Add(v.ID, v.Seq)
	case *gfa.Link:
		e.mapping.Observe(v.From)
		e.mapping.Observe(v.To)
		e.adj.AddLink(v)
		e.links.Add(edgeOf(v))
	}
}

func (e *Engine) Adjacency() *graph.Adjacency { return e.adj }
func (e *Engine) Mapping() *Mapping           { return e.mapping }
func (e *Engine) Merger() *Merger             { return e.seqs }

// Contract classifies the observed graph, applies the candidates in
// sorted order and resolves the mapping. Pairs whose ends already share
// a representative, or that lack a segment, are skipped.
//
// A merge can remove the competing edge that kept a neighbour from being
// a bridge, so classification is repeated on the contracted graph until a
// round merges nothing. Each round sees the links still alive, read
// through the mapping as it stood when the round began.
func (e *Engine) Contract() (*Plan, error) {
	if e.contracted {
		return nil, errors.New("contract: engine already used")
	}
	e.contracted = true

	plan := &Plan{}
	seen := NewCandidates()
	adj := e.adj
	for {
		plan.Rounds++
		live, err := e.liveLinks()
		if err != nil {
			return nil, err
		}
		if plan.Rounds > 1 {
			adj = graph.New(e.gopts)
			for _, l := range live {
				adj.Connect(l.cur.from, l.cur.to)
			}
		}
		var fresh []Candidate
		for _, c := range Classify(adj).List() {
			if seen.Add(c) {
				fresh = append(fresh, c)
			}
		}
		merges, err := e.apply(plan, fresh)
		if err != nil {
			return nil, err
		}
		if len(merges) == 0 {
			break
		}
		e.consume(live, merges)
	}
	if err := e.mapping.ResolveAll(); err != nil {
		return nil, err
	}
	return plan, nil
}

// apply merges the candidates of one round in order and records them in
// plan. It returns the merges of this round.
func (e *Engine) apply(plan *Plan, cands []Candidate) ([]Merge, error) {
	var merges []Merge
	for _, c := range cands {
		plan.Candidates = append(plan.Candidates, c)
		head, err := e.mapping.Resolve(c.First)
		if err != nil {
			return nil, err
		}
		tail, err := e.mapping.Resolve(c.Second)
		if err != nil {
			return nil, err
		}
		switch {
		case head == tail:
			plan.Skipped = append(plan.Skipped, Skip{Candidate: c, Reason: SkipSameBlock})
			continue
		case !e.seqs.Has(head) || !e.seqs.Has(tail):
			plan.Skipped = append(plan.Skipped, Skip{Candidate: c, Reason: SkipMissingSegment})
			continue
		}
		survivor, absorbed, _, err := e.mapping.Union(head, tail)
		if err != nil {
			return nil, err
		}
		if err := e.seqs.Join(survivor, absorbed, head, tail, c.Strand); err != nil {
			return nil, err
		}
		m := Merge{Candidate: c, Survivor: survivor, Absorbed: absorbed}
		merges = append(merges, m)
		plan.Merges = append(plan.Merges, m)
	}
	return merges, nil
}

// liveLink is an observed link and its reading at the start of a round.
type liveLink struct {
	orig, cur edge
}

func (e *Engine) liveLinks() ([]liveLink, error) {
	out := make([]liveLink, 0, e.links.Size())
	it := e.links.Iterator()
	for it.Next() {
		ed := it.Value().(edge)
		if _, gone := e.consumed[ed]; gone {
			continue
		}
		from, err := e.mapping.Resolve(ed.from.ID)
		if err != nil {
			return nil, err
		}
		to, err := e.mapping.Resolve(ed.to.ID)
		if err != nil {
			return nil, err
		}
		cur := edge{
			from: graph.Ref{ID: from, Orient: ed.from.Orient},
			to:   graph.Ref{ID: to, Orient: ed.to.Orient},
		}
		out = append(out, liveLink{orig: ed, cur: cur})
	}
	return out, nil
}

// consume marks the links that are the bridge of one of merges, on
// either strand. They vanish inside the merged segment; every other link
// survives the rewrite.
func (e *Engine) consume(live []liveLink, merges []Merge) {
	bridges := make(map[edge]struct{}, 2*len(merges))
	for _, m := range merges {
		first := graph.Ref{ID: m.First, Orient: gfa.Forward}
		second := graph.Ref{ID: m.Second, Orient: gfa.Forward}
		bridges[edge{from: first, to: second}] = struct{}{}
		bridges[edge{from: second.Flip(), to: first.Flip()}] = struct{}{}
	}
	for _, l := range live {
		if _, ok := bridges[l.cur]; ok {
			e.consumed[l.orig] = struct{}{}
		}
	}
}

// Rewriter returns a rewriter over the contracted state.
func (e *Engine) Rewriter() (*Rewriter, error) {
	rw, err := NewRewriter(e.mapping, e.seqs)
	if err != nil {
		return nil, err
	}
	rw.consumed = e.consumed
	return rw, nil
}

// Apply runs both passes over an in-memory record list.
func Apply(records []gfa.Record, opts Options) ([]gfa.Record, *Plan, *RewriteStats, error) {
	e := NewEngine(opts)
	for _, r := range records {
		e.Observe(r)
	}
	plan, err := e.Contract()
	if err != nil {
		return nil, nil, nil, err
	}
	rw, err := e.Rewriter()
	if err != nil {
		return nil, nil, nil, err
	}
	out := make([]gfa.Record, 0, len(records))
	for _, r := range records {
		o, keep, err := rw.Rewrite(r)
		if err != nil {
			return nil, nil, nil, err
		}
		if keep {
			out = append(out, o)
		}
	}
	return out, plan, &rw.Stats, nil
}
