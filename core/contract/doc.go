// Package contract finds and merges spuriously split segments.
//
// A pair of nodes joined by a unary bridge (one way out of the first,
// one way into the second, nothing competing on the other strand) was
// split for no reason and can be merged back without losing
// information. The flow is:
//
//	Classify(adj)  -> Candidates
//	Engine.Contract -> Mapping + merged sequences
//	Rewriter       -> records consistent with the mapping
//
// The Mapping is a union-find over node ids. It must be fully resolved
// (ResolveAll) before a Rewriter is built from it.
package contract
