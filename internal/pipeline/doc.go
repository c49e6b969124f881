// Package pipeline drives GFA sources through the contraction engine.
//
// Contract makes two sequential passes over a gfa.Source: the first builds
// and resolves the engine state, the second rewrites every record against
// it. The passes never interleave, so every rewrite decision sees the
// final mapping.
package pipeline
