// Package report computes read-only summaries of a GFA graph: path
// lengths, segment lengths, per-step offsets, anchor ranks and shared
// nodes. Every report writes through a writers.Table.
package report
