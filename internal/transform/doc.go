// Package transform rewrites a GFA graph without contracting it: path
// renaming, masking of traversals, id compaction and concatenation.
// Each transform streams records to an emit callback in input order.
package transform
