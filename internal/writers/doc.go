// Package writers serializes records and reports.
//
// Design:
//   - GFA records go out one line each through RecordWriter.
//   - Reports go through a Table picked by format name ("tsv", "pretty").
//   - Report structs for --report go through pkg/api (v1) for a stable
//     wire format.
package writers
