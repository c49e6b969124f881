// Package gfa reads and writes GFA line records.
//
// Records are a tagged variant (Segment, Link, Path, Walk, Other) behind
// the Record interface. Parse and Format round-trip well-formed lines;
// lines of any other kind are carried verbatim as *Other.
//
// A Source can be opened more than once, which is what two-pass commands
// rely on: files are re-opened, stdin is buffered.
package gfa
