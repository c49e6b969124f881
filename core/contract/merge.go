// core/contract/merge.go
package contract

import (
	"pangfa-core/gfa"
	"pangfa-core/seq"
)

// MergeSequences joins two blocks that are adjacent on the forward
// strand, head first.
//
// Pairs found on the reverse strand are joined in link orientation and
// turned back: revcomp(revcomp(tail) + revcomp(head)). Over the IUPAC
// alphabet this is head+tail; bytes outside it are carried unchanged.
// An absent ("*") sequence on either side makes the result absent.
func MergeSequences(head, tail []byte, strand gfa.Orient) []byte {
	if gfa.Absent(head) || gfa.Absent(tail) {
		return []byte{'*'}
	}
	if strand == gfa.Reverse {
		rc := append(seq.RevComp(tail), seq.RevComp(head)...)
		return seq.RevComp(rc)
	}
	out := make([]byte, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}

// Merger holds segment sequences and folds them together as pairs are
// contracted.
type Merger struct {
	seqs   map[gfa.NodeID][]byte
	joined map[gfa.NodeID]struct{}
}

func NewMerger() *Merger {
	return &Merger{
		seqs:   make(map[gfa.NodeID][]byte),
		joined: make(map[gfa.NodeID]struct{}),
	}
}

// Add records the sequence of a segment. A repeated id keeps the first
// sequence.
func (m *Merger) Add(id gfa.NodeID, s []byte) {
	if _, ok := m.seqs[id]; ok {
		return
	}
	m.seqs[id] = s
}

func (m *Merger) Has(id gfa.NodeID) bool {
	_, ok := m.seqs[id]
	return ok
}

// Sequence returns the current block stored under id.
func (m *Merger) Sequence(id gfa.NodeID) ([]byte, bool) {
	s, ok := m.seqs[id]
	return s, ok
}

// Join stores merge(block(head), block(tail)) under survivor and drops
// the block of absorbed. survivor and absorbed are head and tail in some
// order.
func (m *Merger) Join(survivor, absorbed, head, tail gfa.NodeID, strand gfa.Orient) error {
	h, ok := m.seqs[head]
	if !ok {
		return notFound(head)
	}
	t, ok := m.seqs[tail]
	if !ok {
		return notFound(tail)
	}
	m.seqs[survivor] = MergeSequences(h, t, strand)
	m.joined[survivor] = struct{}{}
	delete(m.seqs, absorbed)
	delete(m.joined, absorbed)
	return nil
}

// Merged reports whether the block under id is the result of a Join.
func (m *Merger) Merged(id gfa.NodeID) bool {
	_, ok := m.joined[id]
	return ok
}
