// core/contract/resolve.go
package contract

import (
	"sort"

	"pangfa-core/gfa"
)

// Mapping sends every observed node id to its representative. It is a
// union-find without ranks: the smaller representative always survives,
// which keeps the result independent of application order.
type Mapping struct {
	parent   map[gfa.NodeID]gfa.NodeID
	resolved bool
}

func NewMapping() *Mapping {
	return &Mapping{parent: make(map[gfa.NodeID]gfa.NodeID)}
}

// Observe adds id as its own representative. Known ids are left alone.
func (m *Mapping) Observe(id gfa.NodeID) {
	if _, ok := m.parent[id]; !ok {
		m.parent[id] = id
		m.resolved = false
	}
}

func (m *Mapping) Has(id gfa.NodeID) bool {
	_, ok := m.parent[id]
	return ok
}

func (m *Mapping) Len() int { return len(m.parent) }

// Parent returns the id currently stored for id, without following the
// chain.
func (m *Mapping) Parent(id gfa.NodeID) (gfa.NodeID, bool) {
	p, ok := m.parent[id]
	return p, ok
}

// Redirect sets Mapping[b] = a. Both ids are observed first. No check is
// made that the result is acyclic; Resolve reports that.
func (m *Mapping) Redirect(b, a gfa.NodeID) {
	m.Observe(a)
	m.Observe(b)
	m.parent[b] = a
	m.resolved = false
}

// Union merges the classes of a and b. The smaller representative
// survives. ok is false when a and b already share a representative.
func (m *Mapping) Union(a, b gfa.NodeID) (survivor, absorbed gfa.NodeID, ok bool, err error) {
	ra, err := m.Resolve(a)
	if err != nil {
		return 0, 0, false, err
	}
	rb, err := m.Resolve(b)
	if err != nil {
		return 0, 0, false, err
	}
	if ra == rb {
		return ra, ra, false, nil
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	m.parent[rb] = ra
	m.resolved = false
	return ra, rb, true, nil
}

// Resolve follows the mapping from id to its fixed point and compresses
// the path it walked. A revisited id, or a walk longer than the number of
// known nodes, is a *CycleError.
func (m *Mapping) Resolve(id gfa.NodeID) (gfa.NodeID, error) {
	cur, ok := m.parent[id]
	if !ok {
		return 0, notFound(id)
	}
	if cur == id {
		return id, nil
	}
	seen := map[gfa.NodeID]struct{}{id: {}}
	trail := []gfa.NodeID{id}
	for steps := 1; ; steps++ {
		if steps > len(m.parent) {
			return 0, &CycleError{ID: id, Revisited: cur}
		}
		if _, dup := seen[cur]; dup {
			return 0, &CycleError{ID: id, Revisited: cur}
		}
		next, ok := m.parent[cur]
		if !ok {
			return 0, notFound(cur)
		}
		if next == cur {
			break
		}
		seen[cur] = struct{}{}
		trail = append(trail, cur)
		cur = next
	}
	for _, n := range trail {
		m.parent[n] = cur
	}
	return cur, nil
}

// ResolveAll resolves every id in ascending order. After it succeeds,
// every id maps directly to its representative.
func (m *Mapping) ResolveAll() error {
	for _, id := range m.IDs() {
		if _, err := m.Resolve(id); err != nil {
			return err
		}
	}
	m.resolved = true
	return nil
}

// Resolved reports whether ResolveAll has succeeded since the last change.
func (m *Mapping) Resolved() bool { return m.resolved }

// IsRepresentative reports whether id is known and maps to itself.
func (m *Mapping) IsRepresentative(id gfa.NodeID) bool {
	p, ok := m.parent[id]
	return ok && p == id
}

// IDs returns every observed id in ascending order.
func (m *Mapping) IDs() []gfa.NodeID {
	out := make([]gfa.NodeID, 0, len(m.parent))
	for id := range m.parent {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
