package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pangfa-core/gfa"
)

func link(t *testing.T, line string) *gfa.Link {
	t.Helper()
	rec, err := gfa.Parse(line)
	require.NoError(t, err)
	return rec.(*gfa.Link)
}

func r(id gfa.NodeID, o gfa.Orient) Ref { return Ref{ID: id, Orient: o} }

func TestAdjacencyEmpty(t *testing.T) {
	a := New(Options{})
	assert.Empty(t, a.Sources())
	assert.Nil(t, a.Successors(r(1, '+')))
	assert.Equal(t, 0, a.InDegree(r(1, '+')))
	assert.Equal(t, 0, a.Edges())
}

func TestAdjacencyCollapsesDuplicates(t *testing.T) {
	a := New(Options{})
	a.AddLink(link(t, "L\t1\t+\t2\t+\t0M"))
	a.AddLink(link(t, "L\t1\t+\t2\t+\t*"))
	a.AddLink(link(t, "L\t1\t+\t3\t-\t0M"))

	assert.Equal(t, []Ref{r(2, '+'), r(3, '-')}, a.Successors(r(1, '+')))
	assert.Equal(t, []Ref{r(1, '+')}, a.Predecessors(r(2, '+')))
	assert.Equal(t, 2, a.OutDegree(r(1, '+')))
	assert.Equal(t, 2, a.Edges())
	assert.Nil(t, a.Successors(r(2, '-')), "as-written model has no implied edges")
}

func TestAdjacencyComplement(t *testing.T) {
	a := New(Options{Complement: true})
	a.AddLink(link(t, "L\t1\t+\t2\t+\t0M"))
	a.AddLink(link(t, "L\t2\t-\t1\t-\t0M")) // same edge, other strand

	assert.Equal(t, []Ref{r(1, '-')}, a.Successors(r(2, '-')))
	assert.Equal(t, []Ref{r(2, '+')}, a.Successors(r(1, '+')))
	assert.Equal(t, 2, a.Edges())
}

func TestConnectFollowsOptions(t *testing.T) {
	plain := New(Options{})
	plain.Connect(r(1, '+'), r(1, '+'))
	plain.Connect(r(1, '-'), r(2, '-'))
	assert.Equal(t, 2, plain.Edges())
	assert.Nil(t, plain.Successors(r(2, '+')))

	both := New(Options{Complement: true})
	both.Connect(r(1, '-'), r(2, '-'))
	assert.Equal(t, []Ref{r(1, '+')}, both.Successors(r(2, '+')))
	assert.Equal(t, 2, both.Edges())
}

func TestSourcesSorted(t *testing.T) {
	a := New(Options{})
	a.AddEdge(r(5, '-'), r(1, '+'))
	a.AddEdge(r(2, '+'), r(1, '+'))
	a.AddEdge(r(5, '+'), r(1, '+'))
	assert.Equal(t, []Ref{r(2, '+'), r(5, '+'), r(5, '-')}, a.Sources())
	assert.Equal(t, []Ref{r(5, '-'), r(2, '+'), r(5, '+')}, a.Predecessors(r(1, '+')))
}

func TestRefFlip(t *testing.T) {
	assert.Equal(t, r(3, '-'), r(3, '+').Flip())
	assert.Equal(t, "3-", r(3, '-').String())
}
