package dfs_test

import (
	"testing"

	"github.com/pednova/planarity/core"
	"github.com/pednova/planarity/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(n))

	return g
}

// triangle: 0-1-2-0. Two edges are tree edges; the third is a back edge,
// carried as one FORWARD arc at the root and one BACK arc at the deepest
// vertex.
func TestPreprocess_Triangle(t *testing.T) {
	g := newTestGraph(t, 3)
	_, _, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(1, 1, 2, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(2, 1, 0, 1)
	require.NoError(t, err)

	require.NoError(t, dfs.Preprocess(g))

	assert.Equal(t, 0, g.DFI(0))
	assert.Equal(t, core.NIL, g.Parent(0))

	// exactly N-1 tree edges for one connected component: two CHILD arcs.
	childCount := 0
	for v := 0; v < 3; v++ {
		for a := g.FirstArc(v); a != core.NIL; a = g.RawNextArc(a) {
			if g.ArcType(a) == core.ArcChild {
				childCount++
			}
		}
	}
	assert.Equal(t, 2, childCount)

	// the triangle's one non-tree edge reaches all the way back to the
	// root, so every vertex's lowpoint is the root's DFI (0).
	for v := 0; v < 3; v++ {
		assert.Equal(t, 0, g.Lowpoint(v), "vertex %d", v)
	}
}

// star: center 0 connected to 1,2,3. No back edges at all, so every
// non-root vertex's Lowpoint equals its own DFI.
func TestPreprocess_Star(t *testing.T) {
	g := newTestGraph(t, 4)
	for leaf := 1; leaf <= 3; leaf++ {
		_, _, err := g.AddEdge(0, 1, leaf, 1)
		require.NoError(t, err)
	}

	require.NoError(t, dfs.Preprocess(g))

	assert.Equal(t, core.NIL, g.Parent(0))
	for leaf := 1; leaf <= 3; leaf++ {
		assert.Equal(t, 0, g.Parent(leaf))
		assert.Equal(t, g.DFI(leaf), g.Lowpoint(leaf))
	}

	// all three DFS children of 0 share lowpoint == their own DFI, so
	// SeparatedDFSChildList is simply ordered by visit order here; check
	// it holds exactly the three leaves.
	children := 0
	g.SeparatedChildForEach(0, func(int) { children++ })
	assert.Equal(t, 3, children)
}

// two disjoint triangles: Preprocess must assign a fresh DFS tree (Parent
// NIL root) to each component rather than erroring or merging them.
func TestPreprocess_Disconnected(t *testing.T) {
	g := newTestGraph(t, 6)
	_, _, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(1, 1, 2, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(2, 1, 0, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(3, 1, 4, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(4, 1, 5, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(5, 1, 3, 1)
	require.NoError(t, err)

	require.NoError(t, dfs.Preprocess(g))

	assert.Equal(t, core.NIL, g.Parent(0))
	assert.Equal(t, core.NIL, g.Parent(3))

	roots := 0
	for v := 0; v < 6; v++ {
		if g.Parent(v) == core.NIL {
			roots++
		}
	}
	assert.Equal(t, 2, roots)
}

// a diamond 0-1,0-2,1-3,2-3,1-2 forces forward arcs: the DFS from 0 runs
// 0-2-3-1 as tree edges, so 0's and 2's arcs to the already-visited 1
// become FORWARD.
func TestPreprocess_ForwardArcTyped(t *testing.T) {
	g := newTestGraph(t, 4)
	_, _, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(0, 1, 2, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(1, 1, 2, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(1, 1, 3, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(2, 1, 3, 1)
	require.NoError(t, err)

	require.NoError(t, dfs.Preprocess(g))

	forward, back := 0, 0
	for v := 0; v < 4; v++ {
		for a := g.FirstArc(v); a != core.NIL; a = g.RawNextArc(a) {
			switch g.ArcType(a) {
			case core.ArcForward:
				forward++
			case core.ArcBack:
				back++
			}
		}
	}
	// two non-tree edges in this graph ((0,1) and (1,2)), each contributing
	// one FORWARD arc (owned by the ancestor) and one BACK arc (owned by
	// the descendant).
	assert.Equal(t, 2, forward)
	assert.Equal(t, 2, back)
	assert.Equal(t, 0, g.Lowpoint(3), "3's lowpoint is inherited from child 1, whose back edge reaches the root")
}

func TestSortByDFI_RoundTrip(t *testing.T) {
	g := newTestGraph(t, 4)
	_, _, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(1, 1, 2, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(2, 1, 3, 1)
	require.NoError(t, err)
	require.NoError(t, dfs.Preprocess(g))

	before := make([][]int, 4)
	for v := 0; v < 4; v++ {
		before[v] = g.Neighbors(v)
	}

	require.NoError(t, dfs.SortByDFI(g))
	assert.True(t, g.SortedByDFI())
	require.NoError(t, dfs.SortByDFI(g))
	assert.False(t, g.SortedByDFI())

	for v := 0; v < 4; v++ {
		assert.Equal(t, before[v], g.Neighbors(v))
	}
}
