package core_test

import (
	"testing"

	"github.com/pednova/planarity/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(n))

	return g
}

func TestInitGraph_ZeroOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(0))
	assert.Equal(t, 0, g.Order())
	assert.False(t, g.SortedByDFI())
}

func TestInitGraph_NegativeOrder(t *testing.T) {
	g := core.NewGraph()
	err := g.InitGraph(-1)
	assert.ErrorIs(t, err, core.ErrBadOrder)
}

func TestAddEdge_TwinInvariant(t *testing.T) {
	g := newTestGraph(t, 4)
	au, av, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)

	// T(T(a)) = a, and the neighbor of T(a) is the owner of a.
	assert.Equal(t, au, g.GetTwin(av))
	assert.Equal(t, av, g.GetTwin(au))
	assert.Equal(t, 1, g.Neighbor(au))
	assert.Equal(t, 0, g.Neighbor(av))
}

func TestAddEdge_RejectsLoops(t *testing.T) {
	g := newTestGraph(t, 3)
	_, _, err := g.AddEdge(0, 1, 0, 1)
	assert.ErrorIs(t, err, core.ErrLoopEdge)
}

func TestAddEdge_LinkSideControlsRingPosition(t *testing.T) {
	g := newTestGraph(t, 3)
	a01, _, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)
	a02, _, err := g.AddEdge(0, 0, 2, 1)
	require.NoError(t, err)

	// a02 was inserted at link 0 (head) of vertex 0's ring, so it must be
	// first; a01 was inserted at link 1 (tail) and stays second.
	assert.Equal(t, a02, g.FirstArc(0))
	assert.Equal(t, a01, g.LastArc(0))
}

func TestHideRestoreEdge_BitExact(t *testing.T) {
	g := newTestGraph(t, 4)
	a01, _, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)
	a02, _, err := g.AddEdge(0, 1, 2, 1)
	require.NoError(t, err)
	a03, _, err := g.AddEdge(0, 1, 3, 1)
	require.NoError(t, err)

	before := g.Arcs(0)
	require.NoError(t, g.HideEdge(a02))
	assert.NotContains(t, g.Arcs(0), a02)
	require.NoError(t, g.RestoreEdge(a02))
	after := g.Arcs(0)

	assert.Equal(t, before, after)
	_ = a01
	_ = a03
}

func TestHideRestoreEdge_StrictLIFO(t *testing.T) {
	g := newTestGraph(t, 3)
	a01, _, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)
	a02, _, err := g.AddEdge(0, 1, 2, 1)
	require.NoError(t, err)

	require.NoError(t, g.HideEdge(a01))
	require.NoError(t, g.HideEdge(a02))

	// restoring out of order is rejected
	err = g.RestoreEdge(a01)
	assert.Error(t, err)

	require.NoError(t, g.RestoreEdge(a02))
	require.NoError(t, g.RestoreEdge(a01))
}

func TestSortVertices_SelfInverse(t *testing.T) {
	g := newTestGraph(t, 4)
	// assign a fake DFI permutation directly, as dfs.Preprocess would.
	for v := 0; v < 4; v++ {
		g.SetDFI(v, 3-v)
	}
	_, _, err := g.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)

	beforeNeighbors := make([][]int, 4)
	for v := 0; v < 4; v++ {
		beforeNeighbors[v] = g.Neighbors(v)
	}

	require.NoError(t, g.SortVertices())
	assert.True(t, g.SortedByDFI())
	require.NoError(t, g.SortVertices())
	assert.False(t, g.SortedByDFI())

	for v := 0; v < 4; v++ {
		assert.Equal(t, beforeNeighbors[v], g.Neighbors(v), "vertex %d neighbors after round trip", v)
	}
}

func TestEnsureArcCapacity_LockedAfterModeAttach(t *testing.T) {
	g := newTestGraph(t, 3)
	g.AttachMode()
	err := g.EnsureArcCapacity(1000)
	assert.ErrorIs(t, err, core.ErrCapacityLocked)
}

func TestCopyGraph_DeepCopyIndependent(t *testing.T) {
	src := newTestGraph(t, 3)
	_, _, err := src.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)

	dst, err := core.DupGraph(src)
	require.NoError(t, err)

	_, _, err = src.AddEdge(1, 1, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, src.Degree(1))
	assert.Equal(t, 1, dst.Degree(1))
}

func TestVirtualVertex_CreateAndMap(t *testing.T) {
	g := newTestGraph(t, 3)
	root := g.CreateDFSChild(1)
	assert.True(t, g.IsVirtual(root))
	assert.Equal(t, 1, g.RealOf(root))
	assert.Equal(t, root, g.VirtualOf(1))
	assert.True(t, g.VirtualInUse(root))
}
