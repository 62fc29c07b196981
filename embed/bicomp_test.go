package embed_test

import (
	"testing"

	"github.com/pednova/planarity/core"
	"github.com/pednova/planarity/dfs"
	"github.com/pednova/planarity/embed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(n))
	for i := 0; i < n-1; i++ {
		_, _, err := g.AddEdge(i, 1, i+1, 1)
		require.NoError(t, err)
	}

	return g
}

// InitializeBicomps seeds one virtual root per DFS tree edge; JoinBicomps
// should splice every one of them back in, leaving the original adjacency
// (just re-keyed through virtual vertices and back) intact.
func TestInitializeBicomps_JoinBicomps_RoundTrip(t *testing.T) {
	g := newPathGraph(t, 4)
	require.NoError(t, dfs.Preprocess(g))
	require.NoError(t, dfs.SortByDFI(g))
	require.NoError(t, embed.InitializeBicomps(g))

	for c := 1; c < 4; c++ {
		root := g.VirtualOf(c)
		assert.True(t, g.VirtualInUse(root))
		assert.NotEqual(t, core.NIL, g.FirstArc(root))
	}

	embed.JoinBicomps(g)

	for v := 0; v < 4; v++ {
		assert.Equal(t, core.NIL, g.FirstArc(g.VirtualOf(v)))
	}
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 1, g.Degree(3))
}
