package planarity_test

import (
	"testing"

	"github.com/pednova/planarity"
	"github.com/pednova/planarity/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(n))
	for _, e := range edges {
		_, _, err := g.AddEdge(e[0], 1, e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestEmbed_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(0))

	res, err := planarity.Embed(g, planarity.ModePlanar)
	require.NoError(t, err)
	assert.Equal(t, planarity.Embedded, res)
}

func TestEmbed_SingleVertexNoEdges(t *testing.T) {
	g := buildGraph(t, 1, nil)

	res, err := planarity.Embed(g, planarity.ModePlanar)
	require.NoError(t, err)
	assert.Equal(t, planarity.Embedded, res)
}

func TestEmbed_Triangle(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	res, err := planarity.Embed(g, planarity.ModePlanar)
	require.NoError(t, err)
	assert.Equal(t, planarity.Embedded, res)
	for v := 0; v < 3; v++ {
		assert.Equal(t, 2, g.Degree(v))
	}
}

func TestEmbed_K4(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	})

	res, err := planarity.Embed(g, planarity.ModePlanar)
	require.NoError(t, err)
	assert.Equal(t, planarity.Embedded, res)
	for v := 0; v < 4; v++ {
		assert.Equal(t, 3, g.Degree(v))
	}
}

func TestEmbed_K5_NonEmbeddable(t *testing.T) {
	edges := [][2]int{}
	for u := 0; u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	g := buildGraph(t, 5, edges)
	original, err := core.DupGraph(g)
	require.NoError(t, err)

	res, err := planarity.Embed(g, planarity.ModePlanar)
	require.NoError(t, err)
	assert.Equal(t, planarity.NonEmbeddable, res)

	require.NoError(t, planarity.TestEmbedResultIntegrity(original, g, planarity.ModePlanar, res))
	assertDegreeSequence(t, g, 5, 4, 10)
}

func TestEmbed_K33_NonEmbeddable(t *testing.T) {
	edges := [][2]int{}
	for u := 0; u < 3; u++ {
		for v := 3; v < 6; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	g := buildGraph(t, 6, edges)
	original, err := core.DupGraph(g)
	require.NoError(t, err)

	res, err := planarity.Embed(g, planarity.ModePlanar)
	require.NoError(t, err)
	assert.Equal(t, planarity.NonEmbeddable, res)

	require.NoError(t, planarity.TestEmbedResultIntegrity(original, g, planarity.ModePlanar, res))
	assertDegreeSequence(t, g, 6, 3, 9)
}

// TestEmbed_Petersen_SearchForK33 exercises spec.md §8's Petersen-graph
// scenario: the Petersen graph is nonplanar and contains a K3,3
// subdivision, so a ModeSearchForK33 run must report SearchHit and leave
// behind a genuine K3,3 homeomorph.
func TestEmbed_Petersen_SearchForK33(t *testing.T) {
	// Outer 5-cycle 0-4, inner 5-cycle (pentagram) 5-9, spokes i -- i+5.
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	}
	g := buildGraph(t, 10, edges)
	original, err := core.DupGraph(g)
	require.NoError(t, err)

	res, err := planarity.Embed(g, planarity.ModeSearchForK33)
	require.NoError(t, err)
	assert.Equal(t, planarity.SearchHit, res)

	require.NoError(t, planarity.TestEmbedResultIntegrity(original, g, planarity.ModeSearchForK33, res))
	assertDegreeSequence(t, g, 6, 3, 9)
}

// assertDegreeSequence checks the live (nonzero-degree) real vertices of g
// number exactly wantBranches at degree branchDeg and the rest at degree 2,
// with exactly wantEdges live edges total — the shape spec.md §8 specifies
// for each obstruction kind, independent of TestEmbedResultIntegrity's own
// homeomorphism check. Degree is computed as the real vertex's own degree
// plus its still-in-use virtual counterpart's, since Isolate prunes without
// forcing every remaining virtual root to merge back first.
func assertDegreeSequence(t *testing.T, g *core.Graph, wantBranches, branchDeg, wantEdges int) {
	t.Helper()
	branches, edges := 0, 0
	for v := 0; v < g.Order(); v++ {
		d := g.Degree(v)
		r := g.VirtualOf(v)
		if g.VirtualInUse(r) {
			d += g.Degree(r)
		}
		if d == 0 {
			continue
		}
		edges += d
		switch d {
		case branchDeg:
			branches++
		case 2:
		default:
			t.Fatalf("vertex %d has unexpected effective degree %d", v, d)
		}
	}
	assert.Equal(t, wantBranches, branches, "branch-vertex count")
	assert.Equal(t, wantEdges, edges/2, "live edge count")
}
