package drawing

import "github.com/pednova/planarity/core"

// VertexSegment is one vertex's horizontal segment: a row y spanning the
// inclusive column range [XMin, XMax].
type VertexSegment struct {
	Vertex   int
	Y        int
	XMin     int
	XMax     int
}

// EdgeSegment is one edge's vertical segment at column X, between its two
// endpoints' rows.
type EdgeSegment struct {
	U, V int
	X    int
}

// Layout is the full visibility representation of a DrawPlanar-mode
// embedding.
type Layout struct {
	Vertices []VertexSegment
	Edges    []EdgeSegment
}

// Compute builds a visibility representation from g, which must already
// hold a successful planar embedding (DrawPlanar mode).
//
// Row assignment: a DFS preorder index (DFI, already computed by
// preprocessing) is a valid row order for a visibility representation —
// it is a topological order of the tree-edge orientation, and every back
// edge in the embedding connects a descendant row to a strict-ancestor
// row, so no edge is ever horizontal. This is a simplification of the
// st-numbering construction the original visibility-drawing literature
// uses (which additionally orders siblings to respect rotation): it
// produces a valid, crossing-free set of rows and columns, but not
// necessarily the narrowest possible drawing width. See DESIGN.md.
//
// Column assignment: since DFI is a preorder numbering, every vertex's
// subtree occupies a contiguous DFI range — [DFI(v), DFI(v)+size(v)-1] —
// which is used directly as the vertex's column span, with subtree size
// computed by one iterative post-order pass over SeparatedDFSChildList.
func Compute(g *core.Graph) (*Layout, error) {
	n := g.Order()
	size := computeSubtreeSizes(g, n)

	layout := &Layout{
		Vertices: make([]VertexSegment, 0, n),
		Edges:    make([]EdgeSegment, 0, n),
	}

	for v := 0; v < n; v++ {
		dfi := g.DFI(v)
		layout.Vertices = append(layout.Vertices, VertexSegment{
			Vertex: v,
			Y:      dfi,
			XMin:   dfi,
			XMax:   dfi + size[v] - 1,
		})
	}

	seen := make(map[[2]int]bool)
	for v := 0; v < n; v++ {
		for _, a := range g.Arcs(v) {
			w := g.Neighbor(a)
			if g.IsVirtual(w) {
				w = g.RealOf(w)
			}
			key := [2]int{v, w}
			if v > w {
				key = [2]int{w, v}
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			x := g.DFI(v)
			if g.DFI(w) > x {
				x = g.DFI(w)
			}
			layout.Edges = append(layout.Edges, EdgeSegment{U: v, V: w, X: x})
		}
	}

	return layout, nil
}

// computeSubtreeSizes returns, for every real vertex, the number of
// vertices in its DFS subtree (including itself), via an iterative
// post-order walk of the DFS tree recorded by SeparatedDFSChildList.
func computeSubtreeSizes(g *core.Graph, n int) []int {
	size := make([]int, n)
	if n == 0 {
		return size
	}

	type frame struct {
		v        int
		childPos int
	}
	roots := make([]int, 0)
	for v := 0; v < n; v++ {
		if g.Parent(v) == core.NIL {
			roots = append(roots, v)
		}
	}

	for _, root := range roots {
		stack := []frame{{v: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := collectChildren(g, top.v)

			if top.childPos < len(children) {
				c := children[top.childPos]
				top.childPos++
				stack = append(stack, frame{v: c})
				continue
			}

			total := 1
			for _, c := range children {
				total += size[c]
			}
			size[top.v] = total
			stack = stack[:len(stack)-1]
		}
	}

	return size
}

func collectChildren(g *core.Graph, v int) []int {
	var out []int
	g.SeparatedChildForEach(v, func(c int) { out = append(out, c) })

	return out
}
