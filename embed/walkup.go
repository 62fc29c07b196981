package embed

import "github.com/pednova/planarity/core"

// Walkup marks, for the current vertex v and one of its pending back arcs
// (owned by v, typed BACK, pointing at ancestor w), every bicomp root along
// the DFS-tree path from w up to (but not past) v as pertinent, so Walkdown
// can find its way down from v through that chain of bicomps to reach w.
//
// Grounded on spec.md §4.4's description at the level of what gets marked
// (the tree path from w to v's child-ancestor-of-w); this implementation
// climbs that tree path directly via Parent pointers rather than the
// original's two-finger external-face walk, which is an optimization for
// amortized linear total running time, not a difference in which bicomps
// end up marked pertinent. See DESIGN.md for the trade-off this accepts.
func Walkup(g *core.Graph, v, backArc int) {
	w := g.Neighbor(backArc)
	g.SetPertinentAdjacencyInfo(w, g.GetTwin(backArc))

	x := w
	for x != core.NIL {
		if g.VertexVisited(x) == v {
			return
		}
		g.SetVertexVisited(x, v)

		p := g.Parent(x)
		if p == core.NIL {
			return
		}

		root := g.VirtualOf(x)
		if externallyActive(g, x, v) {
			g.PertinentBicompPushBack(p, root)
		} else {
			g.PertinentBicompPushFront(p, root)
		}

		if p == v {
			return
		}
		x = p
	}
}

// externallyActive reports whether x must remain reachable from some
// ancestor shallower than v: its own lowpoint reaches above v, or one of
// its separated (not yet merged) children's does.
func externallyActive(g *core.Graph, x, v int) bool {
	if g.Lowpoint(x) < v {
		return true
	}
	if front := g.SeparatedChildFront(x); front != core.NIL && g.Lowpoint(front) < v {
		return true
	}

	return false
}
