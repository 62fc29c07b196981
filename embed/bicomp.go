package embed

import (
	"fmt"

	"github.com/pednova/planarity/core"
)

// faceStep returns the next vertex/virtual-vertex along the external face
// after w, continuing in the same rotational direction that arrived at w
// via its link side enterSide, plus the link side of the next vertex that
// points back toward w. Each face vertex stores exactly two link arcs
// (VertexRec.Link), so "continue forward" means take the side opposite
// the one just arrived by.
func faceStep(g *core.Graph, w, enterSide int) (next, enterSideAtNext int) {
	arc := g.VertexLink(w, 1-enterSide)
	next = g.Neighbor(arc)
	back := g.GetTwin(arc)
	if g.VertexLink(next, 0) == back {
		return next, 0
	}
	return next, 1
}

// faceNeighbor returns the vertex reachable from w along side s and the
// link side at that neighbor which points back to w, used to seed a
// Walkdown pass at a bicomp root R (s = 0 or 1).
func faceNeighbor(g *core.Graph, w, side int) (next, enterSideAtNext int) {
	return faceStep(g, w, 1-side)
}

// InitializeBicomps seeds one degenerate two-vertex bicomp per DFS tree
// edge: the virtual root r = VirtualOf(c) takes over, as owner, the arc
// that c's real parent p originally held pointing at c (the CHILD-typed
// tree arc), while c's own PARENT-typed twin is repointed to name r
// instead of p. This is why JoinBicomps, run in reverse at the end (or
// early, whenever a pertinent merge is needed), can restore p's
// connection to c by simply re-owning that same arc back from r to p:
// no duplicate edge is ever created.
func InitializeBicomps(g *core.Graph) error {
	n := g.Order()
	for c := 0; c < n; c++ {
		p := g.Parent(c)
		if p == core.NIL {
			continue
		}
		r := g.VirtualOf(c)

		var a int = core.NIL
		for cand := g.FirstArc(p); cand != core.NIL; cand = g.RawNextArc(cand) {
			if g.Neighbor(cand) == c && g.ArcType(cand) == core.ArcChild {
				a = cand
				break
			}
		}
		if a == core.NIL {
			return fmt.Errorf("embed: InitializeBicomps: vertex %d has no CHILD arc from parent %d", c, p)
		}
		twin := g.GetTwin(a)

		g.MoveArcToOwner(p, r, a)
		g.SetNeighbor(twin, r)

		g.SetVertexLink(r, 0, a)
		g.SetVertexLink(r, 1, a)
		g.SetVertexLink(c, 0, twin)
		g.SetVertexLink(c, 1, twin)
	}

	return nil
}

// MergeVirtualRoot splices virtual root r's entire ring back into its
// DFSChild's DFS parent's ring, and retires r. This is both how a pertinent
// child bicomp gets absorbed mid-Walkdown (so the external-face walk can
// continue through it) and how JoinBicomps finishes every bicomp that
// never needed an early merge: the two are the same operation run at
// different times. kuratowski.Isolate does not call it: it marks the
// stalled root's ring in place instead.
func MergeVirtualRoot(g *core.Graph, r int) {
	c := g.DFSChild(r)
	p := g.Parent(c)

	for a := g.FirstArc(r); a != core.NIL; {
		next := g.RawNextArc(a)
		g.MoveArcToOwner(r, p, a)
		g.SetNeighbor(g.GetTwin(a), p)
		a = next
	}

	// p now carries r's former external-face presence; any link at p
	// referring to an arc that used to belong to r is already correct
	// since MoveArcToOwner preserves arc identity (only the owner and the
	// twin's Neighbor change, never the arc index).
}

// OrientVerticesInBicomp walks the external face starting at root,
// reversing the two link sides at each face vertex visited. Called when a
// child bicomp is merged in on the opposite side from how its root was
// entered, so the merged structure's rotation agrees with the parent
// bicomp's existing orientation (spec.md §4.6).
func OrientVerticesInBicomp(g *core.Graph, root int) {
	swap := func(v int) {
		l0, l1 := g.VertexLink(v, 0), g.VertexLink(v, 1)
		g.SetVertexLink(v, 0, l1)
		g.SetVertexLink(v, 1, l0)
	}

	start, enterSide := faceNeighbor(g, root, 0)
	w, side := start, enterSide
	for {
		next, nextSide := faceStep(g, w, side)
		swap(w)
		if next == root {
			break
		}
		w, side = next, nextSide
	}
	swap(root)
}

// JoinBicomps finishes every DFS tree edge's bicomp that Walkdown never
// had occasion to merge early: for c = 0..N-1 with Parent(c) != NIL, splice
// VirtualOf(c)'s remaining ring into Parent(c)'s ring. Run once after the
// v = N-1..0 embedding loop completes successfully.
func JoinBicomps(g *core.Graph) {
	n := g.Order()
	for c := 0; c < n; c++ {
		if g.Parent(c) == core.NIL {
			continue
		}
		r := g.VirtualOf(c)
		if g.VirtualInUse(r) && g.FirstArc(r) != core.NIL {
			MergeVirtualRoot(g, r)
		}
	}
}
