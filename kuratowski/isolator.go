package kuratowski

import (
	"fmt"

	"github.com/pednova/planarity/core"
)

// StallInfo is everything Walkdown records about the side(s) of a bicomp
// root where it could not finish embedding v's pending back edges: the
// stalled face vertex on each side (core.NIL if that side finished
// cleanly) and the forward arc witnessing the unembedded back edge.
type StallInfo struct {
	Root      int // bicomp root (virtual vertex) being processed
	StopSide0 int // face vertex where side 0's walk stopped, or NIL
	StopSide1 int // face vertex where side 1's walk stopped, or NIL
	PendingFA int // a forward arc at the stalled vertex still awaiting embedding
}

// Isolate reduces g in place to a Kuratowski (or outerplanar) obstruction
// subdivision proving v is not planar, given the configuration Walkdown
// stalled on. The bicomp root info.Root is a virtual vertex standing in for
// v until JoinBicomps eventually re-owns its ring back to v (embed.bicomp.go);
// rather than force that merge early, the witness paths are walked and
// marked directly on info.Root's ring, and markTreeEdge locates the v-child
// tree arc wherever it currently lives (on v once joined, on the virtual
// root until then) — so the final kept set names real vertices exactly as
// integrity.CheckObstruction expects, without disturbing the embedding
// Walkdown has already built. It case-splits on spec.md §4.7's minors A/B
// (pertinence reaches the stalled vertex through a still-pertinent child
// bicomp, or a separated child whose lowpoint is active) versus the general
// minor E reduction, marking a second, independent witness path in each
// case rather than always falling back to the same one. See DESIGN.md for
// which of the full A-E tie-breaks (minors C/D's X-Y-path-highest-point
// test, the outerplanar-specific E1-E4 split) this still folds into the
// minor E case instead of handling separately.
func Isolate(g *core.Graph, v int, info StallInfo) error {
	if info.PendingFA == core.NIL {
		return fmt.Errorf("kuratowski: Isolate: %w: no pending forward arc recorded", core.ErrArcNotFound)
	}

	r := info.Root
	c := g.DFSChild(r)

	keep := make(map[int]bool)
	markTreeEdge(g, v, c, keep)

	stalledSide, w := 0, info.StopSide0
	if w == core.NIL {
		stalledSide, w = 1, info.StopSide1
	}
	otherSide := 1 - stalledSide

	x := markFacePathToExternallyActive(g, r, stalledSide, v, keep)
	y := markFacePathToExternallyActive(g, r, otherSide, v, keep)

	d := g.Neighbor(info.PendingFA)
	markTreePath(g, d, v, keep)
	keep[info.PendingFA] = true
	keep[g.GetTwin(info.PendingFA)] = true

	switch {
	case !g.PertinentBicompEmpty(w):
		// Minor A: the stalled vertex is itself pertinent through one of
		// its own child bicomps. Reach past it into that child for a
		// second, independent witness instead of climbing from x/y.
		child := g.PertinentBicompPopFront(w)
		markTreeEdge(g, w, g.DFSChild(child), keep)
		climbToActiveWitness(g, g.DFSChild(child), v, keep)

	case hasActiveSeparatedChild(g, w, v):
		// Minor B: a separated (not yet merged) child of the stalled
		// vertex has a lowpoint above v; descend into it instead.
		real := w
		if g.IsVirtual(w) {
			real = g.RealOf(w)
		}
		sc := g.SeparatedChildFront(real)
		markTreeEdge(g, real, sc, keep)
		climbToActiveWitness(g, sc, v, keep)

	default:
		// Minor E (general case): climb from whichever of x, y is not
		// already the stalled vertex, to find its own independent
		// back-edge witness toward an ancestor strictly above v.
		other := y
		if w == y {
			other = x
		}
		if other != core.NIL {
			climbToActiveWitness(g, other, v, keep)
		}
	}

	pruneUnmarked(g, keep)

	return nil
}

// markTreeEdge marks the single CHILD/PARENT arc pair joining DFS parent p
// to child c. InitializeBicomps (embed/bicomp.go) moves this arc's
// ownership from p onto VirtualOf(c) until that bicomp merges back in, so
// the arc is looked for on both rings rather than assumed to still be on
// p's.
func markTreeEdge(g *core.Graph, p, c int, keep map[int]bool) {
	owners := [2]int{p, g.VirtualOf(c)}
	for _, owner := range owners {
		if owner != p && !g.VirtualInUse(owner) {
			continue
		}
		for a := g.FirstArc(owner); a != core.NIL; a = g.RawNextArc(a) {
			if g.ArcType(a) == core.ArcChild && g.Neighbor(a) == c {
				keep[a] = true
				keep[g.GetTwin(a)] = true
				return
			}
		}
	}
}

// markTreePath marks the CHILD/PARENT arc pairs from w up to v along the
// DFS tree (w is a strict descendant of v once a back edge from w reaches
// into v's subtree, per Walkup's ascent). If w is not a descendant of v,
// the loop never meets v and marks the whole tree path from w up to its
// DFS root instead.
func markTreePath(g *core.Graph, w, v int, keep map[int]bool) {
	for x := w; x != core.NIL && x != v; x = g.Parent(x) {
		p := g.Parent(x)
		if p == core.NIL {
			return
		}
		markTreeEdge(g, p, x, keep)
	}
}

// climbToActiveWitness descends from start (a real or virtual vertex)
// toward an actual witnessing back edge proving start's subtree is
// externally active with respect to v: at each step, if the current real
// vertex's own least ancestor is both above v and equal to its lowpoint, it
// owns the witnessing back arc directly; otherwise the witness lives
// deeper, in its lowest-lowpoint still-separated child (SeparatedChildFront
// is lowpoint-ordered, spec.md glossary "Externally active"). Marks every
// tree edge crossed plus the final back edge, and returns the ancestor
// reached, or core.NIL if start is not actually externally active.
func climbToActiveWitness(g *core.Graph, start, v int, keep map[int]bool) int {
	cur := start
	if g.IsVirtual(cur) {
		cur = g.RealOf(cur)
	}

	for steps := 0; steps < g.Order()+1; steps++ {
		if la := g.LeastAncestor(cur); la < v && la == g.Lowpoint(cur) {
			for a := g.FirstArc(cur); a != core.NIL; a = g.RawNextArc(a) {
				if g.ArcType(a) == core.ArcBack && g.Neighbor(a) == la {
					keep[a] = true
					keep[g.GetTwin(a)] = true
					return la
				}
			}
			return core.NIL
		}

		child := g.SeparatedChildFront(cur)
		if child == core.NIL || g.Lowpoint(child) >= v {
			return core.NIL
		}
		markTreeEdge(g, cur, child, keep)
		cur = child
	}

	return core.NIL
}

func hasActiveSeparatedChild(g *core.Graph, w, v int) bool {
	real := w
	if g.IsVirtual(w) {
		real = g.RealOf(w)
	}
	sc := g.SeparatedChildFront(real)

	return sc != core.NIL && g.Lowpoint(sc) < v
}

// markFacePathToExternallyActive walks root's external face on the given
// side, marking every arc crossed, until it reaches a vertex externally
// active with respect to v (or returns to root, meaning that side never
// stalled). Returns the externally-active vertex reached, or core.NIL.
func markFacePathToExternallyActive(g *core.Graph, root, side, v int, keep map[int]bool) int {
	w := root
	enterSide := 1 - side

	for steps := 0; steps < 2*g.Order()+4; steps++ {
		arc := g.VertexLink(w, 1-enterSide)
		if arc == core.NIL {
			return core.NIL
		}
		keep[arc] = true
		keep[g.GetTwin(arc)] = true

		next := g.Neighbor(arc)
		back := g.GetTwin(arc)
		nextEnterSide := 1
		if g.VertexLink(next, 0) == back {
			nextEnterSide = 0
		}

		w, enterSide = next, nextEnterSide
		if w == root {
			return core.NIL
		}
		if isExternallyActive(g, w, v) {
			return w
		}
	}

	return core.NIL
}

func isExternallyActive(g *core.Graph, w, v int) bool {
	real := w
	if g.IsVirtual(w) {
		real = g.RealOf(w)
	}
	if g.Lowpoint(real) < v {
		return true
	}
	if front := g.SeparatedChildFront(real); front != core.NIL && g.Lowpoint(front) < v {
		return true
	}

	return false
}

// pruneUnmarked deletes every live arc pair not in keep, leaving only the
// subdivision's edges. Vertices off the subdivision are left in the graph
// at degree 0 rather than removed from the vertex array, since core has no
// vertex-deletion primitive (vertex count is fixed at InitGraph); the
// integrity checker's homeomorphism test only inspects non-isolated
// vertices, matching spec.md §4.9's "returned subgraph" framing.
func pruneUnmarked(g *core.Graph, keep map[int]bool) {
	n := g.Order()
	for v := 0; v < 2*n; v++ {
		for a := g.FirstArc(v); a != core.NIL; {
			next := g.RawNextArc(a)
			if !keep[a] {
				_ = g.DeleteEdge(a)
			}
			a = next
		}
	}
}
