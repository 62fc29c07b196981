package embed

import "github.com/pednova/planarity/core"

// StallInfo describes a Walkdown attempt that finished without fully
// embedding v's pending back edges: the bicomp root being processed, the
// face vertex where each side's walk stopped (core.NIL for a side that
// reached back to Root cleanly), and a forward arc still pending at the
// stall point for the isolator (C8) to use as its witness back edge.
type StallInfo struct {
	Root      int
	StopSide0 int
	StopSide1 int
	PendingFA int
}

// Walkdown descends the external face of the bicomp rooted at r in both
// directions, embedding every back edge it finds pending (via
// PertinentAdjacencyInfo) and merging in every pertinent child bicomp it
// passes through, until both directions reach a vertex that is externally
// active with respect to v (or dead ends at a vertex with no pertinent or
// external structure left). Returns ok=false with the stall point recorded
// once any side fails to clear every pertinent vertex. Grounded on
// spec.md §4.5; the two-sided walk and its stop conditions follow the
// teacher's (lvlath) style of a single explicit loop with early-continue
// branches rather than deep nesting.
func Walkdown(g *core.Graph, mode Mode, v, r int) (ok bool, stall StallInfo) {
	stall.Root = core.NIL
	stall.StopSide0 = core.NIL
	stall.StopSide1 = core.NIL
	stall.PendingFA = core.NIL

	clean0, stop0 := walkdownSide(g, mode, v, r, 0)
	clean1, stop1 := walkdownSide(g, mode, v, r, 1)

	if clean0 && clean1 {
		return true, stall
	}

	stall.Root = r
	if !clean0 {
		stall.StopSide0 = stop0
		stall.PendingFA = firstPendingForwardArc(g, stop0)
	}
	if !clean1 {
		stall.StopSide1 = stop1
		if stall.PendingFA == core.NIL {
			stall.PendingFA = firstPendingForwardArc(g, stop1)
		}
	}

	return false, stall
}

// firstPendingForwardArc returns the first still-pending forward arc owned
// by w (one whose back-edge partner has not yet been embedded), or NIL.
func firstPendingForwardArc(g *core.Graph, w int) int {
	if w == core.NIL {
		return core.NIL
	}
	return g.FwdArcFront(w)
}

// walkdownSide walks one direction (side) of r's external face, stopping
// when it can no longer proceed productively in that direction. Returns
// clean=true if it reached back around to v (or to root with nothing left
// pertinent), clean=false with the vertex it stalled at otherwise.
func walkdownSide(g *core.Graph, mode Mode, v, r, side int) (clean bool, stoppedAt int) {
	w, enterSide := faceNeighbor(g, r, side)

	for {
		if w == v {
			return true, core.NIL
		}

		if mode.Outerplanar && g.IsVirtual(w) {
			// Outerplanar mode never descends into a bicomp's internal
			// structure; only the external face itself is ever walked.
			return false, w
		}

		if !g.PertinentBicompEmpty(w) {
			child := g.PertinentBicompPopFront(w)
			if faceOrientationDisagrees(g, w, enterSide, child) {
				OrientVerticesInBicomp(g, child)
			}
			MergeVirtualRoot(g, child)
			// w's link slots still name the same two face arcs after the
			// merge (MergeVirtualRoot only reassigns arc ownership, never
			// w's own Link entries), so the walk resumes at w unchanged.
			continue
		}

		if info := g.PertinentAdjacencyInfo(w); info != core.NIL {
			embedBackEdgeChord(g, v, w, info)
			g.SetPertinentAdjacencyInfo(w, core.NIL)
		}

		if externallyActive(g, w, v) {
			if g.PertinentAdjacencyInfo(w) != core.NIL || !g.PertinentBicompEmpty(w) {
				return false, w
			}
			return true, core.NIL
		}

		next, nextSide := faceStep(g, w, enterSide)
		if next == w || next == r {
			// next == w: no further structure beyond w in this direction.
			// next == r: the face closed back to the bicomp root (e.g. the
			// degenerate single-child bicomp), so this side is exhausted.
			// Either way, clean only if nothing pertinent was left at w.
			return g.PertinentAdjacencyInfo(w) == core.NIL && g.PertinentBicompEmpty(w), w
		}
		w, enterSide = next, nextSide
	}
}

// faceOrientationDisagrees reports whether child's root is entered from a
// side that would leave its internal rotation reversed relative to the
// direction the merge walk is proceeding, requiring OrientVerticesInBicomp
// before the splice (spec.md §4.6).
func faceOrientationDisagrees(g *core.Graph, w, enterSide, child int) bool {
	return g.VertexLink(child, 0) == g.VertexLink(w, 1-enterSide)
}

// embedBackEdgeChord embeds the back edge witnessed by forward arc info: the
// FORWARD arc is owned by the ancestor w (set at DFS preprocessing time, per
// dfs.Preprocess) and already has Neighbor v; its twin is the BACK arc owned
// by v, already Neighbor w. Both halves of the edge structurally exist and
// are correctly twinned from DFS time — embedding is pure face bookkeeping:
// record each arc into its owner's external-face link slot, then retire
// info from w's pending forward-arc list (spec.md §4.5).
func embedBackEdgeChord(g *core.Graph, v, w, info int) {
	twin := g.GetTwin(info)

	g.SetVertexLink(w, sideFor(g, w, info), info)
	g.SetVertexLink(v, sideFor(g, v, twin), twin)

	g.FwdArcRemove(w, info)
}

// sideFor picks whichever of owner's two link slots is currently empty
// (NIL) to receive a newly spliced-in face arc, preferring side 0.
func sideFor(g *core.Graph, owner, arc int) int {
	if g.VertexLink(owner, 0) == core.NIL || g.VertexLink(owner, 0) == arc {
		return 0
	}
	if g.VertexLink(owner, 1) == core.NIL || g.VertexLink(owner, 1) == arc {
		return 1
	}

	return 1
}
