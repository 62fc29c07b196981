package dfs

import (
	"fmt"

	"github.com/pednova/planarity/core"
)

// Preprocess performs the depth-first search and the Lowpoint/LeastAncestor
// computation in one linear pass: assigns DFI, sets DFS parent, types every
// arc CHILD/PARENT/FORWARD/BACK, creates one virtual vertex per DFS child
// edge, and leaves each vertex's SeparatedDFSChildList ordered by ascending
// child Lowpoint. A disconnected graph gets one DFS tree per component
// (each component's root has Parent NIL); nothing here joins components —
// that happens later, per virtual root, when bicomps are merged.
//
// The traversal is iterative, driven by core.Graph.DFSStack as a stack of
// (parent, candidate-arc) pairs rather than Go call-stack recursion. When a
// vertex u is first visited its whole adjacency ring is scanned exactly
// once: arcs to already-visited neighbors are typed BACK on the spot (save
// for the one already typed PARENT), and arcs to still-unvisited neighbors
// are pushed as candidates. A (u, NIL) marker is pushed immediately before
// those candidates, so — because the stack is LIFO — it is only popped once
// every candidate it sits below (and anything their own recursion pushes)
// has been fully processed; that second pop is where u's Lowpoint and
// LeastAncestor are computed and u is sorted into its parent's
// SeparatedDFSChildList. A candidate that, by the time it is finally
// popped, targets a vertex visited in the meantime (reached first via a
// different ancestor) is a forward arc, not a tree edge: typed FORWARD and
// moved to the tail of its owner's ring.
func Preprocess(g *core.Graph) error {
	n := g.Order()
	if n == 0 {
		return nil
	}

	visited := make([]bool, n)
	g.DFSStack.Reset()
	dfi := 0

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		if err := pushPair(g, core.NIL, core.NIL); err != nil {
			return fmt.Errorf("dfs: Preprocess: %w", err)
		}

		for g.DFSStack.Len() > 0 {
			uparent, e := popPair(g)

			var u int
			switch {
			case uparent == core.NIL:
				u = start
			case e == core.NIL:
				u = uparent
			default:
				u = g.Neighbor(e)
			}

			switch {
			case !visited[u]:
				visited[u] = true
				g.SetDFI(u, dfi)
				dfi++
				g.SetParent(u, uparent)

				if e != core.NIL {
					twin := g.GetTwin(e)
					g.SetArcType(e, core.ArcChild)
					g.SetArcType(twin, core.ArcParent)
					g.MoveArcToFirst(uparent, e)
					g.CreateDFSChild(u)
				}

				// Pushed before u's own candidates below, so it only pops
				// once every one of them (and their own descendants) has
				// been fully processed.
				if err := pushPair(g, u, core.NIL); err != nil {
					return fmt.Errorf("dfs: Preprocess: %w", err)
				}

				for a := g.FirstArc(u); a != core.NIL; a = g.RawNextArc(a) {
					target := g.Neighbor(a)
					if !visited[target] {
						if err := pushPair(g, u, a); err != nil {
							return fmt.Errorf("dfs: Preprocess: %w", err)
						}
					} else if g.ArcType(a) != core.ArcParent {
						g.SetArcType(a, core.ArcBack)
					}
				}

			case e == core.NIL:
				finishVertex(g, u)
				if p := g.Parent(u); p != core.NIL {
					g.SeparatedChildInsertSorted(p, u)
				}

			default:
				// e targeted an unvisited vertex when pushed, but that
				// vertex was reached first via a different ancestor: e is
				// the forward half of a back edge, not a tree edge (its
				// twin was already typed BACK during the target's own
				// first-visit scan above).
				g.SetArcType(e, core.ArcForward)
				g.MoveArcToLast(uparent, e)
				g.FwdArcPushBack(uparent, e)
			}
		}
	}

	if dfi != n {
		return fmt.Errorf("dfs: Preprocess: %w: reached %d of %d vertices", ErrIncompleteTraversal, dfi, n)
	}

	return nil
}

// finishVertex computes u's Lowpoint and LeastAncestor from its now-final
// ring: the minimum over CHILD arcs' target Lowpoint and BACK arcs' target
// DFI. Forward arcs are grouped at the ring's tail by construction (every
// MoveArcToLast above only ever moves a forward arc there), so the scan
// stops at the first one.
func finishVertex(g *core.Graph, u int) {
	dfi := g.DFI(u)
	lowpoint := dfi
	leastAncestor := dfi

	for a := g.FirstArc(u); a != core.NIL; a = g.RawNextArc(a) {
		switch g.ArcType(a) {
		case core.ArcForward:
			// ring invariant: once one FORWARD arc is seen, none of the
			// rest are CHILD or BACK.
		case core.ArcChild:
			if lp := g.Lowpoint(g.Neighbor(a)); lp < lowpoint {
				lowpoint = lp
			}
			continue
		case core.ArcBack:
			if d := g.DFI(g.Neighbor(a)); d < leastAncestor {
				leastAncestor = d
			}
			continue
		default:
			continue
		}
		break
	}

	g.SetLeastAncestor(u, leastAncestor)
	if leastAncestor < lowpoint {
		g.SetLowpoint(u, leastAncestor)
	} else {
		g.SetLowpoint(u, lowpoint)
	}
}

// pushPair pushes a (parent, candidate-arc) pair onto the DFS stack.
func pushPair(g *core.Graph, parent, arc int) error {
	if err := g.DFSStack.Push(parent); err != nil {
		return err
	}
	return g.DFSStack.Push(arc)
}

// popPair pops the most recently pushed (parent, candidate-arc) pair.
func popPair(g *core.Graph) (parent, arc int) {
	arc = g.DFSStack.Pop()
	parent = g.DFSStack.Pop()
	return parent, arc
}
