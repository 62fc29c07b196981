package core

import "fmt"

// GetTwin returns the other arc of the pair arc belongs to. Arcs are
// allocated in twin-adjacent slots, so the twin is simply arc XOR 1.
func (g *Graph) GetTwin(arc int) int { return arc ^ 1 }

// detachArc unlinks arc from its owner's ring in place, without touching
// the arc's own Neighbor/Type fields, and without pushing it on the hide
// stack. It is the shared primitive behind HideEdge, DeleteEdge, and ring
// repositioning (MoveArcToFirst/Last detach-then-reattach).
func (g *Graph) detachArc(owner, arc int) {
	p, n := g.a[arc].PrevArc, g.a[arc].NextArc
	if p != NIL {
		g.a[p].NextArc = n
	} else {
		g.v[owner].FirstArc = n
	}
	if n != NIL {
		g.a[n].PrevArc = p
	} else {
		g.v[owner].LastArc = p
	}
	g.a[arc].NextArc, g.a[arc].PrevArc = NIL, NIL
}

// attachArcFirst links arc into owner's ring at the head (link side 0).
func (g *Graph) attachArcFirst(owner, arc int) {
	head := g.v[owner].FirstArc
	g.a[arc].PrevArc = NIL
	g.a[arc].NextArc = head
	if head != NIL {
		g.a[head].PrevArc = arc
	} else {
		g.v[owner].LastArc = arc
	}
	g.v[owner].FirstArc = arc
}

// attachArcLast links arc into owner's ring at the tail (link side 1).
func (g *Graph) attachArcLast(owner, arc int) {
	tail := g.v[owner].LastArc
	g.a[arc].NextArc = NIL
	g.a[arc].PrevArc = tail
	if tail != NIL {
		g.a[tail].NextArc = arc
	} else {
		g.v[owner].FirstArc = arc
	}
	g.v[owner].LastArc = arc
}

// attachArcAt re-links arc into owner's ring at the exact position
// between prev and next (either may be NIL for "was head"/"was tail"),
// restoring the bit-exact position a HideEdge snapshot recorded.
func (g *Graph) attachArcAt(owner, arc, prev, next int) {
	g.a[arc].PrevArc = prev
	g.a[arc].NextArc = next
	if prev != NIL {
		g.a[prev].NextArc = arc
	} else {
		g.v[owner].FirstArc = arc
	}
	if next != NIL {
		g.a[next].PrevArc = arc
	} else {
		g.v[owner].LastArc = arc
	}
}

// MoveArcToFirst detaches arc from owner's ring and reinserts it at the
// head, used by DFS preprocessing to keep child arcs at the front of the
// ring (spec.md §4.2).
func (g *Graph) MoveArcToFirst(owner, arc int) {
	g.detachArc(owner, arc)
	g.attachArcFirst(owner, arc)
}

// MoveArcToLast detaches arc from owner's ring and reinserts it at the
// tail, used to keep forward arcs at the back of the ring.
func (g *Graph) MoveArcToLast(owner, arc int) {
	g.detachArc(owner, arc)
	g.attachArcLast(owner, arc)
}

// MoveArcToOwner detaches arc from oldOwner's ring and appends it to
// newOwner's ring, without altering arc's Neighbor field. Used when a DFS
// tree edge's parent-side arc is handed off to its child's bicomp root
// copy at embedding setup, and again in reverse by JoinBicomps.
func (g *Graph) MoveArcToOwner(oldOwner, newOwner, arc int) {
	g.detachArc(oldOwner, arc)
	g.attachArcLast(newOwner, arc)
}

// allocArcPair returns two fresh twin arc indices, or an error if the
// fixed-capacity pool is exhausted.
func (g *Graph) allocArcPair() (int, int, error) {
	if g.arcCount >= g.arcCapacity/2 {
		return NIL, NIL, fmt.Errorf("core: AddEdge: %w", ErrArcCapacityExhausted)
	}
	a0 := 2 * g.arcCount
	a1 := a0 + 1
	g.arcCount++

	return a0, a1, nil
}

// AddEdge inserts a new edge between real/virtual-vertex indices u and v,
// at the ring side requested by linkU (0=head,1=tail) for u's copy and
// linkV for v's copy. Returns the two new arc indices (u's arc, v's arc).
// Self-loops are rejected (spec.md §1 Non-goals; see SPEC_FULL.md §3 on
// why this is enforced in AddEdge rather than left to an I/O reader).
func (g *Graph) AddEdge(u int, linkU int, v int, linkV int) (int, int, error) {
	if u == v {
		return NIL, NIL, fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrLoopEdge)
	}
	if u < 0 || u >= len(g.v) || v < 0 || v >= len(g.v) {
		return NIL, NIL, fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrVertexRange)
	}

	au, av, err := g.allocArcPair()
	if err != nil {
		return NIL, NIL, err
	}
	g.a[au] = Arc{Neighbor: v, NextArc: NIL, PrevArc: NIL, live: true}
	g.a[av] = Arc{Neighbor: u, NextArc: NIL, PrevArc: NIL, live: true}

	if linkU == 0 {
		g.attachArcFirst(u, au)
	} else {
		g.attachArcLast(u, au)
	}
	if linkV == 0 {
		g.attachArcFirst(v, av)
	} else {
		g.attachArcLast(v, av)
	}

	return au, av, nil
}

// DeleteEdge permanently removes the edge owning arc (and its twin) from
// both rings. Unlike HideEdge, a deleted arc's pool slot is not reusable
// within this Embed call (the pool is not compacted), matching spec.md
// §4.1's "pool sized at initialization; hide removes without freeing".
func (g *Graph) DeleteEdge(arc int) error {
	if arc < 0 || arc >= len(g.a) || !g.a[arc].live {
		return fmt.Errorf("core: DeleteEdge(%d): %w", arc, ErrArcNotFound)
	}
	twin := g.GetTwin(arc)
	owner := g.a[twin].Neighbor
	twinOwner := g.a[arc].Neighbor

	g.detachArc(owner, arc)
	g.detachArc(twinOwner, twin)
	g.a[arc].live = false
	g.a[twin].live = false

	return nil
}

// HideEdge unlinks the edge owning arc (and its twin) from both rings
// without clearing Neighbor/Type, recording the exact ring position of
// each half so RestoreEdge can relink it bit-exactly, and pushes arc onto
// the per-graph hide stack so callers restore in LIFO order.
func (g *Graph) HideEdge(arc int) error {
	if arc < 0 || arc >= len(g.a) || !g.a[arc].live {
		return fmt.Errorf("core: HideEdge(%d): %w", arc, ErrArcNotFound)
	}
	twin := g.GetTwin(arc)
	owner := g.a[twin].Neighbor
	twinOwner := g.a[arc].Neighbor

	g.hideSnap[arc] = hideSnapshot{
		selfPrev: g.a[arc].PrevArc, selfNext: g.a[arc].NextArc,
		twinPrev: g.a[twin].PrevArc, twinNext: g.a[twin].NextArc,
	}

	g.detachArc(owner, arc)
	g.detachArc(twinOwner, twin)

	return g.hideStack.Push(arc)
}

// RestoreEdge pops the most recently hidden arc and relinks it (and its
// twin) at the exact ring position it occupied before hiding, using the
// snapshot HideEdge recorded. Callers must restore edges in strict LIFO
// order relative to the matching HideEdge calls; an out-of-order request
// is rejected and leaves the hide stack unchanged.
func (g *Graph) RestoreEdge(arc int) error {
	if g.hideStack.Empty() {
		return fmt.Errorf("core: RestoreEdge: hide stack is empty")
	}
	if top := g.hideStack.Peek(); top != arc {
		return fmt.Errorf("core: RestoreEdge(%d): expected %d (hide stack is strictly LIFO)", arc, top)
	}
	g.hideStack.Pop()
	twin := g.GetTwin(arc)
	owner := g.a[twin].Neighbor
	twinOwner := g.a[arc].Neighbor
	snap := g.hideSnap[arc]

	g.attachArcAt(owner, arc, snap.selfPrev, snap.selfNext)
	g.attachArcAt(twinOwner, twin, snap.twinPrev, snap.twinNext)

	return nil
}
