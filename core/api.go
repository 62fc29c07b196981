package core

import "fmt"

// defaultArcCapacityFor returns a reasonable default arc pool size for a
// graph of order n, sized for a maximal planar graph (3n-6 edges) plus
// slack for the forward/back arcs a non-planar input may still carry
// through preprocessing before embedding fails. Callers with denser graphs
// should call EnsureArcCapacity explicitly before any mode attaches.
func defaultArcCapacityFor(n int) int {
	if n < 4 {
		return 8
	}
	cap := 2 * (3*n - 6 + n) // 2x for both arcs of each edge, +n slack
	if cap < 8 {
		cap = 8
	}

	return cap
}

// NewGraph allocates an uninitialized Graph. Call InitGraph before use.
func NewGraph() *Graph { return &Graph{} }

// InitGraph sizes all arrays for a graph of order N, per spec.md §6.
// Calling it on an already-initialized Graph reallocates every array and
// discards the previous contents (CopyGraph relies on this).
func (g *Graph) InitGraph(n int) error {
	if n < 0 {
		return fmt.Errorf("core: InitGraph: %w: n=%d", ErrBadOrder, n)
	}
	g.n = n
	g.arcCapacity = defaultArcCapacityFor(n)
	g.arcCount = 0
	g.sortedByDFI = false
	g.modeAttached = false

	g.v = make([]VertexRec, 2*n)
	for i := range g.v {
		g.v[i] = VertexRec{
			Index: i % n,
			Parent: NIL, Lowpoint: NIL, LeastAncestor: NIL,
			FirstArc: NIL, LastArc: NIL,
			PertinentAdjacencyInfo: NIL,
			PertinentBicompList:    newRing(),
			SeparatedDFSChildList:  newRing(),
			FwdArcList:             newRing(),
			Visited:                NIL,
			Link:                   [2]int{NIL, NIL},
			DFSChild:               NIL,
		}
	}
	for i := 0; i < n; i++ {
		g.v[i].Index = i
		g.v[n+i].DFSChild = i
		g.v[n+i].Index = i
	}

	g.a = make([]Arc, g.arcCapacity)
	for i := range g.a {
		g.a[i] = Arc{Neighbor: NIL, NextArc: NIL, PrevArc: NIL}
	}

	g.vRingNext = make([]int, 2*n)
	g.vRingPrev = make([]int, 2*n)
	for i := range g.vRingNext {
		g.vRingNext[i], g.vRingPrev[i] = NIL, NIL
	}
	g.aRingNext = make([]int, g.arcCapacity)
	g.aRingPrev = make([]int, g.arcCapacity)
	for i := range g.aRingNext {
		g.aRingNext[i], g.aRingPrev[i] = NIL, NIL
	}

	g.hideStack = NewIntStack(g.arcCapacity)
	g.hideSnap = make([]hideSnapshot, g.arcCapacity)
	g.DFSStack = NewIntStack(2 * g.arcCapacity)
	g.WalkdownStack = NewIntStack(4*n + 8)
	g.IsolatorStack = NewIntStack(4*n + 8)

	return nil
}

// ReinitializeGraph resets a Graph to its just-initialized state (all
// vertices and arcs cleared, arrays reallocated by InitGraph at the
// default arc capacity), provided the order matches. This is the self-inverse-adjacent "clear and reuse" operation
// named in spec.md §6; calling with a mismatched order is rejected rather
// than silently resizing, since resizing mid-mode is unsupported.
func (g *Graph) ReinitializeGraph(n int) error {
	if g.v == nil {
		return fmt.Errorf("core: ReinitializeGraph: %w", ErrNotInitialized)
	}
	if n != g.n {
		return fmt.Errorf("core: ReinitializeGraph: %w: have %d, want %d", ErrBadOrder, g.n, n)
	}

	return g.InitGraph(n)
}

// EnsureArcCapacity grows the arc pool to at least `required` arc slots
// (required/2 twin pairs). It fails once an extension mode with fixed per-arc
// structures has attached (spec.md §9's open question resolves this as:
// callers should size capacity at InitGraph once the mode is known; this
// method exists for the common case where that is not yet possible).
func (g *Graph) EnsureArcCapacity(required int) error {
	if g.modeAttached {
		return fmt.Errorf("core: EnsureArcCapacity: %w", ErrCapacityLocked)
	}
	if required <= g.arcCapacity {
		return nil
	}
	newA := make([]Arc, required)
	copy(newA, g.a)
	for i := g.arcCapacity; i < required; i++ {
		newA[i] = Arc{Neighbor: NIL, NextArc: NIL, PrevArc: NIL}
	}
	newNext := make([]int, required)
	newPrev := make([]int, required)
	copy(newNext, g.aRingNext)
	copy(newPrev, g.aRingPrev)
	for i := g.arcCapacity; i < required; i++ {
		newNext[i], newPrev[i] = NIL, NIL
	}
	newSnap := make([]hideSnapshot, required)
	copy(newSnap, g.hideSnap)

	g.a = newA
	g.aRingNext = newNext
	g.aRingPrev = newPrev
	g.hideSnap = newSnap
	g.arcCapacity = required
	g.hideStack = NewIntStack(required)
	g.DFSStack = NewIntStack(2 * required)

	return nil
}

// AttachMode locks the arc pool against further growth: afterwards
// EnsureArcCapacity fails with ErrCapacityLocked. The embed package's
// Mode constructors do not call it and no mode allocates per-arc side
// structures; the lock is set only by an explicit call.
func (g *Graph) AttachMode() { g.modeAttached = true }

// ModeAttached reports whether AttachMode has been called.
func (g *Graph) ModeAttached() bool { return g.modeAttached }

// Free releases the Graph's backing arrays. Go's collector reclaims this
// automatically once the Graph is unreachable; Free exists for API parity
// with the original suite's explicit lifecycle and to let long-lived
// callers drop memory for graphs they intend to discard immediately.
func (g *Graph) Free() {
	g.v, g.a = nil, nil
	g.vRingNext, g.vRingPrev = nil, nil
	g.aRingNext, g.aRingPrev = nil, nil
	g.hideStack, g.DFSStack, g.WalkdownStack, g.IsolatorStack = nil, nil, nil, nil
	g.n, g.arcCapacity, g.arcCount = 0, 0, 0
}

// CopyGraph overwrites dst with a deep copy of src's current state
// (vertices, arcs, rings, and ordering flag). dst is reinitialized to
// src's order first.
func CopyGraph(dst, src *Graph) error {
	if src.v == nil {
		return fmt.Errorf("core: CopyGraph: %w", ErrNotInitialized)
	}
	if err := dst.InitGraph(src.n); err != nil {
		return fmt.Errorf("core: CopyGraph: %w", err)
	}
	dst.arcCapacity = src.arcCapacity
	dst.arcCount = src.arcCount
	dst.sortedByDFI = src.sortedByDFI
	dst.modeAttached = false // extension state is never copied

	dst.v = append([]VertexRec(nil), src.v...)
	dst.a = make([]Arc, len(src.a))
	copy(dst.a, src.a)
	dst.vRingNext = append([]int(nil), src.vRingNext...)
	dst.vRingPrev = append([]int(nil), src.vRingPrev...)
	dst.aRingNext = make([]int, len(src.aRingNext))
	dst.aRingPrev = make([]int, len(src.aRingPrev))
	copy(dst.aRingNext, src.aRingNext)
	copy(dst.aRingPrev, src.aRingPrev)

	dst.hideSnap = make([]hideSnapshot, dst.arcCapacity)
	copy(dst.hideSnap, src.hideSnap)
	dst.hideStack = NewIntStack(dst.arcCapacity)
	dst.DFSStack = NewIntStack(2 * dst.arcCapacity)
	dst.WalkdownStack = NewIntStack(4*dst.n + 8)
	dst.IsolatorStack = NewIntStack(4*dst.n + 8)

	return nil
}

// DupGraph returns a fresh deep copy of src. Clients that need the
// original graph preserved across an Embed call that may rewrite it in
// place (spec.md §3, "Ownership & lifecycle") should DupGraph beforehand.
func DupGraph(src *Graph) (*Graph, error) {
	dst := NewGraph()
	if err := CopyGraph(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}
