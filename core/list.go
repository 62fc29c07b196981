package core

// Ring is a doubly-linked, intrusive list of integer entries (vertex,
// virtual-vertex, or arc indices, depending on which arena backs it). It
// holds only a head/tail pair; the next/prev threading lives in a shared
// arena array owned by the Graph, so pushing and removing entries is O(1)
// with zero allocation once the arena is sized at InitGraph. This is the
// "list-collection" primitive from spec.md §2 (C1) underlying
// PertinentBicompList, SeparatedDFSChildList, and FwdArcList.
type Ring struct {
	head, tail int
}

// newRing returns an empty Ring.
func newRing() Ring { return Ring{head: NIL, tail: NIL} }

// Empty reports whether the ring holds no entries.
func (r Ring) Empty() bool { return r.head == NIL }

// Front returns the first entry, or NIL if empty.
func (r Ring) Front() int { return r.head }

// Back returns the last entry, or NIL if empty.
func (r Ring) Back() int { return r.tail }

func ringPushFront(next, prev []int, r *Ring, entry int) {
	next[entry] = r.head
	prev[entry] = NIL
	if r.head != NIL {
		prev[r.head] = entry
	} else {
		r.tail = entry
	}
	r.head = entry
}

func ringPushBack(next, prev []int, r *Ring, entry int) {
	prev[entry] = r.tail
	next[entry] = NIL
	if r.tail != NIL {
		next[r.tail] = entry
	} else {
		r.head = entry
	}
	r.tail = entry
}

func ringRemove(next, prev []int, r *Ring, entry int) {
	p, n := prev[entry], next[entry]
	if p != NIL {
		next[p] = n
	} else {
		r.head = n
	}
	if n != NIL {
		prev[n] = p
	} else {
		r.tail = p
	}
	next[entry] = NIL
	prev[entry] = NIL
}

func ringPopFront(next, prev []int, r *Ring) int {
	e := r.head
	if e == NIL {
		return NIL
	}
	ringRemove(next, prev, r, e)

	return e
}

// ringForEach walks entries head-to-tail. fn must not mutate the ring.
func ringForEach(next []int, r Ring, fn func(entry int)) {
	for e := r.head; e != NIL; e = next[e] {
		fn(e)
	}
}

// --- PertinentBicompList / SeparatedDFSChildList (vertex-index arena) ---

// PertinentBicompPushFront prepends a pertinent child's virtual-vertex
// root to v's pertinent list (used for an externally-inactive bicomp, so
// Walkdown consumes it before internally-active entries; spec.md §4.4).
func (g *Graph) PertinentBicompPushFront(v, root int) {
	ringPushFront(g.vRingNext, g.vRingPrev, &g.v[v].PertinentBicompList, root)
}

// PertinentBicompPushBack appends a pertinent child's virtual-vertex root
// to v's pertinent list (used for an internally-active bicomp).
func (g *Graph) PertinentBicompPushBack(v, root int) {
	ringPushBack(g.vRingNext, g.vRingPrev, &g.v[v].PertinentBicompList, root)
}

// PertinentBicompPopFront removes and returns the first pertinent root at
// v, or NIL if v has none.
func (g *Graph) PertinentBicompPopFront(v int) int {
	return ringPopFront(g.vRingNext, g.vRingPrev, &g.v[v].PertinentBicompList)
}

// PertinentBicompRemove removes a specific root from v's pertinent list.
func (g *Graph) PertinentBicompRemove(v, root int) {
	ringRemove(g.vRingNext, g.vRingPrev, &g.v[v].PertinentBicompList, root)
}

// PertinentBicompEmpty reports whether v has no pending pertinent children.
func (g *Graph) PertinentBicompEmpty(v int) bool {
	return g.v[v].PertinentBicompList.Empty()
}

// PertinentBicompForEach walks v's pertinent roots in list order.
func (g *Graph) PertinentBicompForEach(v int, fn func(root int)) {
	ringForEach(g.vRingNext, g.v[v].PertinentBicompList, fn)
}

// SeparatedChildPushBack appends DFS child c to parent's separated-child
// list. Callers insert in ascending lowpoint order during preprocessing.
func (g *Graph) SeparatedChildPushBack(parent, child int) {
	ringPushBack(g.vRingNext, g.vRingPrev, &g.v[parent].SeparatedDFSChildList, child)
}

// SeparatedChildRemove detaches child from parent's separated-child list,
// used when the child's bicomp merges into the parent's.
func (g *Graph) SeparatedChildRemove(parent, child int) {
	ringRemove(g.vRingNext, g.vRingPrev, &g.v[parent].SeparatedDFSChildList, child)
}

// SeparatedChildInsertSorted inserts child into parent's separated-child
// list at the position that keeps the list in ascending Lowpoint order.
// DFS preprocessing calls this as each child finishes (post-order), since
// post-order completion order need not already be lowpoint order.
func (g *Graph) SeparatedChildInsertSorted(parent, child int) {
	lst := &g.v[parent].SeparatedDFSChildList
	lp := g.v[child].Lowpoint

	cur := lst.Front()
	for cur != NIL && g.v[cur].Lowpoint <= lp {
		cur = g.vRingNext[cur]
	}
	if cur == NIL {
		ringPushBack(g.vRingNext, g.vRingPrev, lst, child)
		return
	}
	if cur == lst.Front() {
		ringPushFront(g.vRingNext, g.vRingPrev, lst, child)
		return
	}
	prev := g.vRingPrev[cur]
	g.vRingNext[prev] = child
	g.vRingPrev[child] = prev
	g.vRingNext[child] = cur
	g.vRingPrev[cur] = child
}

// SeparatedChildFront returns the lowest-lowpoint remaining separated
// child of v, or NIL. Because the list is lowpoint-ordered, v has a
// separated child with lowpoint < current DFI `cur` iff this child's
// lowpoint is < cur, which is one of the two ways v can be externally
// active (spec.md glossary, "Externally active").
func (g *Graph) SeparatedChildFront(v int) int {
	return g.v[v].SeparatedDFSChildList.Front()
}

// SeparatedChildForEach walks v's separated children in lowpoint order.
func (g *Graph) SeparatedChildForEach(v int, fn func(child int)) {
	ringForEach(g.vRingNext, g.v[v].SeparatedDFSChildList, fn)
}

// --- FwdArcList (arc-index arena) ---

// FwdArcPushBack appends forward arc e to v's forward-arc list.
func (g *Graph) FwdArcPushBack(v, arc int) {
	ringPushBack(g.aRingNext, g.aRingPrev, &g.v[v].FwdArcList, arc)
}

// FwdArcInsertSorted inserts arc into v's forward-arc list keeping it
// ordered by ascending descendant DFI, as required in K3,3-search mode
// (spec.md §4.8). The ordering is supplied by the caller as less (the
// embed package passes a descendant-DFI comparison), since core has no
// notion of "mode".
func (g *Graph) FwdArcInsertSorted(v, arc int, less func(a, b int) bool) {
	lst := &g.v[v].FwdArcList
	if lst.Empty() {
		ringPushBack(g.aRingNext, g.aRingPrev, lst, arc)
		return
	}
	// Walk until we find the first entry that should come after arc.
	cur := lst.Front()
	for cur != NIL && !less(arc, cur) {
		cur = g.aRingNext[cur]
	}
	if cur == NIL {
		ringPushBack(g.aRingNext, g.aRingPrev, lst, arc)
		return
	}
	if cur == lst.Front() {
		ringPushFront(g.aRingNext, g.aRingPrev, lst, arc)
		return
	}
	prev := g.aRingPrev[cur]
	g.aRingNext[prev] = arc
	g.aRingPrev[arc] = prev
	g.aRingNext[arc] = cur
	g.aRingPrev[cur] = arc
}

// FwdArcRemove detaches arc from v's forward-arc list (called once the
// back-edge partner has been embedded).
func (g *Graph) FwdArcRemove(v, arc int) {
	ringRemove(g.aRingNext, g.aRingPrev, &g.v[v].FwdArcList, arc)
}

// FwdArcEmpty reports whether v has no remaining pending forward arcs.
func (g *Graph) FwdArcEmpty(v int) bool { return g.v[v].FwdArcList.Empty() }

// FwdArcFront returns v's first pending forward arc, or NIL.
func (g *Graph) FwdArcFront(v int) int { return g.v[v].FwdArcList.Front() }

// FwdArcForEach walks v's forward arcs in list order.
func (g *Graph) FwdArcForEach(v int, fn func(arc int)) {
	ringForEach(g.aRingNext, g.v[v].FwdArcList, fn)
}
