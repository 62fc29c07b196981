package core

import "fmt"

// VirtualBase is the offset at which virtual-vertex indices begin: a real
// vertex v's current root copy (if one has been created) lives at index
// VirtualBase(g)+v.
func (g *Graph) VirtualBase() int { return g.n }

// IsVirtual reports whether idx names a virtual vertex (root copy).
func (g *Graph) IsVirtual(idx int) bool { return idx >= g.n }

// RealOf returns the real vertex a (possibly virtual) index refers to:
// idx itself if idx is real, or idx-N if idx is virtual.
func (g *Graph) RealOf(idx int) int {
	if idx >= g.n {
		return idx - g.n
	}

	return idx
}

// VirtualOf returns the virtual-vertex index (root copy) of real vertex v.
func (g *Graph) VirtualOf(v int) int { return g.n + v }

// CreateDFSChild allocates the virtual vertex (root copy) for c, the DFS
// child just discovered through arc tree-edge, and records DFSChild. A
// new bicomp is rooted at this virtual vertex from here until it merges
// into (or remains as) a connected component's final embedding.
func (g *Graph) CreateDFSChild(c int) int {
	root := g.VirtualOf(c)
	g.v[root].inUse = true
	g.v[root].DFSChild = c
	g.v[root].FirstArc, g.v[root].LastArc = NIL, NIL
	g.v[root].Link = [2]int{NIL, NIL}

	return root
}

// VirtualInUse reports whether the virtual vertex at idx has been created.
func (g *Graph) VirtualInUse(idx int) bool { return g.v[idx].inUse }

// --- field accessors -------------------------------------------------

func (g *Graph) Index(v int) int         { return g.v[v].Index }
func (g *Graph) DFI(v int) int           { return g.v[v].DFI }
func (g *Graph) SetDFI(v, dfi int)       { g.v[v].DFI = dfi }
func (g *Graph) Parent(v int) int        { return g.v[v].Parent }
func (g *Graph) SetParent(v, p int)      { g.v[v].Parent = p }
func (g *Graph) Lowpoint(v int) int      { return g.v[v].Lowpoint }
func (g *Graph) SetLowpoint(v, lp int)   { g.v[v].Lowpoint = lp }
func (g *Graph) LeastAncestor(v int) int { return g.v[v].LeastAncestor }
func (g *Graph) SetLeastAncestor(v, la int) { g.v[v].LeastAncestor = la }
func (g *Graph) DFSChild(v int) int      { return g.v[v].DFSChild }

func (g *Graph) FirstArc(v int) int { return g.v[v].FirstArc }
func (g *Graph) LastArc(v int) int  { return g.v[v].LastArc }

// RawNextArc returns the plain successor of arc within its owner's ring,
// or NIL at the tail. Unlike NextArcInRing, it does not wrap, which is
// what a single linear pass over a ring (e.g. DFS preprocessing) needs.
func (g *Graph) RawNextArc(arc int) int { return g.a[arc].NextArc }

// RawPrevArc returns the plain predecessor of arc, or NIL at the head.
func (g *Graph) RawPrevArc(arc int) int { return g.a[arc].PrevArc }
func (g *Graph) NextArcInRing(v, arc int) int {
	n := g.a[arc].NextArc
	if n == NIL {
		return g.v[v].FirstArc // rings are treated as circular for face walks
	}

	return n
}
func (g *Graph) PrevArcInRing(v, arc int) int {
	p := g.a[arc].PrevArc
	if p == NIL {
		return g.v[v].LastArc
	}

	return p
}

func (g *Graph) Neighbor(arc int) int          { return g.a[arc].Neighbor }
func (g *Graph) SetNeighbor(arc, v int)        { g.a[arc].Neighbor = v }
func (g *Graph) ArcType(arc int) ArcType       { return g.a[arc].Type }
func (g *Graph) SetArcType(arc int, t ArcType) { g.a[arc].Type = t }
func (g *Graph) ArcVisited(arc int) int        { return g.a[arc].Visited }
func (g *Graph) SetArcVisited(arc, mark int)   { g.a[arc].Visited = mark }

// Owner returns the vertex or virtual-vertex whose ring currently threads
// arc. Arcs do not store their owner directly: by the twin invariant (the
// neighbor of T(a) is the owner of a), it is always Neighbor(GetTwin(arc)).
func (g *Graph) Owner(arc int) int { return g.a[g.GetTwin(arc)].Neighbor }

func (g *Graph) VertexVisited(v int) int        { return g.v[v].Visited }
func (g *Graph) SetVertexVisited(v, mark int)   { g.v[v].Visited = mark }
func (g *Graph) VertexLink(v, side int) int     { return g.v[v].Link[side] }
func (g *Graph) SetVertexLink(v, side, val int) { g.v[v].Link[side] = val }
func (g *Graph) PertinentAdjacencyInfo(v int) int      { return g.v[v].PertinentAdjacencyInfo }
func (g *Graph) SetPertinentAdjacencyInfo(v, arc int)  { g.v[v].PertinentAdjacencyInfo = arc }
func (g *Graph) ObstructionType(v int) ObstructionType { return g.v[v].ObstructionType }
func (g *Graph) SetObstructionType(v int, t ObstructionType) { g.v[v].ObstructionType = t }

// Degree returns the number of arcs owned by v (its ring length), O(deg(v)).
func (g *Graph) Degree(v int) int {
	n := 0
	for a := g.v[v].FirstArc; a != NIL; a = g.a[a].NextArc {
		n++
	}

	return n
}

// IsNeighbor reports whether u and v share a live edge.
func (g *Graph) IsNeighbor(u, v int) bool {
	return g.GetNeighborEdgeRecord(u, v) != NIL
}

// GetNeighborEdgeRecord returns the arc owned by u pointing at v, or NIL.
func (g *Graph) GetNeighborEdgeRecord(u, v int) int {
	for a := g.v[u].FirstArc; a != NIL; a = g.a[a].NextArc {
		if g.a[a].Neighbor == v {
			return a
		}
	}

	return NIL
}

// ArcIter is a lazy, non-restartable iterator over one vertex's adjacency
// ring, returned by Iterate. "Non-restartable" means a single ArcIter may
// only be walked once forward; callers needing to re-walk a ring call
// Iterate again.
type ArcIter struct {
	g        *Graph
	owner    int
	cur      int
	started  bool
}

// Iterate returns a fresh, forward-only iterator over v's adjacency ring
// in current ring order (head to tail).
func (g *Graph) Iterate(v int) *ArcIter {
	return &ArcIter{g: g, owner: v, cur: g.v[v].FirstArc}
}

// Next returns the next arc and true, or (NIL,false) once exhausted.
func (it *ArcIter) Next() (int, bool) {
	if it.cur == NIL {
		return NIL, false
	}
	a := it.cur
	it.cur = it.g.a[a].NextArc
	it.started = true

	return a, true
}

// SortVertices toggles the graph between original-input-label order and
// DFI order (C4, spec.md §4.3). It is self-inverse: calling it twice
// returns to the original ordering. It permutes the real-vertex portion
// of the vertex array (virtual vertices are keyed by DFSChild, which is
// itself a real-vertex index and is remapped alongside), and rewrites
// every arc's Neighbor field to track the permutation.
func (g *Graph) SortVertices() error {
	if g.v == nil {
		return fmt.Errorf("core: SortVertices: %w", ErrNotInitialized)
	}
	n := g.n

	// perm[newPos] = oldPos. When not yet sorted by DFI, newPos is the
	// vertex's DFI and oldPos is its current array index. When already
	// sorted by DFI (toggling back), newPos is the original Index and
	// oldPos is the current (DFI-ordered) array index.
	perm := make([]int, n)
	if !g.sortedByDFI {
		for old := 0; old < n; old++ {
			perm[g.v[old].DFI] = old
		}
	} else {
		for old := 0; old < n; old++ {
			perm[g.v[old].Index] = old
		}
	}

	// inv[oldPos] = newPos, needed to remap arc Neighbor fields and Parent
	// pointers for both real and virtual index spaces in one pass.
	inv := make([]int, 2*n)
	for newPos, oldPos := range perm {
		inv[oldPos] = newPos
		inv[n+oldPos] = n + newPos
	}

	// SeparatedDFSChildList is filled by dfs.Preprocess before the sort, so
	// its entries are captured here and re-threaded under the new indices.
	sepLists := make([][]int, n)
	for old := 0; old < n; old++ {
		ringForEach(g.vRingNext, g.v[old].SeparatedDFSChildList, func(c int) {
			sepLists[old] = append(sepLists[old], c)
		})
	}

	newV := make([]VertexRec, 2*n)
	for newPos, oldPos := range perm {
		rec := g.v[oldPos]
		if rec.Parent != NIL {
			rec.Parent = inv[rec.Parent]
		}
		newV[newPos] = rec

		vRec := g.v[n+oldPos]
		if vRec.DFSChild != NIL {
			vRec.DFSChild = inv[vRec.DFSChild]
		}
		newV[n+newPos] = vRec
	}
	g.v = newV

	for i := range g.a {
		if g.a[i].Neighbor != NIL {
			g.a[i].Neighbor = inv[g.a[i].Neighbor]
		}
	}

	// The vRing arena is keyed by vertex/virtual-vertex index, which just
	// changed meaning. PertinentBicompList is only populated mid-embedding
	// (never across a SortVertices call in the documented control flow), so
	// it is rebuilt empty; SeparatedDFSChildList is rebuilt from sepLists
	// in its original order under the permuted indices.
	for i := range g.vRingNext {
		g.vRingNext[i], g.vRingPrev[i] = NIL, NIL
	}
	for i := range g.v {
		g.v[i].PertinentBicompList = newRing()
		g.v[i].SeparatedDFSChildList = newRing()
	}
	for old, kids := range sepLists {
		for _, c := range kids {
			ringPushBack(g.vRingNext, g.vRingPrev, &g.v[inv[old]].SeparatedDFSChildList, inv[c])
		}
	}

	g.sortedByDFI = !g.sortedByDFI

	return nil
}
