package core

import "errors"

// NIL is the sentinel "no such index" value used throughout the arc and
// vertex arenas, mirroring the original suite's use of a negative index
// rather than a pointer for "absent".
const NIL = -1

// Sentinel errors for core graph operations. Every package in this module
// wraps these with fmt.Errorf("...: %w", ...) to add call-site context,
// following the teacher's (lvlath) convention of one flat sentinel table
// per package plus wrapped context at the call site.
var (
	// ErrNotInitialized indicates an operation was attempted before InitGraph.
	ErrNotInitialized = errors.New("core: graph not initialized")

	// ErrBadOrder indicates InitGraph was called with a negative order, or
	// ReinitializeGraph was called with an order that does not match the
	// graph's current order.
	ErrBadOrder = errors.New("core: bad or mismatched graph order")

	// ErrVertexRange indicates a vertex or virtual-vertex index fell outside
	// its valid [0,N) or [0,2N) range.
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrArcCapacityExhausted indicates the fixed arc pool has no free pair
	// of slots left for AddEdge to allocate.
	ErrArcCapacityExhausted = errors.New("core: arc capacity exhausted")

	// ErrCapacityLocked indicates EnsureArcCapacity was called after an
	// extension mode with fixed per-arc structures (e.g. K3,3 search) has
	// already attached to the graph.
	ErrCapacityLocked = errors.New("core: arc capacity locked by attached mode")

	// ErrLoopEdge indicates AddEdge was asked to connect a vertex to itself;
	// per spec.md's Non-goals, loops are rejected rather than silently kept.
	ErrLoopEdge = errors.New("core: self-loop edges are not supported")

	// ErrArcNotFound indicates HideEdge or DeleteEdge was given an arc
	// index that is not currently a live arc.
	ErrArcNotFound = errors.New("core: arc not found")

	// ErrWrongOrdering indicates an operation that requires a specific
	// sortedByDFI state (original-index order or DFI order) was invoked
	// while the graph was in the other ordering. See spec.md §9's note on
	// the SortVertices self-inverse toggle.
	ErrWrongOrdering = errors.New("core: graph is in the wrong vertex ordering for this operation")
)

// ArcType classifies an arc (half-edge) by the role its owning edge played
// during DFS preprocessing.
type ArcType uint8

const (
	// ArcUnknown is the zero value: an arc not yet classified by DFS.
	ArcUnknown ArcType = iota
	// ArcChild marks an arc from a vertex to a DFS child discovered through it.
	ArcChild
	// ArcParent marks the twin of an ArcChild arc: child back to parent.
	ArcParent
	// ArcForward marks an arc from an ancestor to a strict descendant that
	// was already visited when the arc was traversed (the "forward" half
	// of a back edge).
	ArcForward
	// ArcBack marks the twin of an ArcForward arc: descendant back to ancestor.
	ArcBack
	// ArcRandomTree marks a tree edge synthesized by the random graph
	// generator (external collaborator); preserved here only so arc typing
	// is total, never produced by this engine.
	ArcRandomTree
)

// String renders the arc type's mnemonic, used by debug dumps.
func (t ArcType) String() string {
	switch t {
	case ArcChild:
		return "CHILD"
	case ArcParent:
		return "PARENT"
	case ArcForward:
		return "FORWARD"
	case ArcBack:
		return "BACK"
	case ArcRandomTree:
		return "RANDOMTREE"
	default:
		return "UNKNOWN"
	}
}

// DirectionFlag records digraph I/O convenience markers on an arc. The
// planarity algorithm itself treats every edge as undirected; these flags
// are preserved only so a (currently out-of-scope) directed reader/writer
// could round-trip them.
type DirectionFlag uint8

const (
	// DirectionNone is the default: no direction restriction recorded.
	DirectionNone DirectionFlag = 0
	// DirectionInOnly marks an arc usable only as an incoming edge.
	DirectionInOnly DirectionFlag = 1
	// DirectionOutOnly marks an arc usable only as an outgoing edge.
	DirectionOutOnly DirectionFlag = 2
)

// ObstructionType classifies, post-isolation, which side of the Kuratowski
// reduction a vertex belongs to (high/low, and R relative to X, Y, or W).
// See spec.md §4.7.
type ObstructionType uint8

const (
	ObstructionNone ObstructionType = iota
	ObstructionHighRXW
	ObstructionHighRYW
	ObstructionLowRXW
	ObstructionLowRYW
)

// Arc is one half-edge. Arcs are allocated from Graph.arcs in twin-adjacent
// pairs: for arc index a, its twin is a^1. Neighbor, NextArc, and PrevArc
// are all indices into the vertex/virtual-vertex array or this same arc
// array; there are no pointers anywhere in the representation.
type Arc struct {
	// Neighbor is the vertex or virtual-vertex index this arc points at.
	Neighbor int
	// NextArc and PrevArc thread this arc into its owner's adjacency ring.
	NextArc, PrevArc int
	// Type classifies the arc per DFS preprocessing (or ArcUnknown before).
	Type ArcType
	// Visited is a per-arc mark slot (ArcVisited/SetArcVisited). Walkup and
	// Walkdown neither read nor write it; Walkup marks vertices instead
	// (VertexRec.Visited).
	Visited int
	// DirectionFlags preserves digraph I/O markers; unused by the core algorithm.
	DirectionFlags DirectionFlag
	// live is true from AddEdge until DeleteEdge removes the arc, and false
	// for a slot never allocated. HideEdge does not clear it, so a hidden
	// arc still reads as live.
	live bool
}

// VertexRec is the record for both a real vertex (index in [0,N)) and a
// virtual vertex / root copy (index in [N,2N)). Fields meaningful only for
// one kind are documented as such; both kinds share one record layout so
// that Neighbor/Link/ring fields can refer to "a vertex or virtual vertex"
// uniformly, per spec.md §3.
type VertexRec struct {
	// Index is the original input label for a real vertex. For a virtual
	// vertex this equals DFSChild (the real vertex it is a root copy of).
	Index int
	// DFI is the depth-first index assigned during preprocessing. Only
	// meaningful for real vertices.
	DFI int
	// Parent is the DFS parent vertex, or NIL for a tree root. Real only.
	Parent int
	// Lowpoint is the minimum DFI reachable via a back edge from this
	// vertex's subtree. Real only.
	Lowpoint int
	// LeastAncestor is the minimum DFI among this vertex's back-edge
	// neighbors (ignoring descendants). Real only.
	LeastAncestor int

	// FirstArc and LastArc are the head and tail of this record's own
	// adjacency ring (NIL if the ring is empty).
	FirstArc, LastArc int

	// PertinentAdjacencyInfo is the arc index of a forward arc witnessing
	// a pending back edge into this vertex's subtree, or NIL. Set by
	// Walkup, consumed by Walkdown.
	PertinentAdjacencyInfo int
	// PertinentBicompList is, for a real vertex, the ordered ring of
	// virtual-vertex indices that are root copies of pertinent DFS
	// children. Entries are vertex/virtual-vertex indices, so this ring
	// shares the Graph's vRing arena with SeparatedDFSChildList (their
	// index ranges are disjoint: virtual vs real).
	PertinentBicompList Ring
	// SeparatedDFSChildList is, for a real vertex, its DFS children
	// ordered by ascending child lowpoint, supporting external-activity
	// tests in O(1) via the head of the list.
	SeparatedDFSChildList Ring
	// FwdArcList is, for a real vertex, the ring of its forward arcs to
	// not-yet-embedded descendants. Entries are arc indices, backed by
	// the Graph's aRing arena (disjoint from vRing). Kept sorted by
	// descendant DFI only in K3,3-search mode (see embed.SearchK33Mode and
	// embed.SortForwardArcLists).
	FwdArcList Ring

	// Visited holds the DFI of the vertex whose processing last visited
	// this record; Walkup sets it to v so a later Walkup for the same v
	// stops at a path already climbed.
	Visited int
	// ObstructionType records a vertex's place in a minor's X/Y/W/R
	// classification. kuratowski.Isolate does not set it; it stays
	// ObstructionNone unless set through SetObstructionType.
	ObstructionType ObstructionType

	// Link holds the two external-face-boundary arcs incident to this
	// vertex or virtual vertex, indexed by side (0/1), with side 0 =
	// Link[0] of the bicomp root (the convention embed's faceNeighbor and
	// faceStep walk by). NIL on either side when not currently on a
	// tracked face.
	Link [2]int

	// DFSChild is meaningful only for a virtual vertex: the real vertex
	// this is a root copy of (equivalently, the virtual vertex's absolute
	// index minus N, which also equals its Index — stored directly to
	// avoid recomputing).
	DFSChild int

	// inUse distinguishes an allocated virtual vertex from one never
	// created (virtual vertices are created lazily, one per DFS child).
	inUse bool
}

// hideSnapshot is the ring position of one arc at the moment it was
// hidden: its own owner-ring prev/next, and its twin's owner-ring
// prev/next, captured before either is detached.
type hideSnapshot struct {
	selfPrev, selfNext int
	twinPrev, twinNext int
}

// Graph owns every array the algorithm touches: vertex/virtual-vertex
// records, the arc pool, the list-collection arenas backing the rings
// above, and four integer stacks (DFS, Walkdown, edge hides, isolator
// scratch). A Graph is single-owner and must not be used concurrently
// from more than one goroutine (spec.md §5): there is no internal lock.
type Graph struct {
	n            int // order: number of real vertices
	arcCapacity  int
	arcCount     int // number of twin pairs allocated so far (live or hidden)
	sortedByDFI  bool
	modeAttached bool

	v []VertexRec // len 2n
	a []Arc       // len arcCapacity

	// vRingNext/vRingPrev back PertinentBicompList and SeparatedDFSChildList,
	// sized 2n (their entries live in disjoint index sub-ranges).
	vRingNext, vRingPrev []int
	// aRingNext/aRingPrev back FwdArcList, sized arcCapacity.
	aRingNext, aRingPrev []int

	hideStack *IntStack // hidden arc indices, for RestoreEdge's LIFO undo
	// hideSnap records, per arc, the exact ring position (prev/next arc on
	// each side) it occupied at hide time, so RestoreEdge can put it back
	// bit-exactly rather than merely re-appending it (spec.md §8).
	hideSnap []hideSnapshot

	// DFSStack (sized 2·arcCapacity) drives dfs.Preprocess. WalkdownStack
	// and IsolatorStack (sized O(N)) are allocated alongside it; the embed
	// and kuratowski packages do not use them.
	DFSStack      *IntStack
	WalkdownStack *IntStack
	IsolatorStack *IntStack
}

// Order returns the number of real vertices N.
func (g *Graph) Order() int { return g.n }

// ArcCapacity returns the fixed size of the arc pool.
func (g *Graph) ArcCapacity() int { return g.arcCapacity }

// SortedByDFI reports whether vertex index currently equals DFI (true) or
// original input order (false). See spec.md §9's explicit-flag guidance.
func (g *Graph) SortedByDFI() bool { return g.sortedByDFI }
