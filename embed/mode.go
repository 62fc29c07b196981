package embed

import "github.com/pednova/planarity/core"

// Kind names the planarity variant a Mode implements, used only for
// diagnostics and by the isolator to pick a reduced case analysis.
type Kind uint8

const (
	KindPlanar Kind = iota
	KindOuterplanar
	KindDrawPlanar
	KindSearchK33
	KindSearchK23
)

func (k Kind) String() string {
	switch k {
	case KindOuterplanar:
		return "outerplanar"
	case KindDrawPlanar:
		return "drawplanar"
	case KindSearchK33:
		return "search-k33"
	case KindSearchK23:
		return "search-k23"
	default:
		return "planar"
	}
}

// Mode is a small struct of flags standing in for the extensibility
// points spec.md §9 names (CreateFwdArcLists, EmbedBackEdge, MergeBicomps,
// HandleBlockedEmbedIteration), rather than a runtime function-table
// lookup: Embed picks one Mode value once, up front, and the engine
// branches on its fields. It holds no functions and no per-mode state.
type Mode struct {
	Kind Kind

	// Outerplanar restricts Walkdown to never embed a vertex on the
	// internal side of a bicomp: any vertex that would require an
	// internal placement blocks immediately instead.
	Outerplanar bool

	// K33 makes the engine sort every vertex's forward-arc list by
	// descendant DFI (SortForwardArcLists) before the embedding loop. No
	// separate per-vertex back-arc list and no merge blocker are kept.
	// K23 marks a K2,3 search; the engine does not branch on it.
	K33 bool
	K23 bool

	// Drawing marks a DrawPlanar run. Merges and back-edge embeddings
	// record no extra drawing bookkeeping; the drawing package computes its
	// layout from DFI and the DFS tree alone.
	Drawing bool
}

// PlanarMode is the unmodified edge-addition planarity test.
func PlanarMode() Mode { return Mode{Kind: KindPlanar} }

// OuterplanarMode restricts embedding to the external face only.
func OuterplanarMode() Mode { return Mode{Kind: KindOuterplanar, Outerplanar: true} }

// DrawPlanarMode runs the planar embedder with drawing bookkeeping enabled.
func DrawPlanarMode() Mode { return Mode{Kind: KindDrawPlanar, Drawing: true} }

// SearchK33Mode runs with K3,3-search merge blockers and sorted forward-arc lists.
func SearchK33Mode() Mode { return Mode{Kind: KindSearchK33, K33: true} }

// SearchK23Mode runs outerplanar embedding with K2,3-search bookkeeping.
func SearchK23Mode() Mode { return Mode{Kind: KindSearchK23, Outerplanar: true, K23: true} }

// descendantDFI is the sort key SortForwardArcLists uses in K3,3-search mode
// to keep each vertex's FwdArcList ordered by descendant DFI; plain
// planar/outerplanar modes never reorder the list, so arcs stay in
// discovery (append) order.
func descendantDFI(g *core.Graph) func(a, b int) bool {
	return func(a, b int) bool { return g.DFI(g.Neighbor(a)) < g.DFI(g.Neighbor(b)) }
}

// SortForwardArcLists re-keys every vertex's FwdArcList into ascending
// descendant-DFI order. Only K3,3-search mode (spec.md §9's
// CreateFwdArcLists hook) needs this; dfs.Preprocess already appends arcs in
// discovery order, which is what every other mode wants, so this is applied
// as a one-time fixup after preprocessing rather than threading a mode value
// down into Preprocess itself.
func SortForwardArcLists(g *core.Graph) {
	less := descendantDFI(g)
	for v := 0; v < g.Order(); v++ {
		var arcs []int
		g.FwdArcForEach(v, func(a int) { arcs = append(arcs, a) })
		if len(arcs) < 2 {
			continue
		}
		for _, a := range arcs {
			g.FwdArcRemove(v, a)
		}
		for _, a := range arcs {
			g.FwdArcInsertSorted(v, a, less)
		}
	}
}
