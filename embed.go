package planarity

import (
	"fmt"

	"github.com/pednova/planarity/core"
	"github.com/pednova/planarity/dfs"
	"github.com/pednova/planarity/embed"
	"github.com/pednova/planarity/integrity"
	"github.com/pednova/planarity/kuratowski"
)

// Embed runs the selected mode's algorithm on g and returns the
// algorithmic outcome (spec.md §6). On Embedded or NonEmbeddable, g is
// rewritten in place (the embedding, or the isolated Kuratowski/obstruction
// subdivision). On SearchHit g holds the isolated subdivision; on
// SearchMiss g holds the embedding if the graph embedded, or the original
// graph restored if an obstruction of another shape was isolated.
// A non-nil error always wraps ErrInternal: malformed input or a detected
// invariant violation, per spec.md §7. Callers needing the original graph
// preserved should core.DupGraph beforehand.
func Embed(g *core.Graph, mode Mode) (Result, error) {
	switch mode {
	case ModeSearchForK33:
		return searchForObstruction(g, embed.SearchK33Mode(), integrity.K33)
	case ModeSearchForK23:
		return searchForObstruction(g, embed.SearchK23Mode(), integrity.K23)
	case ModeSearchForK4:
		return searchForK4(g)
	case ModeSearchForK5:
		return searchForK5(g)
	case ModeMaximalPlanarSubgraph:
		return maximalPlanarSubgraph(g)
	default:
		return runEngine(g, mode.engineMode())
	}
}

// searchForObstruction runs em and reports SearchHit/SearchMiss rather than
// Embedded/NonEmbeddable (spec.md §6's C9 SearchForK33/K23 modes): a
// NonEmbeddable outcome only counts as a hit once the isolated subdivision
// actually has kind's branch/homeomorphism shape, mirroring searchForK4 and
// searchForK5 below.
func searchForObstruction(g *core.Graph, em embed.Mode, kind integrity.ObstructionKind) (Result, error) {
	original, err := core.DupGraph(g)
	if err != nil {
		return Embedded, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	res, err := runEngine(g, em)
	if err != nil || res != NonEmbeddable {
		if res == Embedded {
			return SearchMiss, err
		}
		return res, err
	}

	if integrity.CheckObstruction(original, g, kind) == nil {
		return SearchHit, nil
	}
	if rerr := core.CopyGraph(g, original); rerr != nil {
		return Embedded, fmt.Errorf("%w: %v", ErrInternal, rerr)
	}

	return SearchMiss, nil
}

// runEngine performs the core C3–C7 control flow spec.md §2 describes:
// preprocess, sort by DFI, then for v = N−1 downto 0, Walkup every back
// edge of v and Walkdown every bicomp root v's Walkups made pertinent. A
// stall anywhere triggers the isolator and returns NonEmbeddable.
func runEngine(g *core.Graph, em embed.Mode) (Result, error) {
	n := g.Order()
	if n == 0 {
		return Embedded, nil
	}

	if err := dfs.Preprocess(g); err != nil {
		return Embedded, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := dfs.SortByDFI(g); err != nil {
		return Embedded, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := embed.InitializeBicomps(g); err != nil {
		return Embedded, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if em.K33 {
		embed.SortForwardArcLists(g)
	}

	for v := n - 1; v >= 0; v-- {
		for a := g.FirstArc(v); a != core.NIL; a = g.RawNextArc(a) {
			if g.ArcType(a) != core.ArcBack {
				continue
			}
			embed.Walkup(g, v, a)
		}

		for !g.PertinentBicompEmpty(v) {
			root := g.PertinentBicompPopFront(v)
			ok, stall := embed.Walkdown(g, em, v, root)
			if !ok {
				if err := kuratowski.Isolate(g, v, kuratowski.StallInfo{
					Root:      stall.Root,
					StopSide0: stall.StopSide0,
					StopSide1: stall.StopSide1,
					PendingFA: stall.PendingFA,
				}); err != nil {
					return Embedded, fmt.Errorf("%w: isolator: %v", ErrInternal, err)
				}
				return NonEmbeddable, nil
			}
		}
	}

	embed.JoinBicomps(g)

	return Embedded, nil
}

// searchForK4 reuses outerplanar embedding: a NonEmbeddable outcome means
// Walkdown stalled in a bicomp that must reduce to K4 or K2,3 (spec.md
// §4.8); searchForObstruction tells the two apart by branch-vertex shape
// on the isolated subdivision (K4 has four degree-3 branch vertices in a
// complete graph, K2,3 has two degree-3 branch vertices joined by three
// paths) and reports SearchHit only for K4.
func searchForK4(g *core.Graph) (Result, error) {
	return searchForObstruction(g, embed.OuterplanarMode(), integrity.K4)
}

// searchForK5 mirrors searchForK4 over plain planar embedding: K5 has five
// degree-4 branch vertices, K3,3 has six degree-3 branch vertices.
func searchForK5(g *core.Graph) (Result, error) {
	return searchForObstruction(g, embed.PlanarMode(), integrity.K5)
}

// maximalPlanarSubgraph finds a planar subgraph of g that is maximal among
// the edges considered in ring order: starting from an edgeless graph of
// the same order, it adds each of g's edges one at a time and keeps it
// only if the resulting graph still embeds, discarding (restoring) it
// otherwise. This is the standard incremental-planarity-testing
// construction, applied here by brute re-running the full engine after
// each tentative addition rather than an amortized incremental structure —
// spec.md's C1–C10 do not specify one, and the one-shot Embed engine is
// what this repository implements. See DESIGN.md.
func maximalPlanarSubgraph(g *core.Graph) (Result, error) {
	n := g.Order()
	edges := collectEdges(g)

	working := core.NewGraph()
	if err := working.InitGraph(n); err != nil {
		return Embedded, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	for _, e := range edges {
		candidate, err := core.DupGraph(working)
		if err != nil {
			return Embedded, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if _, _, err := candidate.AddEdge(e.u, 1, e.v, 1); err != nil {
			continue
		}

		trial, err := core.DupGraph(candidate)
		if err != nil {
			return Embedded, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		res, err := runEngine(trial, embed.PlanarMode())
		if err != nil {
			return Embedded, err
		}
		if res == Embedded {
			working = candidate
		}
	}

	if err := core.CopyGraph(g, working); err != nil {
		return Embedded, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return runEngine(g, embed.PlanarMode())
}

type rawEdge struct{ u, v int }

func collectEdges(g *core.Graph) []rawEdge {
	seen := make(map[[2]int]bool)
	var out []rawEdge
	for v := 0; v < g.Order(); v++ {
		for _, w := range g.Neighbors(v) {
			if g.IsVirtual(w) {
				continue
			}
			key := [2]int{v, w}
			if v > w {
				key = [2]int{w, v}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, rawEdge{u: key[0], v: key[1]})
		}
	}

	return out
}
