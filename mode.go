package planarity

import "github.com/pednova/planarity/embed"

// Mode selects which of the eight external operations spec.md §6 names
// Embed performs. The four C9 mode variants (Planar, Outerplanar,
// DrawPlanar, SearchForK33/K23) each map directly onto one embed.Mode
// constructor; SearchForK4, SearchForK5, and MaximalPlanarSubgraph are
// thin wrappers this package adds over the same two underlying engines
// (plain planar embedding and outerplanar embedding) rather than distinct
// C9 behavior, since spec.md's C9 does not elaborate them as separate
// state-machine deltas. See DESIGN.md.
type Mode uint8

const (
	ModePlanar Mode = iota
	ModeOuterplanar
	ModeDrawPlanar
	ModeSearchForK33
	ModeSearchForK23
	ModeSearchForK4
	ModeSearchForK5
	ModeMaximalPlanarSubgraph
)

func (m Mode) String() string {
	switch m {
	case ModeOuterplanar:
		return "Outerplanar"
	case ModeDrawPlanar:
		return "DrawPlanar"
	case ModeSearchForK33:
		return "SearchForK33"
	case ModeSearchForK23:
		return "SearchForK23"
	case ModeSearchForK4:
		return "SearchForK4"
	case ModeSearchForK5:
		return "SearchForK5"
	case ModeMaximalPlanarSubgraph:
		return "MaximalPlanarSubgraph"
	default:
		return "Planar"
	}
}

// engineMode maps the external Mode to the embed package's underlying
// behavioral mode: SearchForK4/K5 reuse the plain outerplanar/planar
// engines (their distinguishing logic is in how Embed interprets the
// isolator's result, not in Walkdown itself), and MaximalPlanarSubgraph
// reuses the plain planar engine across repeated incremental Embed calls.
func (m Mode) engineMode() embed.Mode {
	switch m {
	case ModeOuterplanar, ModeSearchForK4:
		return embed.OuterplanarMode()
	case ModeDrawPlanar:
		return embed.DrawPlanarMode()
	case ModeSearchForK33:
		return embed.SearchK33Mode()
	case ModeSearchForK23:
		return embed.SearchK23Mode()
	default:
		return embed.PlanarMode()
	}
}
