package planarity

import "errors"

// Result is the algorithmic outcome of an Embed call (spec.md §7.1): both
// Embedded and NonEmbeddable are successful executions, never errors.
type Result uint8

const (
	// Embedded means g was planar (under the selected mode); g now holds
	// the combinatorial embedding.
	Embedded Result = iota
	// NonEmbeddable means g was not planar (under the selected mode); g
	// now holds the isolated Kuratowski/obstruction subdivision.
	NonEmbeddable
	// SearchHit means a search mode (K3,3, K2,3, K4 or K5) found the
	// sought subgraph; g holds the isolated subdivision.
	SearchHit
	// SearchMiss means a search mode found no such subgraph. g holds the
	// planar (or outerplanar) embedding if the graph embedded, or the
	// original graph restored unchanged if an obstruction of another
	// shape was isolated.
	SearchMiss
)

func (r Result) String() string {
	switch r {
	case Embedded:
		return "Embedded"
	case NonEmbeddable:
		return "NonEmbeddable"
	case SearchHit:
		return "SearchHit"
	case SearchMiss:
		return "SearchMiss"
	default:
		return "Unknown"
	}
}

// ErrInternal is the single sentinel wrapped for every input-rejection or
// invariant-violation diagnostic Embed returns (spec.md §7.2/§7.3): these
// are never panics, and an ErrInternal result means the Graph must be
// discarded rather than reused.
var ErrInternal = errors.New("planarity: internal error")
