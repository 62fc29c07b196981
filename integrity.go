package planarity

import (
	"fmt"

	"github.com/pednova/planarity/core"
	"github.com/pednova/planarity/integrity"
)

// TestEmbedResultIntegrity verifies an Embed outcome against the pre-Embed
// snapshot original (spec.md §6): for Embedded/SearchMiss it checks face
// count and adjacency preservation; for NonEmbeddable/SearchHit it checks
// the isolated subgraph is a genuine subdivision of the obstruction the
// mode implies (for a NonEmbeddable result, K3,3 or K5 under the planar
// modes, K2,3 or K4 under outerplanar).
func TestEmbedResultIntegrity(original, result *core.Graph, mode Mode, outcome Result) error {
	switch outcome {
	case Embedded:
		return integrity.CheckEmbedding(original, result)
	case SearchMiss:
		return integrity.CheckEmbedding(original, result)
	case NonEmbeddable, SearchHit:
		kind := integrity.K33
		switch mode {
		case ModeOuterplanar, ModeSearchForK23:
			kind = integrity.K23
		case ModeSearchForK4:
			kind = integrity.K4
		case ModeSearchForK5:
			kind = integrity.K5
		}
		err := integrity.CheckObstruction(original, result, kind)
		if err != nil && outcome == NonEmbeddable {
			switch kind {
			case integrity.K33:
				err = integrity.CheckObstruction(original, result, integrity.K5)
			case integrity.K23:
				err = integrity.CheckObstruction(original, result, integrity.K4)
			}
		}
		return err
	default:
		return fmt.Errorf("%w: TestEmbedResultIntegrity: unknown outcome %v", ErrInternal, outcome)
	}
}
