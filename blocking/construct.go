// construct.go implements the initial-population step of Index
// construction: for every obstacle already present at engine creation
// time, compute its blocked-edge set (via a parallel FindBlockedBy scan)
// and fold the result into a fresh Index before any adjacency cache is
// derived from it.
package blocking

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dynaprm/obstacle"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// NewIndexFromObstacles builds an Index over edges and populates it with
// every obstacle in initial, in the order given. Each obstacle's blocked
// set is computed via a parallel FindBlockedBy scan; the folds themselves
// happen sequentially (InsertObstacle takes idx's write lock), so the
// result does not depend on the order workers happen to finish in — only
// on the order of initial itself.
func NewIndexFromObstacles(ctx context.Context, edges map[roadmap.EdgeID]roadmap.Edge, workerCount int, initial []obstacle.Obstacle) (*Index, error) {
	idx := NewIndex(edges, workerCount)

	for _, o := range initial {
		if _, err := idx.InsertObstacle(ctx, o, nil); err != nil {
			return nil, fmt.Errorf("blocking: NewIndexFromObstacles: %w", err)
		}
	}

	return idx, nil
}
