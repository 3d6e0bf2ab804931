// index.go implements the blocking index: the mapping from obstacle ->
// blocked edges, the derived per-edge blocking count, and the
// insert/remove mutation operations that keep both consistent.
//
// Grounded on insert_blocked_by_obstacle / remove_obstacle
// (original_source/src/dprm.rs) and on lvlath/core's RWMutex-guarded
// mutation discipline (core/types.go, core/methods.go): Index owns its
// own lock rather than relying on the caller to serialize access, exactly
// as core.Graph does for AddEdge/RemoveEdge.
package blocking

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/internal/workerpool"
	"github.com/katalvlaran/dynaprm/obstacle"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// Index is the blocking bookkeeping for a fixed candidate edge set. It is
// safe for concurrent queries; InsertObstacle/RemoveObstacle are
// single-writer operations serialized by an internal RWMutex — they may
// additionally be serialised at the engine boundary, but do not rely on
// an external caller to do so.
type Index struct {
	mu sync.RWMutex

	edges       map[roadmap.EdgeID]roadmap.Edge // candidate set, read-only after construction
	workerCount int

	obstacles  *obstacle.Set
	blockedBy  map[obstacle.ID]map[roadmap.EdgeID]struct{}
	blockCount map[roadmap.EdgeID]int
}

// NewIndex builds an Index over the fixed candidate edge set edges, with
// no obstacles yet present. Callers typically follow this with one
// InsertObstacle call per initial obstacle, so construction populates the
// index from a configuration plus an initial obstacle set.
func NewIndex(edges map[roadmap.EdgeID]roadmap.Edge, workerCount int) *Index {
	return &Index{
		edges:       edges,
		workerCount: workerCount,
		obstacles:   obstacle.NewSet(),
		blockedBy:   make(map[obstacle.ID]map[roadmap.EdgeID]struct{}),
		blockCount:  make(map[roadmap.EdgeID]int),
	}
}

// FindBlockedBy returns the set of EdgeIds whose segment intersects o's
// rectangle. It is pure: it never mutates the Index. The scan is
// parallelised across workerCount workers by splitting the EdgeId range
// into contiguous chunks.
//
// Complexity: O(|edges| / workerCount) per worker, O(|edges|) total.
func (idx *Index) FindBlockedBy(ctx context.Context, o obstacle.Obstacle) ([]roadmap.EdgeID, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.findBlockedByLocked(ctx, o)
}

// findBlockedByLocked is FindBlockedBy's body, callable while idx.mu is
// already held (read or write) by the caller.
func (idx *Index) findBlockedByLocked(ctx context.Context, o obstacle.Obstacle) ([]roadmap.EdgeID, error) {
	n := len(idx.edges)

	// A dense, stable ordering of EdgeIds to chunk over; the result is a
	// set with no required ordering, so this internal slice order is not
	// an observable property.
	ids := make([]roadmap.EdgeID, 0, n)
	for id := range idx.edges {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	ranges, err := workerpool.Chunks(n, idx.workerCount)
	if err != nil {
		return nil, fmt.Errorf("blocking: %w", err)
	}

	chunks, err := workerpool.Run(ctx, ranges, func(_ context.Context, r workerpool.Range) ([]roadmap.EdgeID, error) {
		var blocked []roadmap.EdgeID
		for i := r.Start; i < r.End; i++ {
			e := idx.edges[ids[i]]
			if geom.SegmentIntersectsRect(e.Segment, o.Rect) {
				blocked = append(blocked, e.ID)
			}
		}

		return blocked, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkerFailed, err)
	}

	var result []roadmap.EdgeID
	for _, c := range chunks {
		result = append(result, c...)
	}

	return result, nil
}
