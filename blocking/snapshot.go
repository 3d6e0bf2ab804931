// snapshot.go implements the read/write pair persistence needs: dumping
// an Index's full state and rebuilding one from a previously-dumped
// state without recomputation, for engine.Save/engine.Load.
package blocking

import (
	"github.com/katalvlaran/dynaprm/obstacle"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// Obstacles returns a snapshot of every obstacle currently present.
func (idx *Index) Obstacles() []obstacle.Obstacle {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.obstacles.All()
}

// BlockedByAll returns a snapshot of blocked_by: for every obstacle
// currently present, the EdgeIds its rectangle intersects.
func (idx *Index) BlockedByAll() map[obstacle.ID][]roadmap.EdgeID {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make(map[obstacle.ID][]roadmap.EdgeID, len(idx.blockedBy))
	for oid, set := range idx.blockedBy {
		ids := make([]roadmap.EdgeID, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		out[oid] = ids
	}

	return out
}

// BlockCountAll returns a snapshot of block_count for every edge with a
// positive count (zero-count edges are omitted; their count is implicit).
func (idx *Index) BlockCountAll() map[roadmap.EdgeID]int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make(map[roadmap.EdgeID]int, len(idx.blockCount))
	for id, count := range idx.blockCount {
		if count > 0 {
			out[id] = count
		}
	}

	return out
}

// NewIndexFromSnapshot rebuilds an Index over edges directly from a
// previously-dumped obstacles/blockedBy/blockCount triple, with no
// recomputation (the triple is trusted to already satisfy I1/I3 — it was
// produced by BlockedByAll/BlockCountAll/Obstacles on a consistent
// Index). Used by engine.Load, where re-scanning every obstacle against
// every edge would be redundant work the persisted blob already paid
// for once at Save time.
func NewIndexFromSnapshot(
	edges map[roadmap.EdgeID]roadmap.Edge,
	workerCount int,
	obstacles []obstacle.Obstacle,
	blockedBy map[obstacle.ID][]roadmap.EdgeID,
	blockCount map[roadmap.EdgeID]int,
) *Index {
	idx := NewIndex(edges, workerCount)

	for _, o := range obstacles {
		idx.obstacles.Add(o)
	}

	for oid, ids := range blockedBy {
		set := make(map[roadmap.EdgeID]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		idx.blockedBy[oid] = set
	}

	for id, count := range blockCount {
		idx.blockCount[id] = count
	}

	return idx
}
