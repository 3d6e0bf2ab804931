// mutate.go implements InsertObstacle and RemoveObstacle, the only two
// operations that mutate an Index after construction.
package blocking

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/obstacle"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// InsertObstacle adds o to the obstacle set and updates block_count for
// every edge o blocks. If precomputed is non-nil it is used as-is (as a
// multiset — duplicate EdgeIds are deduplicated before counting, so a
// caller-supplied list with repeats cannot double-count a transition);
// if nil, the blocked set is computed via a fresh parallel scan
// (FindBlockedBy).
//
// Returns the EdgeIds whose block_count transitioned 0->1 (the "newly
// blocked" delta the caller must forward to the adjacency cache for
// removal), in no particular order.
//
// Complexity: O(|blocked|) plus, when precomputed is nil, the cost of
// FindBlockedBy (O(|edges|/workerCount) per worker).
func (idx *Index) InsertObstacle(ctx context.Context, o obstacle.Obstacle, precomputed []roadmap.EdgeID) ([]roadmap.EdgeID, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	blocked := precomputed
	if blocked == nil {
		found, err := idx.findBlockedByLocked(ctx, o)
		if err != nil {
			return nil, fmt.Errorf("blocking: InsertObstacle: %w", err)
		}
		blocked = found
	}

	// Apply as a set: a duplicated EdgeId in a caller-supplied precomputed
	// list must not double-count.
	dedup := make(map[roadmap.EdgeID]struct{}, len(blocked))
	var newlyBlocked []roadmap.EdgeID
	for _, e := range blocked {
		if _, seen := dedup[e]; seen {
			continue
		}
		dedup[e] = struct{}{}

		idx.blockCount[e]++
		if idx.blockCount[e] == 1 {
			newlyBlocked = append(newlyBlocked, e)
		}
	}

	idx.obstacles.Add(o)
	idx.blockedBy[o.ID] = dedup

	return newlyBlocked, nil
}

// RemoveObstacle deletes the obstacle with the given id, decrementing
// block_count for every edge it used to block. Returns the EdgeIds whose
// block_count transitioned 1->0 (the "newly unblocked" delta the caller
// must forward to the adjacency cache for insertion).
//
// If oid names no obstacle currently in the index, RemoveObstacle returns
// (nil, ErrUnknownObstacle) and leaves the index untouched; the engine
// logs this and surfaces an empty delta to its own caller.
//
// Complexity: O(|blocked_by[oid]|).
func (idx *Index) RemoveObstacle(oid obstacle.ID) ([]roadmap.EdgeID, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	blocked, ok := idx.blockedBy[oid]
	if !ok {
		return nil, ErrUnknownObstacle
	}

	var newlyUnblocked []roadmap.EdgeID
	for e := range blocked {
		idx.blockCount[e]--
		if idx.blockCount[e] == 0 {
			newlyUnblocked = append(newlyUnblocked, e)
		}
	}

	delete(idx.blockedBy, oid)
	idx.obstacles.RemoveByID(oid)

	return newlyUnblocked, nil
}

// BlockCount returns the current block_count for edge e (0 if e is
// unknown or unblocked).
// Complexity: O(1).
func (idx *Index) BlockCount(e roadmap.EdgeID) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.blockCount[e]
}

// ContainsObstacle reports whether oid names an obstacle currently
// present in the index.
func (idx *Index) ContainsObstacle(oid obstacle.ID) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.obstacles.ContainsObstacle(oid)
}

// ContainsPoint reports whether any obstacle currently present in the
// index contains p. Used by the nearest-free-vertex query to exclude
// obstructed vertices.
// Complexity: O(|obstacles|).
func (idx *Index) ContainsPoint(p geom.Point) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.obstacles.ContainsPoint(p)
}

// ObstacleCount returns the number of obstacles currently present in the
// index.
func (idx *Index) ObstacleCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.obstacles.Len()
}

// FreeEdges returns every EdgeId whose block_count is currently zero.
// The returned slice is a snapshot.
// Complexity: O(|edges|).
func (idx *Index) FreeEdges() []roadmap.EdgeID {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var free []roadmap.EdgeID
	for id := range idx.edges {
		if idx.blockCount[id] == 0 {
			free = append(free, id)
		}
	}

	return free
}

// BlockedEdges returns every EdgeId whose block_count is currently
// positive. The returned slice is a snapshot.
// Complexity: O(|edges|).
func (idx *Index) BlockedEdges() []roadmap.EdgeID {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var blocked []roadmap.EdgeID
	for id := range idx.edges {
		if idx.blockCount[id] > 0 {
			blocked = append(blocked, id)
		}
	}

	return blocked
}

// Edges exposes the fixed candidate edge set the Index was built over, so
// callers (the adjacency cache seeding step, A*) can resolve an EdgeID to
// its endpoints and length without a second copy of the map.
func (idx *Index) Edges() map[roadmap.EdgeID]roadmap.Edge {
	return idx.edges
}
