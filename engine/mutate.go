// mutate.go implements the engine's two single-writer operations:
// InsertObstacle and RemoveObstacle. Both serialise on e.mu (spec.md §5:
// "insert_obstacle and remove_obstacle are single-writer operations ...
// may be serialised at the engine boundary") and forward the blocking
// index's edge-state delta straight into the adjacency cache before
// returning. Queries do not take e.mu (see query.go), so a query running
// concurrently with a mutation can see the blocking index already updated
// and the adjacency cache not yet updated.
package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/katalvlaran/dynaprm/obstacle"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// InsertObstacle adds o to the obstacle set, updates the blocking index
// and removes every newly-blocked edge from the adjacency cache. Returns
// the newly-blocked EdgeIds.
//
// Complexity: O(|edges|/W) for the blocked-edge scan plus
// O(|newly blocked|) for the cache update.
func (e *Engine) InsertObstacle(ctx context.Context, o obstacle.Obstacle) ([]roadmap.EdgeID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	newlyBlocked, err := e.blocking.InsertObstacle(ctx, o, nil)
	if err != nil {
		return nil, fmt.Errorf("engine: InsertObstacle: %w: %v", ErrWorkerFailed, err)
	}

	for _, id := range newlyBlocked {
		e.cache.RemoveEdge(id)
	}

	return newlyBlocked, nil
}

// RemoveObstacle deletes the obstacle with the given id from the
// obstacle set, updates the blocking index and reinserts every
// newly-unblocked edge into the adjacency cache. Returns the
// newly-unblocked EdgeIds.
//
// If oid names no obstacle currently present, RemoveObstacle logs the
// event (spec.md §4.2: "C5 upgrades this to a logged event") and returns
// an empty delta with ErrUnknownObstacle; the engine is left unchanged.
//
// Complexity: O(|blocked_by[oid]|).
func (e *Engine) RemoveObstacle(oid obstacle.ID) ([]roadmap.EdgeID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	newlyUnblocked, err := e.blocking.RemoveObstacle(oid)
	if err != nil {
		log.Printf("engine: remove_obstacle: unknown obstacle id %s, ignoring", oid)

		return nil, fmt.Errorf("engine: %w", ErrUnknownObstacle)
	}

	for _, id := range newlyUnblocked {
		e.cache.InsertEdge(id)
	}

	return newlyUnblocked, nil
}
