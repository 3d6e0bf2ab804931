// query.go implements the engine's read-only operations: FindBlockedBy,
// RunAStar, FreeEdges and BlockedEdges. None of these take e.mu — they
// read through the blocking index and adjacency cache, which guard their
// own state with an internal RWMutex. Each single call into one of those
// structures sees a consistent state, but a query is not isolated from a
// concurrent InsertObstacle/RemoveObstacle: RunAStar reads the cache once
// per expanded vertex and can observe a mutation part-way through.
package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dynaprm/astar"
	"github.com/katalvlaran/dynaprm/obstacle"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// FindBlockedBy returns the EdgeIds whose segment intersects o's
// rectangle. Pure: it never mutates the engine, and o need not be a
// member of the engine's obstacle set (it may be a candidate obstacle the
// caller is about to insert).
func (e *Engine) FindBlockedBy(ctx context.Context, o obstacle.Obstacle) ([]roadmap.EdgeID, error) {
	blocked, err := e.blocking.FindBlockedBy(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("engine: %w: %v", ErrWorkerFailed, err)
	}

	return blocked, nil
}

// RunAStar runs A* over the current free-edge adjacency from start to
// goal, returning the path and its integer cost, or Found=false if goal
// is unreachable from start.
func (e *Engine) RunAStar(ctx context.Context, start, goal roadmap.VertexID) (astar.Result, error) {
	return astar.Search(ctx, e.vertices, e.cache, start, goal)
}

// FreeEdges returns a snapshot of every EdgeId whose block_count is
// currently zero.
func (e *Engine) FreeEdges() []roadmap.EdgeID {
	return e.blocking.FreeEdges()
}

// BlockedEdges returns a snapshot of every EdgeId whose block_count is
// currently positive.
func (e *Engine) BlockedEdges() []roadmap.EdgeID {
	return e.blocking.BlockedEdges()
}

// Vertices returns the fixed vertex set the engine was built over.
// The returned map is shared, not a copy — callers must treat it as
// read-only, matching spec.md §3's "vertices ... fixed after
// construction."
func (e *Engine) Vertices() map[roadmap.VertexID]roadmap.Vertex {
	return e.vertices
}

// Edges returns the fixed candidate edge set the engine was built over.
// The returned map is shared, not a copy; see Vertices.
func (e *Engine) Edges() map[roadmap.EdgeID]roadmap.Edge {
	return e.edges
}
