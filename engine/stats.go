// stats.go implements Engine.Stats, a read-only snapshot of engine size
// counters.
//
// Grounded on the original Rust source's DPrm::print (original_source/
// dprm.rs), which logs vertex/edge/obstacle/neighbour counts for
// debugging; spec.md's distillation drops any notion of introspection, but
// nothing in spec.md's Non-goals excludes a read-only summary, so it is
// carried here as a pure query rather than reimplemented as a log line.
package engine

// Stats is a point-in-time snapshot of engine size counters.
type Stats struct {
	// VertexCount is the number of vertices in the fixed vertex set.
	VertexCount int

	// EdgeCount is the number of edges in the fixed candidate edge set.
	EdgeCount int

	// FreeEdgeCount is the number of candidate edges currently unblocked.
	FreeEdgeCount int

	// BlockedEdgeCount is the number of candidate edges currently
	// blocked by at least one obstacle.
	BlockedEdgeCount int

	// ObstacleCount is the number of obstacles currently present.
	ObstacleCount int
}

// Stats returns a snapshot of the engine's current size counters.
// Complexity: O(|edges|), dominated by the free/blocked partition scan.
func (e *Engine) Stats() Stats {
	free := e.blocking.FreeEdges()
	blocked := e.blocking.BlockedEdges()

	return Stats{
		VertexCount:      len(e.vertices),
		EdgeCount:        len(e.edges),
		FreeEdgeCount:    len(free),
		BlockedEdgeCount: len(blocked),
		ObstacleCount:    e.blocking.ObstacleCount(),
	}
}
