// Package dynaprm is a dynamic probabilistic roadmap (PRM) engine for 2D
// motion planning: a large sampled graph over free space supporting
// incremental obstacle insertion/removal without full reconstruction, and
// A* shortest-path queries between arbitrary points.
//
// This root package is documentation only; the engine itself is
// assembled from one subpackage per concern, following lvlath's own
// package-per-concern layout:
//
//	geom/      — points, rectangles, segment/rectangle intersection
//	obstacle/  — indexed obstacle set (add/remove/contains) keyed by a uuid.UUID
//	sampler/   — deterministic ChaCha20-backed point stream
//	roadmap/   — PRM* connection radius + parallel candidate vertex/edge construction
//	blocking/  — blocked_by / block_count bookkeeping, the free/blocked partition
//	adjacency/ — incrementally maintained free-edge adjacency cache
//	astar/     — A* search over the adjacency cache + nearest-free-vertex query
//	engine/    — composition root: Create, InsertObstacle, RemoveObstacle,
//	             RunAStar, FindBlockedBy, NearestFreeVertex, Save/Load
//
// A typical session:
//
//	e, err := engine.Create(ctx, engine.Config{
//	    NumVertices: 2000, Width: 100, Height: 100, WorkerCount: 8,
//	}, nil)
//	newlyBlocked, err := e.InsertObstacle(ctx, obstacle.New(rect))
//	res, err := e.RunAStar(ctx, start, goal)
//
// See each subpackage's doc comment for the invariants and complexity of
// its operations.
//
//	go get github.com/katalvlaran/dynaprm
package dynaprm
