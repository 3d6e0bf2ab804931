// Package roadmap implements the PRM* roadmap builder: the parallel
// construction of the candidate vertex and edge sets that every other
// component (blocking index, adjacency cache, A*) operates on.
//
// Grounded on lvlath's builder package (same "single orchestrator
// function" api.go pattern, with a plain validated Config struct in place
// of builder's functional options),
// reworked into a worker-per-chunk construction built on
// internal/workerpool.
package roadmap

import "github.com/katalvlaran/dynaprm/geom"

// VertexID is a dense, non-negative index assigned during construction
// and stable for the lifetime of the roadmap.
type VertexID int

// EdgeID is a dense, non-negative index assigned during construction and
// stable thereafter.
type EdgeID int

// Vertex is a sampled point in configuration space plus its identity.
type Vertex struct {
	ID    VertexID
	Point geom.Point
}

// Edge is an undirected candidate connection between two vertices, the
// segment between them and its Euclidean length.
type Edge struct {
	ID      EdgeID
	U, V    VertexID
	Segment geom.Segment
	Length  float64
}

// Config is the immutable-after-construction configuration shared by the
// whole engine.
type Config struct {
	// NumVertices is the number of sampled points (N).
	NumVertices int

	// Width and Height define the configuration rectangle [0,Width) x [0,Height).
	Width, Height float64

	// Seed drives the deterministic point sampler (sampler.Stream).
	Seed [32]byte

	// WorkerCount is the number of parallel fork-join workers (W).
	WorkerCount int
}
