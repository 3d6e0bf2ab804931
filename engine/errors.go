// Package engine is the composition root: it wires the roadmap builder,
// the blocking index, the adjacency cache and the path finder into a
// single mutable instance, and owns the single-writer mutation discipline
// around obstacle insertion and removal.
package engine

import "errors"

// ErrConfigInvalid indicates Create was called with an invalid
// Configuration (zero vertices, non-positive extent, zero workers).
var ErrConfigInvalid = errors.New("engine: invalid configuration")

// ErrWorkerFailed indicates a parallel construction or scan task
// terminated abnormally during Create or a mutation; the engine is left
// untouched (Create returns no instance at all).
var ErrWorkerFailed = errors.New("engine: worker task failed")

// ErrUnknownObstacle indicates RemoveObstacle was called with an id not
// present in the obstacle set; the caller may treat this as a no-op.
var ErrUnknownObstacle = errors.New("engine: unknown obstacle")

// ErrPersistence indicates an I/O or decoding failure during Save/Load.
var ErrPersistence = errors.New("engine: persistence failure")

// ErrNoFreeVertex indicates NearestFreeVertex was called when every
// vertex in the roadmap is currently contained in some obstacle; spec.md
// §4.7 leaves this case's behaviour to the implementation, so this module
// reports it as an error rather than returning an undefined sentinel
// vertex.
var ErrNoFreeVertex = errors.New("engine: no free vertex exists")
