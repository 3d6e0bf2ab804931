// Package roadmap errors.go — sentinel errors for roadmap construction,
// following lvlath/builder's convention: package-level sentinels only,
// wrapped at call sites with %w, branched on via errors.Is.
package roadmap

import "errors"

// ErrTooFewVertices indicates NumVertices <= 0; a roadmap needs at least
// one vertex to exist.
var ErrTooFewVertices = errors.New("roadmap: num_vertices must be at least 1")

// ErrInvalidExtent indicates a non-positive Width or Height.
var ErrInvalidExtent = errors.New("roadmap: width and height must be positive")

// ErrNoWorkers indicates a WorkerCount <= 0.
var ErrNoWorkers = errors.New("roadmap: worker_count must be at least 1")

// ErrWorkerFailed indicates a parallel construction task terminated
// abnormally; the enclosing phase fails and leaves no partial roadmap
// behind.
var ErrWorkerFailed = errors.New("roadmap: worker task failed")

// Validate checks cfg for the configuration errors construction must
// reject before doing any work.
// Complexity: O(1).
func (cfg Config) Validate() error {
	if cfg.NumVertices <= 0 {
		return ErrTooFewVertices
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ErrInvalidExtent
	}
	if cfg.WorkerCount <= 0 {
		return ErrNoWorkers
	}

	return nil
}
