package engine

import "github.com/katalvlaran/dynaprm/roadmap"

// Config is the immutable-after-construction configuration a roadmap
// engine is built from: the sample count, the configuration rectangle,
// the sampler seed and the fork-join worker count shared by construction
// and every subsequent parallel obstacle scan.
type Config struct {
	// NumVertices is the number of sampled points (N).
	NumVertices int

	// Width and Height define the configuration rectangle [0,Width) x [0,Height).
	Width, Height float64

	// Seed drives the deterministic point sampler. Two engines built from
	// identical Configs and identical initial obstacle sets are required
	// to produce identical vertices, edges, blocked_by sets and
	// neighbours lists (up to the adjacency list-order freedom roadmap
	// construction and blocking carry).
	Seed [32]byte

	// WorkerCount is the number of parallel fork-join workers (W) used by
	// both roadmap construction and per-obstacle blocked-edge scans.
	WorkerCount int
}

// toRoadmapConfig adapts Config to roadmap.Config, the shape C4's builder
// consumes. Kept as a private conversion rather than a shared type so
// engine.Config stays the one public configuration surface of this
// module, matching lvlath's practice of not leaking a subpackage's option
// struct as the top-level API.
func (c Config) toRoadmapConfig() roadmap.Config {
	return roadmap.Config{
		NumVertices: c.NumVertices,
		Width:       c.Width,
		Height:      c.Height,
		Seed:        c.Seed,
		WorkerCount: c.WorkerCount,
	}
}

// Validate checks c for the configuration errors Create must reject
// before doing any work, delegating to roadmap.Config.Validate so the
// two configuration surfaces never drift apart on what counts as valid.
func (c Config) Validate() error {
	return c.toRoadmapConfig().Validate()
}
