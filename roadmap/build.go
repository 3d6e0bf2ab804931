// build.go implements the parallel candidate vertex/edge construction: the
// coordinator partitions [0,N) into W contiguous chunks, each worker
// regenerates the full point stream from the shared seed and emits its
// chunk's vertices and candidate edges, and the coordinator concatenates
// worker outputs in (worker_index, local_emit_index) order to assign
// deterministic EdgeIds.
package roadmap

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/internal/workerpool"
	"github.com/katalvlaran/dynaprm/sampler"
)

// Result is the output of Build: the full vertex set and the full
// candidate edge set, before any obstacle filtering — the builder never
// consults obstacles.
type Result struct {
	Vertices map[VertexID]Vertex
	Edges    map[EdgeID]Edge
}

// chunkOutput is one worker's emission: its vertices and candidate edges,
// in deterministic i-ascending, then j-ascending order.
type chunkOutput struct {
	vertices []Vertex
	edges    []edgeDraft
}

// edgeDraft is a worker-local candidate edge before a global EdgeID has
// been assigned.
type edgeDraft struct {
	u, v    VertexID
	segment geom.Segment
	length  float64
}

// Build constructs the candidate vertex and edge sets for cfg. It
// validates cfg first, then runs the fork-join construction described
// above.
//
// Complexity: O(N^2/W) work per worker, O(N^2) total — every i scans the
// full j range.
func Build(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	radius := ConnectionRadius(cfg)

	ranges, err := workerpool.Chunks(cfg.NumVertices, cfg.WorkerCount)
	if err != nil {
		// cfg.Validate already rejected WorkerCount<=0; unreachable in
		// practice, kept so workerpool's own invariant stays enforced.
		return Result{}, fmt.Errorf("roadmap: %w", err)
	}

	outputs, err := workerpool.Run(ctx, ranges, func(_ context.Context, r workerpool.Range) (chunkOutput, error) {
		return buildChunk(cfg, radius, r)
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrWorkerFailed, err)
	}

	return merge(outputs), nil
}

// buildChunk regenerates the full N-point stream from the shared seed —
// each worker independently regenerates the full length-N point stream —
// and emits this worker's vertices and candidate edges.
func buildChunk(cfg Config, radius float64, r workerpool.Range) (chunkOutput, error) {
	points := sampler.Generate(cfg.Seed, cfg.Width, cfg.Height, cfg.NumVertices)

	out := chunkOutput{
		vertices: make([]Vertex, 0, r.End-r.Start),
	}

	for i := r.Start; i < r.End; i++ {
		out.vertices = append(out.vertices, Vertex{ID: VertexID(i), Point: points[i]})

		pi := points[i]
		for j := 0; j < cfg.NumVertices; j++ {
			if i == j {
				continue
			}
			d := geom.Distance(pi, points[j])
			if d < radius {
				seg := geom.Segment{A: pi, B: points[j]}
				out.edges = append(out.edges, edgeDraft{u: VertexID(i), v: VertexID(j), segment: seg, length: d})
			}
		}
	}

	return out, nil
}

// merge concatenates worker outputs in worker-index order and assigns
// dense EdgeIds in that concatenation order, giving a deterministic
// (worker_index, local_emit_index) ordering.
func merge(outputs []chunkOutput) Result {
	vertices := make(map[VertexID]Vertex)
	edges := make(map[EdgeID]Edge)

	var nextEdgeID EdgeID
	for _, out := range outputs {
		for _, v := range out.vertices {
			vertices[v.ID] = v
		}
		for _, d := range out.edges {
			edges[nextEdgeID] = Edge{ID: nextEdgeID, U: d.u, V: d.v, Segment: d.segment, Length: d.length}
			nextEdgeID++
		}
	}

	return Result{Vertices: vertices, Edges: edges}
}
