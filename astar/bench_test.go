package astar_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/dynaprm/adjacency"
	"github.com/katalvlaran/dynaprm/astar"
	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// BenchmarkSearchChain measures A* over a 500-vertex chain, the worst
// case for the heuristic's admissibility margin since every vertex lies
// on the straight line between source and goal.
// Complexity: O((V+E) log V).
func BenchmarkSearchChain(b *testing.B) {
	const n = 500
	vertices := make(map[roadmap.VertexID]roadmap.Vertex, n)
	edges := make(map[roadmap.EdgeID]roadmap.Edge, n-1)
	freeIDs := make([]roadmap.EdgeID, 0, n-1)

	for i := 0; i < n; i++ {
		vertices[roadmap.VertexID(i)] = roadmap.Vertex{ID: roadmap.VertexID(i), Point: geom.Point{X: float64(i), Y: 0}}
	}
	for i := 0; i < n-1; i++ {
		u, v := roadmap.VertexID(i), roadmap.VertexID(i+1)
		seg := geom.Segment{A: vertices[u].Point, B: vertices[v].Point}
		edges[roadmap.EdgeID(i)] = roadmap.Edge{ID: roadmap.EdgeID(i), U: u, V: v, Segment: seg, Length: seg.Length()}
		freeIDs = append(freeIDs, roadmap.EdgeID(i))
	}

	cache := adjacency.SeedFromFreeEdges(edges, freeIDs)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(ctx, vertices, cache, 0, n-1); err != nil {
			b.Fatalf("Search: %v", err)
		}
	}
}
