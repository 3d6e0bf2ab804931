package engine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/dynaprm/engine"
)

// BenchmarkCreate measures end-to-end engine construction (roadmap build
// plus blocking index seeding plus adjacency cache seeding) with no
// initial obstacles.
// Complexity: O(N^2/W).
func BenchmarkCreate(b *testing.B) {
	cfg := engine.Config{NumVertices: 500, Width: 50, Height: 50, WorkerCount: 8}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.Create(ctx, cfg, nil); err != nil {
			b.Fatalf("Create: %v", err)
		}
	}
}
