package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dynaprm/engine"
	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/obstacle"
)

// Example demonstrates building a roadmap, inserting an obstacle and
// reading back the engine's size counters. The printed fields are all
// determined directly by the configuration and the obstacle count, not
// by the sampled geometry, so the example stays stable across any future
// change to the sampler's exact point stream.
func Example() {
	cfg := engine.Config{NumVertices: 200, Width: 10, Height: 10, WorkerCount: 4}

	e, err := engine.Create(context.Background(), cfg, nil)
	if err != nil {
		fmt.Println("create error:", err)
		return
	}

	o := obstacle.New(geom.NewRect(geom.Point{X: 4, Y: 4}, geom.Point{X: 6, Y: 6}))
	if _, err := e.InsertObstacle(context.Background(), o); err != nil {
		fmt.Println("insert error:", err)
		return
	}

	stats := e.Stats()
	fmt.Println("vertices:", stats.VertexCount)
	fmt.Println("obstacles:", stats.ObstacleCount)
	fmt.Println("free+blocked == edges:", stats.FreeEdgeCount+stats.BlockedEdgeCount == stats.EdgeCount)

	// Output:
	// vertices: 200
	// obstacles: 1
	// free+blocked == edges: true
}
