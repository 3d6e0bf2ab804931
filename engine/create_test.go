package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynaprm/engine"
	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/obstacle"
)

func baseConfig() engine.Config {
	return engine.Config{NumVertices: 100, Width: 10, Height: 10, WorkerCount: 4}
}

func rect(x0, y0, x1, y1 float64) geom.Rect {
	return geom.NewRect(geom.Point{X: x0, Y: y0}, geom.Point{X: x1, Y: y1})
}

func pt(x, y float64) geom.Point {
	return geom.Point{X: x, Y: y}
}

func TestCreateRejectsInvalidConfig(t *testing.T) {
	cfg := engine.Config{NumVertices: 0, Width: 10, Height: 10, WorkerCount: 1}
	_, err := engine.Create(context.Background(), cfg, nil)
	require.True(t, errors.Is(err, engine.ErrConfigInvalid))
}

func TestCreateProducesConsistentEngine(t *testing.T) {
	e, err := engine.Create(context.Background(), baseConfig(), nil)
	require.NoError(t, err)
	require.Len(t, e.Vertices(), 100)
	require.Empty(t, e.BlockedEdges())
	require.Equal(t, len(e.Edges()), len(e.FreeEdges()))
}

func TestCreateIsDeterministic(t *testing.T) {
	cfg := baseConfig()
	a, err := engine.Create(context.Background(), cfg, nil)
	require.NoError(t, err)
	b, err := engine.Create(context.Background(), cfg, nil)
	require.NoError(t, err)

	require.Equal(t, a.Vertices(), b.Vertices())
	require.Equal(t, a.Edges(), b.Edges())
	require.ElementsMatch(t, a.FreeEdges(), b.FreeEdges())
}

func TestCreateWithInitialObstacles(t *testing.T) {
	o := obstacle.New(rect(4, 4, 6, 6))
	e, err := engine.Create(context.Background(), baseConfig(), []obstacle.Obstacle{o})
	require.NoError(t, err)

	blocked, err := e.FindBlockedBy(context.Background(), o)
	require.NoError(t, err)
	require.NotEmpty(t, blocked)
	require.ElementsMatch(t, blocked, e.BlockedEdges())
}

func TestSingleVertexEngineHasNoEdges(t *testing.T) {
	cfg := engine.Config{NumVertices: 1, Width: 10, Height: 10, WorkerCount: 1}
	e, err := engine.Create(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, e.Vertices(), 1)
	require.Empty(t, e.Edges())

	res, err := e.RunAStar(context.Background(), 0, 0)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 0, res.Cost)
}

func TestObstacleCoveringWholeRectangleBlocksEveryEdge(t *testing.T) {
	cfg := baseConfig()
	o := obstacle.New(rect(-1, -1, 11, 11))
	e, err := engine.Create(context.Background(), cfg, []obstacle.Obstacle{o})
	require.NoError(t, err)

	require.Empty(t, e.FreeEdges())
	require.ElementsMatch(t, keys(e.Edges()), e.BlockedEdges())

	_, err = e.RunAStar(context.Background(), 0, 1)
	require.NoError(t, err)
}

func TestNearestFreeVertexExcludesObstructedVertices(t *testing.T) {
	cfg := baseConfig()
	r := rect(0, 0, 3, 3)
	e, err := engine.Create(context.Background(), cfg, []obstacle.Obstacle{obstacle.New(r)})
	require.NoError(t, err)

	v, err := e.NearestFreeVertex(geom.Point{X: 0, Y: 0})
	require.NoError(t, err)
	_, ok := e.Vertices()[v.ID]
	require.True(t, ok)
	require.False(t, geom.PointInRect(v.Point, r))
}

func TestNearestFreeVertexNoneFreeReturnsError(t *testing.T) {
	cfg := engine.Config{NumVertices: 3, Width: 10, Height: 10, WorkerCount: 1}
	o := obstacle.New(rect(-1, -1, 11, 11))
	e, err := engine.Create(context.Background(), cfg, []obstacle.Obstacle{o})
	require.NoError(t, err)

	_, err = e.NearestFreeVertex(geom.Point{X: 5, Y: 5})
	require.True(t, errors.Is(err, engine.ErrNoFreeVertex))
}

func keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
