package astar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynaprm/adjacency"
	"github.com/katalvlaran/dynaprm/astar"
	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// a 2x2 grid of vertices, fully connected along grid edges only (no
// diagonals), so the optimal path from corner to corner must go through
// an intermediate vertex.
//
//	1 --- 3
//	|     |
//	0 --- 2
func gridFixture() (map[roadmap.VertexID]roadmap.Vertex, map[roadmap.EdgeID]roadmap.Edge) {
	vertices := map[roadmap.VertexID]roadmap.Vertex{
		0: {ID: 0, Point: geom.Point{X: 0, Y: 0}},
		1: {ID: 1, Point: geom.Point{X: 0, Y: 10}},
		2: {ID: 2, Point: geom.Point{X: 10, Y: 0}},
		3: {ID: 3, Point: geom.Point{X: 10, Y: 10}},
	}

	mk := func(id roadmap.EdgeID, u, v roadmap.VertexID) roadmap.Edge {
		seg := geom.Segment{A: vertices[u].Point, B: vertices[v].Point}
		return roadmap.Edge{ID: id, U: u, V: v, Segment: seg, Length: seg.Length()}
	}

	edges := map[roadmap.EdgeID]roadmap.Edge{
		0: mk(0, 0, 1),
		1: mk(1, 0, 2),
		2: mk(2, 1, 3),
		3: mk(3, 2, 3),
	}

	return vertices, edges
}

func TestSearchFindsOptimalPath(t *testing.T) {
	vertices, edges := gridFixture()
	cache := adjacency.SeedFromFreeEdges(edges, []roadmap.EdgeID{0, 1, 2, 3})

	res, err := astar.Search(context.Background(), vertices, cache, 0, 3)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 20, res.Cost)
	require.Len(t, res.Path, 3)
	require.Equal(t, roadmap.VertexID(0), res.Path[0])
	require.Equal(t, roadmap.VertexID(3), res.Path[len(res.Path)-1])
}

func TestSearchUnreachableReturnsFoundFalse(t *testing.T) {
	vertices, edges := gridFixture()
	// only seed edge 0-1; vertex 3 is unreachable from 0.
	cache := adjacency.SeedFromFreeEdges(edges, []roadmap.EdgeID{0})

	res, err := astar.Search(context.Background(), vertices, cache, 0, 3)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Nil(t, res.Path)
}

func TestSearchSourceEqualsGoal(t *testing.T) {
	vertices, edges := gridFixture()
	cache := adjacency.SeedFromFreeEdges(edges, []roadmap.EdgeID{0, 1, 2, 3})

	res, err := astar.Search(context.Background(), vertices, cache, 2, 2)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 0, res.Cost)
	require.Equal(t, []roadmap.VertexID{2}, res.Path)
}

func TestSearchUnknownSourceOrGoal(t *testing.T) {
	vertices, edges := gridFixture()
	cache := adjacency.SeedFromFreeEdges(edges, []roadmap.EdgeID{0, 1, 2, 3})

	_, err := astar.Search(context.Background(), vertices, cache, 99, 3)
	require.True(t, errors.Is(err, astar.ErrSourceNotFound))

	_, err = astar.Search(context.Background(), vertices, cache, 0, 99)
	require.True(t, errors.Is(err, astar.ErrGoalNotFound))
}

func TestNearestVertexPicksClosestAndBreaksTiesOnID(t *testing.T) {
	vertices, _ := gridFixture()

	got, err := astar.NearestVertex(vertices, geom.Point{X: 1, Y: 1})
	require.NoError(t, err)
	require.Equal(t, roadmap.VertexID(0), got)

	// (10,5) is exactly 5 from both vertex 2 and vertex 3; the smaller id wins.
	got, err = astar.NearestVertex(vertices, geom.Point{X: 10, Y: 5})
	require.NoError(t, err)
	require.Equal(t, roadmap.VertexID(2), got)
}

func TestNearestVertexEmptySet(t *testing.T) {
	_, err := astar.NearestVertex(map[roadmap.VertexID]roadmap.Vertex{}, geom.Point{})
	require.True(t, errors.Is(err, astar.ErrEmptyVertexSet))
}

func TestSingleVertexRoadmapHasNoEdgesButSearchTrivial(t *testing.T) {
	vertices := map[roadmap.VertexID]roadmap.Vertex{0: {ID: 0, Point: geom.Point{X: 5, Y: 5}}}
	cache := adjacency.SeedFromFreeEdges(nil, nil)

	res, err := astar.Search(context.Background(), vertices, cache, 0, 0)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []roadmap.VertexID{0}, res.Path)
}
