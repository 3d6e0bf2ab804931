package blocking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynaprm/blocking"
	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/obstacle"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// a 3-vertex triangle with one horizontal and one vertical edge, both
// crossing the origin quadrant, used across the tests below.
func triangleEdges() map[roadmap.EdgeID]roadmap.Edge {
	v0 := geom.Point{X: 0, Y: 0}
	v1 := geom.Point{X: 10, Y: 0}
	v2 := geom.Point{X: 0, Y: 10}

	return map[roadmap.EdgeID]roadmap.Edge{
		0: {ID: 0, U: 0, V: 1, Segment: geom.Segment{A: v0, B: v1}, Length: 10},
		1: {ID: 1, U: 0, V: 2, Segment: geom.Segment{A: v0, B: v2}, Length: 10},
		2: {ID: 2, U: 1, V: 2, Segment: geom.Segment{A: v1, B: v2}, Length: geom.Distance(v1, v2)},
	}
}

func rect(x0, y0, x1, y1 float64) geom.Rect {
	return geom.NewRect(geom.Point{X: x0, Y: y0}, geom.Point{X: x1, Y: y1})
}

func TestFindBlockedByCorrectness(t *testing.T) {
	idx := blocking.NewIndex(triangleEdges(), 2)

	// a thin vertical strip crossing edge 0 (the x-axis segment) only.
	o := obstacle.New(rect(4, -1, 6, 1))

	got, err := idx.FindBlockedBy(context.Background(), o)
	require.NoError(t, err)
	require.ElementsMatch(t, []roadmap.EdgeID{0}, got)
}

func TestInsertObstacleUpdatesBlockCount(t *testing.T) {
	idx := blocking.NewIndex(triangleEdges(), 2)
	o := obstacle.New(rect(4, -1, 6, 1))

	newlyBlocked, err := idx.InsertObstacle(context.Background(), o, nil)
	require.NoError(t, err)
	require.ElementsMatch(t, []roadmap.EdgeID{0}, newlyBlocked)
	require.Equal(t, 1, idx.BlockCount(0))
	require.Equal(t, 0, idx.BlockCount(1))
	require.True(t, idx.ContainsObstacle(o.ID))
}

func TestInsertObstacleWithPrecomputedDedupesDuplicates(t *testing.T) {
	idx := blocking.NewIndex(triangleEdges(), 2)
	o := obstacle.New(rect(4, -1, 6, 1))

	// a caller-supplied precomputed list with a duplicate EdgeId must not
	// double-count the transition.
	newlyBlocked, err := idx.InsertObstacle(context.Background(), o, []roadmap.EdgeID{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []roadmap.EdgeID{0}, newlyBlocked)
	require.Equal(t, 1, idx.BlockCount(0))
}

func TestTwoObstaclesSharingAnEdgeKeepItBlockedUntilBothRemoved(t *testing.T) {
	idx := blocking.NewIndex(triangleEdges(), 2)

	o1 := obstacle.New(rect(1, -1, 3, 1))
	o2 := obstacle.New(rect(5, -1, 7, 1))

	_, err := idx.InsertObstacle(context.Background(), o1, []roadmap.EdgeID{0})
	require.NoError(t, err)
	newlyBlocked, err := idx.InsertObstacle(context.Background(), o2, []roadmap.EdgeID{0})
	require.NoError(t, err)
	require.Empty(t, newlyBlocked, "edge 0 is already blocked, second obstacle causes no 0->1 transition")
	require.Equal(t, 2, idx.BlockCount(0))

	newlyUnblocked, err := idx.RemoveObstacle(o1.ID)
	require.NoError(t, err)
	require.Empty(t, newlyUnblocked, "edge 0 still blocked by o2")
	require.Equal(t, 1, idx.BlockCount(0))

	newlyUnblocked, err = idx.RemoveObstacle(o2.ID)
	require.NoError(t, err)
	require.Equal(t, []roadmap.EdgeID{0}, newlyUnblocked)
	require.Equal(t, 0, idx.BlockCount(0))
}

func TestRemoveUnknownObstacleReturnsErrUnknownObstacle(t *testing.T) {
	idx := blocking.NewIndex(triangleEdges(), 2)

	_, err := idx.RemoveObstacle(obstacle.NewID())
	require.Error(t, err)
	require.True(t, errors.Is(err, blocking.ErrUnknownObstacle))
}

func TestFreeAndBlockedEdgesPartitionTheEdgeSet(t *testing.T) {
	idx := blocking.NewIndex(triangleEdges(), 2)
	o := obstacle.New(rect(4, -1, 6, 1))

	_, err := idx.InsertObstacle(context.Background(), o, nil)
	require.NoError(t, err)

	free := idx.FreeEdges()
	blockedEdges := idx.BlockedEdges()

	require.ElementsMatch(t, []roadmap.EdgeID{1, 2}, free)
	require.ElementsMatch(t, []roadmap.EdgeID{0}, blockedEdges)
	require.Len(t, idx.Edges(), len(free)+len(blockedEdges))
}

func TestInsertThenRemoveRoundTripsToEmpty(t *testing.T) {
	idx := blocking.NewIndex(triangleEdges(), 1)
	o := obstacle.New(rect(-1, -1, 11, 11)) // blocks all three edges

	newlyBlocked, err := idx.InsertObstacle(context.Background(), o, nil)
	require.NoError(t, err)
	require.ElementsMatch(t, []roadmap.EdgeID{0, 1, 2}, newlyBlocked)

	newlyUnblocked, err := idx.RemoveObstacle(o.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []roadmap.EdgeID{0, 1, 2}, newlyUnblocked)

	require.ElementsMatch(t, []roadmap.EdgeID{0, 1, 2}, idx.FreeEdges())
	require.Empty(t, idx.BlockedEdges())
	require.False(t, idx.ContainsObstacle(o.ID))
}
