// astar.go implements the search itself: a lazy-decrease-key
// container/heap priority queue exactly like lvlath/dijkstra's nodePQ,
// generalised with an f-score (g + heuristic) ordering instead of a bare
// g-score, and restricted to whatever the adjacency cache currently
// reports as reachable rather than a full graph's edge list.
package astar

import (
	"container/heap"
	"context"
	"math"

	"github.com/katalvlaran/dynaprm/adjacency"
	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/internal/rounding"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// Result is the outcome of a Search.
type Result struct {
	// Path is the ordered sequence of VertexIds from source to goal,
	// inclusive. Nil if Found is false.
	Path []roadmap.VertexID

	// Cost is the total integer path length (sum of rounded Euclidean
	// edge lengths). Zero if Found is false.
	Cost int

	// Found reports whether goal was reachable from source via the
	// current free-edge adjacency.
	Found bool
}

// Search runs A* from source to goal over the vertices in vertices,
// restricted to the edges cache currently reports as free. It never
// mutates cache or vertices.
//
// If source or goal is unknown to vertices, Search returns an error
// (ErrSourceNotFound / ErrGoalNotFound) rather than an empty Result, so
// callers can distinguish "no path" from "bad input".
//
// Complexity: O((V + E) log V), matching lvlath/dijkstra's own bound,
// with E here meaning the number of free-edge traversals actually
// explored rather than the full candidate set.
func Search(ctx context.Context, vertices map[roadmap.VertexID]roadmap.Vertex, cache *adjacency.Cache, source, goal roadmap.VertexID) (Result, error) {
	if _, ok := vertices[source]; !ok {
		return Result{}, ErrSourceNotFound
	}
	if _, ok := vertices[goal]; !ok {
		return Result{}, ErrGoalNotFound
	}

	if source == goal {
		return Result{Path: []roadmap.VertexID{source}, Cost: 0, Found: true}, nil
	}

	goalPoint := vertices[goal].Point

	gScore := map[roadmap.VertexID]int{source: 0}
	cameFrom := make(map[roadmap.VertexID]roadmap.VertexID)
	visited := make(map[roadmap.VertexID]bool)

	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, priority: heuristic(vertices[source].Point, goalPoint)})

	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		item := heap.Pop(&pq).(*nodeItem)
		u := item.id

		if visited[u] {
			continue
		}
		visited[u] = true

		if u == goal {
			return Result{Path: reconstruct(cameFrom, source, goal), Cost: gScore[goal], Found: true}, nil
		}

		uPoint := vertices[u].Point
		for _, v := range cache.Neighbors(u) {
			if visited[v] {
				continue
			}

			step := rounding.ToInt(geom.Distance(uPoint, vertices[v].Point))
			candidate := gScore[u] + step

			current, known := gScore[v]
			if known && candidate >= current {
				continue
			}

			gScore[v] = candidate
			cameFrom[v] = u

			heap.Push(&pq, &nodeItem{id: v, priority: candidate + heuristic(vertices[v].Point, goalPoint)})
		}
	}

	return Result{Found: false}, nil
}

// NearestVertex returns the VertexId in vertices whose point is closest
// (Euclidean) to p, scanning the full vertex set linearly — construction
// and query both deliberately avoid spatial indexing, consistent with the
// rest of this module. Ties are broken by the smaller VertexId.
//
// Complexity: O(V).
func NearestVertex(vertices map[roadmap.VertexID]roadmap.Vertex, p geom.Point) (roadmap.VertexID, error) {
	if len(vertices) == 0 {
		return 0, ErrEmptyVertexSet
	}

	var best roadmap.VertexID
	bestDist := math.Inf(1)
	first := true

	for id, v := range vertices {
		d := geom.Distance(p, v.Point)
		if first || d < bestDist || (d == bestDist && id < best) {
			best = id
			bestDist = d
			first = false
		}
	}

	return best, nil
}

func heuristic(p, goal geom.Point) int {
	return rounding.ToInt(geom.Distance(p, goal))
}

func reconstruct(cameFrom map[roadmap.VertexID]roadmap.VertexID, source, goal roadmap.VertexID) []roadmap.VertexID {
	path := []roadmap.VertexID{goal}
	for cur := goal; cur != source; {
		prev := cameFrom[cur]
		path = append(path, prev)
		cur = prev
	}

	// path was built goal -> source; reverse in place to get source -> goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a vertex queued for expansion, ordered by f-score
// (g-score + heuristic) rather than dijkstra's bare g-score.
type nodeItem struct {
	id       roadmap.VertexID
	priority int
}

// nodePQ is a min-heap of *nodeItem using the same lazy-decrease-key
// pattern as lvlath/dijkstra's nodePQ: stale entries are pushed rather
// than updated in place, and ignored on pop via the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
