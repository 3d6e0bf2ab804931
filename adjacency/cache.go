// Package adjacency implements an incrementally maintained neighbour
// cache: a directed adjacency list over free edges only, kept in sync
// with the blocking index's transitions rather than rescanned from
// scratch on every mutation.
//
// Grounded on lvlath/core's adjacency_list.go (map[VertexID][]VertexID
// out-neighbour lists, write-locked mutation / read-locked query split),
// generalised from core.Graph's string-keyed, metadata-carrying vertices
// to the roadmap package's dense integer VertexId/EdgeId identity model.
package adjacency

import (
	"sync"

	"github.com/katalvlaran/dynaprm/roadmap"
)

// Cache is the free-edge adjacency list. It is safe for concurrent
// queries; InsertEdge/RemoveEdge are single-writer operations serialized
// by an internal RWMutex.
type Cache struct {
	mu sync.RWMutex

	edges     map[roadmap.EdgeID]roadmap.Edge // candidate set, for endpoint/length lookups
	neighbors map[roadmap.VertexID][]roadmap.VertexID
}

// SeedFromFreeEdges builds a Cache over the candidate set edges,
// containing only the directed pairs induced by freeIDs. The cache is
// seeded from the free edge set once at construction time.
func SeedFromFreeEdges(edges map[roadmap.EdgeID]roadmap.Edge, freeIDs []roadmap.EdgeID) *Cache {
	c := &Cache{
		edges:     edges,
		neighbors: make(map[roadmap.VertexID][]roadmap.VertexID),
	}

	for _, id := range freeIDs {
		c.insertLocked(id)
	}

	return c
}

// InsertEdge appends edge id's two directed neighbour entries to the
// cache, unconditionally — no uniqueness check. Called when an edge
// transitions blocked -> free. A no-op if id is unknown. id must name an
// edge in the candidate set this Cache was built over.
func (c *Cache) InsertEdge(id roadmap.EdgeID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.insertLocked(id)
}

func (c *Cache) insertLocked(id roadmap.EdgeID) {
	e, ok := c.edges[id]
	if !ok {
		return
	}

	c.neighbors[e.U] = append(c.neighbors[e.U], e.V)
	c.neighbors[e.V] = append(c.neighbors[e.V], e.U)
}

// RemoveEdge deletes every occurrence of edge id's two directed
// neighbour entries. Called when an edge transitions free -> blocked.
// Removing every occurrence, rather than just the
// first, tolerates duplicate directed candidate edges that can arise
// from the roadmap builder's independent per-vertex scans.
// A no-op if id is unknown or already absent from the cache.
func (c *Cache) RemoveEdge(id roadmap.EdgeID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.edges[id]
	if !ok {
		return
	}

	c.neighbors[e.U] = removeAll(c.neighbors[e.U], e.V)
	c.neighbors[e.V] = removeAll(c.neighbors[e.V], e.U)
}

// Neighbors returns the vertices currently reachable from v via a free
// edge. Returns an empty (nil) slice if v has no free edges or is
// unknown to the cache, never an error.
//
// Complexity: O(d) where d is the out-degree of v.
func (c *Cache) Neighbors(v roadmap.VertexID) []roadmap.VertexID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	nbrs := c.neighbors[v]
	out := make([]roadmap.VertexID, len(nbrs))
	copy(out, nbrs)

	return out
}

// Snapshot returns a copy of the full neighbour-list map, including
// duplicate entries. Used by engine.Save to persist the adjacency cache
// without re-deriving it from the blocking index on Load.
func (c *Cache) Snapshot() map[roadmap.VertexID][]roadmap.VertexID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[roadmap.VertexID][]roadmap.VertexID, len(c.neighbors))
	for v, nbrs := range c.neighbors {
		cp := make([]roadmap.VertexID, len(nbrs))
		copy(cp, nbrs)
		out[v] = cp
	}

	return out
}

// FromSnapshot rebuilds a Cache over edges directly from a previously
// dumped neighbour-list map, with no re-derivation from the free edge
// set. Used by engine.Load.
func FromSnapshot(edges map[roadmap.EdgeID]roadmap.Edge, neighbors map[roadmap.VertexID][]roadmap.VertexID) *Cache {
	c := &Cache{
		edges:     edges,
		neighbors: make(map[roadmap.VertexID][]roadmap.VertexID, len(neighbors)),
	}

	for v, nbrs := range neighbors {
		cp := make([]roadmap.VertexID, len(nbrs))
		copy(cp, nbrs)
		c.neighbors[v] = cp
	}

	return c
}

func removeAll(list []roadmap.VertexID, v roadmap.VertexID) []roadmap.VertexID {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
