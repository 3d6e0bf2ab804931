// persist.go implements Save/Load: a single msgpack-encoded binary blob
// holding, in order, config, vertices, edges, obstacles, blocked_by,
// block_count and neighbours, exactly as laid out in spec.md §6.
//
// Grounded on the teacher's own persistence-free style — lvlath carries
// no save/load of its own, so this is learned from the rest of the
// retrieval pack instead: github.com/vmihailenco/msgpack/v5 is the
// binary-blob codec used for a compact struct-tagged snapshot rather than
// a hand-rolled binary writer, the direct analogue of the original's
// bincode-serialised DPrm struct (original_source/dprm.rs's
// #[derive(Serialize, Deserialize)] on DPrm).
package engine

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/dynaprm/adjacency"
	"github.com/katalvlaran/dynaprm/blocking"
	"github.com/katalvlaran/dynaprm/geom"
	"github.com/katalvlaran/dynaprm/internal/rounding"
	"github.com/katalvlaran/dynaprm/obstacle"
	"github.com/katalvlaran/dynaprm/roadmap"
)

// snapshot is the exact on-disk layout, field order matching spec.md §6.
type snapshot struct {
	Config     Config            `msgpack:"config"`
	Vertices   []vertexRecord    `msgpack:"vertices"`
	Edges      []edgeRecord      `msgpack:"edges"`
	Obstacles  []obstacleRecord  `msgpack:"obstacles"`
	BlockedBy  []blockedByRecord `msgpack:"blocked_by"`
	BlockCount []blockCountEntry `msgpack:"block_count"`
	Neighbours []neighbourRecord `msgpack:"neighbours"`
}

type vertexRecord struct {
	ID roadmap.VertexID `msgpack:"id"`
	X  float64          `msgpack:"x"`
	Y  float64          `msgpack:"y"`
}

type edgeRecord struct {
	ID     roadmap.EdgeID   `msgpack:"id"`
	U      roadmap.VertexID `msgpack:"u"`
	V      roadmap.VertexID `msgpack:"v"`
	Length float64          `msgpack:"length"`
}

type obstacleRecord struct {
	ID   obstacle.ID `msgpack:"id"`
	XMin float64     `msgpack:"x_min"`
	YMin float64     `msgpack:"y_min"`
	XMax float64     `msgpack:"x_max"`
	YMax float64     `msgpack:"y_max"`
}

type blockedByRecord struct {
	ObstacleID  obstacle.ID      `msgpack:"oid"`
	EdgeIDCount int              `msgpack:"edge_id_count"`
	EdgeIDs     []roadmap.EdgeID `msgpack:"edge_ids"`
}

type blockCountEntry struct {
	EdgeID roadmap.EdgeID `msgpack:"edge_id"`
	Count  int            `msgpack:"count"`
}

type neighbourRecord struct {
	VertexID   roadmap.VertexID `msgpack:"vid"`
	EntryCount int              `msgpack:"entry_count"`
	Entries    []neighbourEntry `msgpack:"entries"`
}

type neighbourEntry struct {
	NeighborID roadmap.VertexID `msgpack:"neighbor_vid"`
	Distance   int              `msgpack:"distance"`
}

// Save encodes e's full state to path as a single msgpack blob.
func (e *Engine) Save(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.toSnapshot()

	data, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersistence, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write: %v", ErrPersistence, err)
	}

	return nil
}

// Load decodes a msgpack blob previously written by Save and reconstructs
// an Engine from it without re-running roadmap construction or the
// obstacle scans: the blob already carries a consistent vertices/edges/
// blocked_by/block_count/neighbours quintuple, so Load only needs to
// replay that state into fresh in-memory structures.
func Load(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrPersistence, err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrPersistence, err)
	}

	return fromSnapshot(snap)
}

func (e *Engine) toSnapshot() snapshot {
	snap := snapshot{Config: e.config}

	for id, v := range e.vertices {
		snap.Vertices = append(snap.Vertices, vertexRecord{ID: id, X: v.Point.X, Y: v.Point.Y})
	}

	for id, edge := range e.edges {
		snap.Edges = append(snap.Edges, edgeRecord{ID: id, U: edge.U, V: edge.V, Length: edge.Length})
	}

	for _, o := range e.blocking.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, obstacleRecord{
			ID: o.ID, XMin: o.Rect.Min.X, YMin: o.Rect.Min.Y, XMax: o.Rect.Max.X, YMax: o.Rect.Max.Y,
		})
	}

	for oid, ids := range e.blocking.BlockedByAll() {
		snap.BlockedBy = append(snap.BlockedBy, blockedByRecord{ObstacleID: oid, EdgeIDCount: len(ids), EdgeIDs: ids})
	}

	for id, count := range e.blocking.BlockCountAll() {
		snap.BlockCount = append(snap.BlockCount, blockCountEntry{EdgeID: id, Count: count})
	}

	for vid, nbrs := range e.cache.Snapshot() {
		entries := make([]neighbourEntry, 0, len(nbrs))
		for _, nbr := range nbrs {
			d := rounding.ToInt(geom.Distance(e.vertices[vid].Point, e.vertices[nbr].Point))
			entries = append(entries, neighbourEntry{NeighborID: nbr, Distance: d})
		}
		snap.Neighbours = append(snap.Neighbours, neighbourRecord{VertexID: vid, EntryCount: len(entries), Entries: entries})
	}

	return snap
}

func fromSnapshot(snap snapshot) (*Engine, error) {
	if err := snap.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	vertices := make(map[roadmap.VertexID]roadmap.Vertex, len(snap.Vertices))
	for _, v := range snap.Vertices {
		vertices[v.ID] = roadmap.Vertex{ID: v.ID, Point: geom.Point{X: v.X, Y: v.Y}}
	}

	edges := make(map[roadmap.EdgeID]roadmap.Edge, len(snap.Edges))
	for _, rec := range snap.Edges {
		u, v := vertices[rec.U], vertices[rec.V]
		edges[rec.ID] = roadmap.Edge{
			ID:      rec.ID,
			U:       rec.U,
			V:       rec.V,
			Segment: geom.Segment{A: u.Point, B: v.Point},
			Length:  rec.Length,
		}
	}

	obstacles := make([]obstacle.Obstacle, 0, len(snap.Obstacles))
	for _, rec := range snap.Obstacles {
		obstacles = append(obstacles, obstacle.Obstacle{
			ID:   rec.ID,
			Rect: geom.Rect{Min: geom.Point{X: rec.XMin, Y: rec.YMin}, Max: geom.Point{X: rec.XMax, Y: rec.YMax}},
		})
	}

	blockedBy := make(map[obstacle.ID][]roadmap.EdgeID, len(snap.BlockedBy))
	for _, rec := range snap.BlockedBy {
		blockedBy[rec.ObstacleID] = rec.EdgeIDs
	}

	blockCount := make(map[roadmap.EdgeID]int, len(snap.BlockCount))
	for _, rec := range snap.BlockCount {
		blockCount[rec.EdgeID] = rec.Count
	}

	idx := blocking.NewIndexFromSnapshot(edges, snap.Config.WorkerCount, obstacles, blockedBy, blockCount)

	neighbours := make(map[roadmap.VertexID][]roadmap.VertexID, len(snap.Neighbours))
	for _, rec := range snap.Neighbours {
		nbrs := make([]roadmap.VertexID, 0, len(rec.Entries))
		for _, entry := range rec.Entries {
			nbrs = append(nbrs, entry.NeighborID)
		}
		neighbours[rec.VertexID] = nbrs
	}
	cache := adjacency.FromSnapshot(edges, neighbours)

	return &Engine{
		config:   snap.Config,
		vertices: vertices,
		edges:    edges,
		blocking: idx,
		cache:    cache,
	}, nil
}
