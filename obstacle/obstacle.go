// Package obstacle implements the indexed obstacle collection: axis-aligned
// rectangles keyed by a globally-unique ObstacleId, with
// add/remove/containment operations.
//
// Generalized from lvlath/core's keyed-map-of-identities style (core.Graph's
// vertices/edges maps in core/types.go) from string IDs to a 128-bit
// ObstacleId backed by github.com/google/uuid.
package obstacle

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/dynaprm/geom"
)

// ID is the opaque 128-bit identifier assigned to an obstacle at creation.
// Two Obstacles created independently never collide.
type ID = uuid.UUID

// NewID returns a fresh, globally-unique ObstacleId.
func NewID() ID {
	return uuid.New()
}

// Obstacle is an axis-aligned rectangular region of blocked configuration
// space plus its identity.
type Obstacle struct {
	ID   ID
	Rect geom.Rect
}

// New constructs an Obstacle with a fresh ID from a rectangle.
func New(rect geom.Rect) Obstacle {
	return Obstacle{ID: NewID(), Rect: rect}
}

// Set is a mutable, indexed collection of Obstacles keyed by ID.
// Set is not safe for concurrent mutation on its own; callers needing
// thread-safety (blocking.Index) wrap it with their own mutex, matching
// core.Graph's own locking discipline rather than duplicating locks here.
type Set struct {
	byID map[ID]Obstacle
}

// NewSet returns an empty obstacle Set.
func NewSet() *Set {
	return &Set{byID: make(map[ID]Obstacle)}
}

// Add inserts o, replacing any existing obstacle with the same ID in
// place.
// Complexity: O(1).
func (s *Set) Add(o Obstacle) {
	s.byID[o.ID] = o
}

// RemoveByID deletes the obstacle with the given id. Removing an unknown
// id is a no-op at this layer; the blocking index reports an unknown id
// as ErrUnknownObstacle, and the engine logs it.
// Complexity: O(1).
func (s *Set) RemoveByID(id ID) {
	delete(s.byID, id)
}

// Get returns the obstacle with the given id, if present.
// Complexity: O(1).
func (s *Set) Get(id ID) (Obstacle, bool) {
	o, ok := s.byID[id]

	return o, ok
}

// ContainsObstacle reports whether id names an obstacle currently in s.
// Complexity: O(1).
func (s *Set) ContainsObstacle(id ID) bool {
	_, ok := s.byID[id]

	return ok
}

// ContainsPoint reports whether any obstacle in s contains p.
// Complexity: O(|s|).
func (s *Set) ContainsPoint(p geom.Point) bool {
	for _, o := range s.byID {
		if geom.PointInRect(p, o.Rect) {
			return true
		}
	}

	return false
}

// Len returns the number of obstacles currently in s.
func (s *Set) Len() int {
	return len(s.byID)
}

// Each calls fn once per obstacle in s. Iteration order is unspecified
// (Go map order); callers must not depend on it.
func (s *Set) Each(fn func(Obstacle)) {
	for _, o := range s.byID {
		fn(o)
	}
}

// All returns a snapshot slice of every obstacle currently in s. The
// returned slice is safe for the caller to retain; mutating s afterwards
// does not affect it.
func (s *Set) All() []Obstacle {
	out := make([]Obstacle, 0, len(s.byID))
	for _, o := range s.byID {
		out = append(out, o)
	}

	return out
}
