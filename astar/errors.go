// Package astar implements A* search over the adjacency cache, using the
// integer-rounded Euclidean distance between vertex points as the
// heuristic and integer-rounded Euclidean edge lengths as step costs.
package astar

import "errors"

// ErrSourceNotFound indicates the requested source VertexId is not
// present in the vertex set.
var ErrSourceNotFound = errors.New("astar: source vertex not found")

// ErrGoalNotFound indicates the requested goal VertexId is not present
// in the vertex set.
var ErrGoalNotFound = errors.New("astar: goal vertex not found")

// ErrEmptyVertexSet indicates NearestVertex was called against an empty
// vertex set, so no nearest vertex can exist.
var ErrEmptyVertexSet = errors.New("astar: vertex set is empty")
