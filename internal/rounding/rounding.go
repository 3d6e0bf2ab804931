// Package rounding provides the single half-away-from-zero integer rounding
// rule shared by every component that turns a Euclidean length into an
// integer edge weight (adjacency distances, A* costs and heuristics).
//
// Go's math.Round already implements half-away-from-zero, but we keep a
// thin wrapper so every call site documents *why* it rounds this way and so
// a single place governs how lengths become integer weights.
package rounding

import "math"

// ToInt rounds a non-negative Euclidean length to the nearest integer,
// breaking ties away from zero (1.5 -> 2, 2.5 -> 3), matching math.Round.
// Complexity: O(1).
func ToInt(length float64) int {
	return int(math.Round(length))
}
