// Package geom provides the 2D geometry primitives the roadmap engine is
// built on: points, line segments and axis-aligned rectangles, plus
// containment and segment/rectangle intersection tests.
//
// All arithmetic is IEEE-754 double precision. geom has no dependency on
// any other package in this module: every other component treats it as a
// leaf.
package geom

import "math"

// Point is a location in the configuration rectangle [0,width) x [0,height).
type Point struct {
	X, Y float64
}

// Segment is the closed line between two Points.
type Segment struct {
	A, B Point
}

// Rect is an axis-aligned rectangle described by its opposite corners.
// Min is always the lower-left corner and Max the upper-right one:
// Min.X <= Max.X and Min.Y <= Max.Y.
type Rect struct {
	Min, Max Point
}

// NewRect builds a Rect from two arbitrary corners, normalizing the
// min/max ordering so callers never have to pre-sort coordinates.
func NewRect(c1, c2 Point) Rect {
	minX, maxX := c1.X, c2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := c1.Y, c2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	return Rect{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}
}

// Distance returns the Euclidean distance between p and q.
// Complexity: O(1).
func Distance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Length returns the Euclidean length of the segment.
// Complexity: O(1).
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}
