// intersect.go implements point-in-rectangle containment and
// segment/rectangle intersection.
package geom

// PointInRect reports whether p lies within the closed rectangle r
// (boundary included).
// Complexity: O(1).
func PointInRect(p Point, r Rect) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// SegmentIntersectsRect reports whether s meets the closed rectangle r, at
// any point along the segment (including its endpoints). This is true
// whenever either endpoint lies inside r, or the segment crosses one of
// r's four boundary edges.
//
// Implementation: Liang-Barsky parametric clipping of the segment against
// the rectangle's four half-planes. This handles every case in one pass
// (fully inside, fully outside, crossing, tangent to an edge, degenerate
// zero-length segment) without special-casing axis-aligned segments.
//
// Complexity: O(1).
func SegmentIntersectsRect(s Segment, r Rect) bool {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y

	// Parametric interval [tMin, tMax] of the segment that survives
	// clipping against all four half-planes. Starts as the full [0,1].
	tMin, tMax := 0.0, 1.0

	clip := func(p, q float64) bool {
		// Clips against one half-plane p*t <= q.
		if p == 0 {
			// Segment is parallel to this pair of edges; outside if q<0.
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > tMax {
				return false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return false
			}
			if t < tMax {
				tMax = t
			}
		}

		return true
	}

	if !clip(-dx, s.A.X-r.Min.X) {
		return false
	}
	if !clip(dx, r.Max.X-s.A.X) {
		return false
	}
	if !clip(-dy, s.A.Y-r.Min.Y) {
		return false
	}
	if !clip(dy, r.Max.Y-s.A.Y) {
		return false
	}

	return tMin <= tMax
}
