package router

import "github.com/meltpath/layerplan/geom"

// orientation returns the cross product (b-a) x (c-a): positive
// for counter-clockwise, negative for clockwise, zero for collinear.
func orientation(a, b, c geom.Point) int64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func sign(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether q, known to be collinear with p-r, lies within
// the bounding box of segment p-r.
func onSegment(p, q, r geom.Point) bool {
	return q.X <= max64(p.X, r.X) && q.X >= min64(p.X, r.X) &&
		q.Y <= max64(p.Y, r.Y) && q.Y >= min64(p.Y, r.Y)
}

// segmentsCross reports whether open segments a1-a2 and b1-b2 properly
// cross (including the collinear-overlap case), ignoring intersections that
// occur only at a shared endpoint. A visibility edge is allowed to touch a
// boundary edge at a shared vertex; it must not cut through one.
func segmentsCross(a1, a2, b1, b2 geom.Point) bool {
	d1 := sign(orientation(b1, b2, a1))
	d2 := sign(orientation(b1, b2, a2))
	d3 := sign(orientation(a1, a2, b1))
	d4 := sign(orientation(a1, a2, b2))

	if d1*d2 < 0 && d3*d4 < 0 {
		// General case: the segments straddle each other. If they share an
		// endpoint this cannot happen (shared endpoints make one of the
		// orientations zero), so this is a genuine crossing.
		return true
	}

	// Collinear special cases: one endpoint lying exactly on the other
	// segment, which only counts as a crossing if it is a strict interior
	// overlap rather than a shared endpoint.
	if d1 == 0 && onSegment(b1, a1, b2) && a1 != b1 && a1 != b2 {
		return true
	}
	if d2 == 0 && onSegment(b1, a2, b2) && a2 != b1 && a2 != b2 {
		return true
	}
	if d3 == 0 && onSegment(a1, b1, a2) && b1 != a1 && b1 != a2 {
		return true
	}
	if d4 == 0 && onSegment(a1, b2, a2) && b2 != a1 && b2 != a2 {
		return true
	}

	return false
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
