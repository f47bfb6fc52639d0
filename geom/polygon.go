package geom

// Polygon is an ordered sequence of points. Whether it is walked as a closed
// loop or an open path is a property of the governing PathConfig, not of
// this data — see pathcfg.Config.ClosedLoop.
type Polygon []Point

// PolygonSet is an unordered collection of polygons. An outline plus its
// holes form one island; this package never distinguishes outline from hole,
// that distinction lives upstream with the caller supplying the set.
type PolygonSet []Polygon

// Length returns the polygon's open arclength: the sum of consecutive
// segment lengths, without an implicit closing edge back to the first point.
// Closed-loop traversal adds its own explicit closing point upstream (see
// planner.Queue.QueuePolygon), so a polygon's Length never wraps around on
// its own.
func (p Polygon) Length() int64 {
	var total int64
	for i := 1; i < len(p); i++ {
		total += Dist(p[i-1], p[i])
	}
	return total
}

// Trim returns a new polygon whose arclength, measured from the first
// point, is distance shorter than p's. The tail is cut; if the cut lands
// mid-segment, a new final point is interpolated along that segment. Trim by
// a distance exceeding p's length returns an empty polygon. Trim by a
// non-positive distance returns p unchanged (as a copy), which is what
// makes Trim(Trim(p, d), 0) equal Trim(p, d): trimming by an additional zero
// distance is a no-op on an already-trimmed polygon.
func Trim(p Polygon, distance int64) Polygon {
	if len(p) == 0 {
		return Polygon{}
	}
	if distance <= 0 {
		return append(Polygon{}, p...)
	}

	total := p.Length()
	keep := total - distance
	if keep <= 0 {
		return Polygon{}
	}

	out := make(Polygon, 0, len(p))
	out = append(out, p[0])

	var acc int64
	for i := 1; i < len(p); i++ {
		seg := Dist(p[i-1], p[i])
		if acc+seg < keep {
			acc += seg
			out = append(out, p[i])
			continue
		}

		remain := keep - acc
		if seg == 0 {
			break
		}
		t := float64(remain) / float64(seg)
		out = append(out, lerp(p[i-1], p[i], t))
		break
	}

	return out
}

// lerp linearly interpolates the XY (and Z) coordinates between a and b at
// parameter t in [0, 1]. Width is taken from b, matching the surviving
// endpoint's intended extrusion width.
func lerp(a, b Point, t float64) Point {
	return Point{
		X:     a.X + int64(float64(b.X-a.X)*t),
		Y:     a.Y + int64(float64(b.Y-a.Y)*t),
		Z:     a.Z + int64(float64(b.Z-a.Z)*t),
		Width: b.Width,
	}
}

// PointInPolygon reports whether p lies strictly inside poly using the
// standard even-odd ray-casting test. Points exactly on an edge are not
// guaranteed to test as inside; callers needing boundary-inclusive
// containment should test against an outward-offset polygon instead.
func PointInPolygon(p Point, poly Polygon) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := float64(pj.X-pi.X)*float64(p.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(p.X) < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PointInSet reports whether p lies inside an odd number of polygons in set,
// the even-odd rule islands (outline plus holes) rely on to tell "inside the
// printed part" from "inside a hole".
func PointInSet(p Point, set PolygonSet) bool {
	count := 0
	for _, poly := range set {
		if PointInPolygon(p, poly) {
			count++
		}
	}
	return count%2 == 1
}
