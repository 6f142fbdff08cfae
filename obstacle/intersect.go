package obstacle

import (
	"math"

	"github.com/photonforge/waveroute/geom"
)

// Intersects reports whether a path centerline polyline, inflated by
// half the waveguide width plus the clearance margin, touches the
// obstacle region. Pure predicate: the router must never emit a path
// for which this returns true against any obstacle in the request.
//
// A polyline with fewer than one point never intersects. Negative
// width or clearance returns ErrNegativeInflation.
//
// Complexity: O(n·m) for n polyline points and m polygon vertices.
func (o Obstacle) Intersects(polyline []geom.Point, width, clearance float64) (bool, error) {
	if width < 0 || clearance < 0 {
		return false, ErrNegativeInflation
	}
	if len(polyline) == 0 {
		return false, nil
	}
	inflate := width/2 + clearance

	// Any centerline vertex inside the region is an immediate hit,
	// regardless of inflation.
	for _, pt := range polyline {
		if o.contains(pt) {
			return true, nil
		}
	}

	// Single point outside the region: distance to the boundary.
	if len(polyline) == 1 {
		return o.boundaryDist(polyline[0]) <= inflate, nil
	}

	// Segment-to-edge proximity covers crossings between samples and
	// the inflated margin.
	m := len(o.vertices)
	for i := 1; i < len(polyline); i++ {
		a, b := polyline[i-1], polyline[i]
		for j := 0; j < m; j++ {
			c, d := o.vertices[j], o.vertices[(j+1)%m]
			if segSegDist(a, b, c, d) <= inflate {
				return true, nil
			}
		}
	}

	return false, nil
}

// AnyIntersects runs the predicate over a whole obstacle set and
// returns the first offending obstacle, if any.
func AnyIntersects(obstacles []Obstacle, polyline []geom.Point, width, clearance float64) (*Obstacle, error) {
	for i := range obstacles {
		hit, err := obstacles[i].Intersects(polyline, width, clearance)
		if err != nil {
			return nil, err
		}
		if hit {
			return &obstacles[i], nil
		}
	}

	return nil, nil
}

// contains reports whether pt lies strictly inside the polygon, by
// even-odd ray casting along +x.
func (o Obstacle) contains(pt geom.Point) bool {
	inside := false
	m := len(o.vertices)
	for i, j := 0, m-1; i < m; j, i = i, i+1 {
		vi, vj := o.vertices[i], o.vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) {
			xCross := vj.X + (pt.Y-vj.Y)/(vi.Y-vj.Y)*(vi.X-vj.X)
			if pt.X < xCross {
				inside = !inside
			}
		}
	}

	return inside
}

// boundaryDist returns the distance from pt to the polygon outline.
func (o Obstacle) boundaryDist(pt geom.Point) float64 {
	min := math.Inf(1)
	m := len(o.vertices)
	for j := 0; j < m; j++ {
		d := pointSegDist(pt, o.vertices[j], o.vertices[(j+1)%m])
		if d < min {
			min = d
		}
	}

	return min
}

// pointSegDist returns the distance from p to the segment a–b.
func pointSegDist(p, a, b geom.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	den := dx*dx + dy*dy
	if den == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.Dist(geom.Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// segSegDist returns the distance between segments a–b and c–d:
// zero when they properly intersect, otherwise the minimum of the four
// endpoint-to-segment distances.
func segSegDist(a, b, c, d geom.Point) float64 {
	if segmentsCross(a, b, c, d) {
		return 0
	}
	min := pointSegDist(a, c, d)
	if v := pointSegDist(b, c, d); v < min {
		min = v
	}
	if v := pointSegDist(c, a, b); v < min {
		min = v
	}
	if v := pointSegDist(d, a, b); v < min {
		min = v
	}

	return min
}

// segmentsCross reports whether segments a–b and c–d intersect,
// collinear overlap included.
func segmentsCross(a, b, c, d geom.Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(c, d, a) {
		return true
	}
	if d2 == 0 && onSegment(c, d, b) {
		return true
	}
	if d3 == 0 && onSegment(a, b, c) {
		return true
	}
	if d4 == 0 && onSegment(a, b, d) {
		return true
	}

	return false
}

// cross returns the z component of (b−a)×(p−a).
func cross(a, b, p geom.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// onSegment assumes p is collinear with a–b and reports whether it
// lies within the segment's bounding box.
func onSegment(a, b, p geom.Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
