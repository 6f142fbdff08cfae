// Package obstacle defines the obstacle region type and sentinel
// errors for the obstacle subpackage of
// github.com/photonforge/waveroute.
package obstacle

import (
	"errors"

	"github.com/photonforge/waveroute/geom"
)

// Sentinel errors for obstacle construction.
var (
	// ErrTooFewVertices indicates a polygon with fewer than three vertices.
	ErrTooFewVertices = errors.New("obstacle: polygon needs at least three vertices")
	// ErrEmptyRect indicates a rectangle whose min corner does not lie
	// strictly below-left of its max corner.
	ErrEmptyRect = errors.New("obstacle: rectangle must have positive extent in both axes")
	// ErrNegativeInflation indicates a negative width or clearance passed
	// to the intersection predicate.
	ErrNegativeInflation = errors.New("obstacle: width and clearance must be non-negative")
)

// Obstacle is a closed planar region owned by an already-placed
// structure. Immutable for the duration of a routing call: the vertex
// slice is deep-copied at construction and never modified afterwards.
type Obstacle struct {
	vertices []geom.Point
	owner    string
}

// NewPolygon builds an obstacle from a closed vertex loop (the closing
// edge from the last vertex back to the first is implicit). The owner
// identifier is carried for diagnostics only and may be empty.
func NewPolygon(vertices []geom.Point, owner string) (Obstacle, error) {
	if len(vertices) < 3 {
		return Obstacle{}, ErrTooFewVertices
	}
	owned := make([]geom.Point, len(vertices))
	copy(owned, vertices)

	return Obstacle{vertices: owned, owner: owner}, nil
}

// NewRect builds an axis-aligned rectangular obstacle from its
// lower-left and upper-right corners.
func NewRect(min, max geom.Point, owner string) (Obstacle, error) {
	if max.X <= min.X || max.Y <= min.Y {
		return Obstacle{}, ErrEmptyRect
	}

	return Obstacle{
		vertices: []geom.Point{
			{X: min.X, Y: min.Y},
			{X: max.X, Y: min.Y},
			{X: max.X, Y: max.Y},
			{X: min.X, Y: max.Y},
		},
		owner: owner,
	}, nil
}

// Owner returns the diagnostics identifier of the structure that
// placed this obstacle.
func (o Obstacle) Owner() string { return o.owner }

// Vertices returns a copy of the polygon loop; callers cannot reach
// the internal slice.
func (o Obstacle) Vertices() []geom.Point {
	out := make([]geom.Point, len(o.vertices))
	copy(out, o.vertices)

	return out
}

// Bounds returns the axis-aligned bounding box of the region.
func (o Obstacle) Bounds() (min, max geom.Point) {
	min, max = o.vertices[0], o.vertices[0]
	for _, v := range o.vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}

	return min, max
}
