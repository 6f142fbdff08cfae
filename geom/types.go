// Package geom defines core types and sentinel errors for the
// geometry layer of github.com/photonforge/waveroute.
package geom

import (
	"errors"
	"math"
)

// Sentinel errors for geometry construction and validation.
var (
	// ErrNegativeLength indicates a straight segment with length < 0.
	ErrNegativeLength = errors.New("geom: straight length must be non-negative")
	// ErrNonPositiveRadius indicates an arc with radius ≤ 0.
	ErrNonPositiveRadius = errors.New("geom: arc radius must be positive")
	// ErrZeroAngle indicates an arc with a zero turn angle.
	ErrZeroAngle = errors.New("geom: arc angle must be non-zero")
	// ErrEmptyPath indicates an operation that requires at least one segment.
	ErrEmptyPath = errors.New("geom: path must contain at least one segment")
	// ErrBadChordError indicates a non-positive flattening tolerance.
	ErrBadChordError = errors.New("geom: chord error tolerance must be positive")
)

// Default tolerances shared across the engine. Callers may override
// them through the configuration surface of the route and delay
// packages; these values are the documented engine-wide floors.
const (
	// DefaultPoseEpsilon is the positional (length units) and angular
	// (radians) tolerance for pose equality.
	DefaultPoseEpsilon = 1e-6

	// DefaultChordError is the maximum sagitta permitted when an arc is
	// flattened to a polyline for obstacle testing.
	DefaultChordError = 5e-3
)

// Point is a coordinate in the planar chip coordinate system.
type Point struct {
	X, Y float64
}

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p − q component-wise.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// SegmentKind tags the Segment variant: StraightKind or ArcKind.
type SegmentKind int

const (
	// StraightKind is a straight run along the current heading.
	StraightKind SegmentKind = iota
	// ArcKind is a circular arc of fixed radius and signed turn angle.
	ArcKind
)

// Segment is one element of a path: either a straight run or a
// circular arc. Exactly the fields of the tagged variant are
// meaningful: Length for StraightKind, Radius and Angle for ArcKind.
// Angle sign encodes turn direction: positive turns left (CCW),
// negative turns right (CW).
type Segment struct {
	Kind   SegmentKind
	Length float64 // StraightKind only
	Radius float64 // ArcKind only
	Angle  float64 // ArcKind only, signed radians
}

// NormalizeAngle maps an angle in radians onto (-π, π].
// Mirrors the [-180°, 180°) port-orientation normalization used by
// upstream layout tooling, shifted to keep +π (a half turn) canonical.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}

	return a
}

// AngleDiff returns the smallest signed angle that rotates b onto a,
// normalized to (-π, π].
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(a - b)
}
