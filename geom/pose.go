package geom

import "math"

// Pose is the position, heading and waveguide width of a port or of a
// path cursor. Poses are immutable values: every method returns a new
// Pose and never mutates the receiver.
//
// Heading is the direction of travel in radians, normalized to
// (-π, π]. For a port, callers that store the *facing* direction
// (pointing out of the component) convert to the arrival heading of an
// incoming path with Flipped.
type Pose struct {
	Position Point
	Heading  float64
	Width    float64
}

// NewPose builds a Pose at (x, y) with the given heading (normalized)
// and waveguide width.
func NewPose(x, y, heading, width float64) Pose {
	return Pose{
		Position: Point{X: x, Y: y},
		Heading:  NormalizeAngle(heading),
		Width:    width,
	}
}

// Flipped returns the pose rotated by a half turn in place: same
// position and width, opposite heading. Used to convert between a
// port's outward facing and the travel heading of a path that
// terminates on it.
func (p Pose) Flipped() Pose {
	p.Heading = NormalizeAngle(p.Heading + math.Pi)

	return p
}

// Translated returns the pose shifted by d, heading unchanged.
func (p Pose) Translated(d Point) Pose {
	p.Position = p.Position.Add(d)

	return p
}

// Snapped returns the pose with its position rounded to the nearest
// multiple of grid in each axis. A non-positive grid returns the pose
// unchanged. Manufacturing grids require port centers on-grid before a
// pose is handed to the layout assembler.
func (p Pose) Snapped(grid float64) Pose {
	if grid <= 0 {
		return p
	}
	p.Position.X = math.Round(p.Position.X/grid) * grid
	p.Position.Y = math.Round(p.Position.Y/grid) * grid

	return p
}

// AlmostEqual reports whether q matches p within eps in both position
// (per axis) and heading (shortest angular difference). Width is not
// compared: width mismatches are a port-compatibility concern for the
// caller, not a pose-identity concern.
func (p Pose) AlmostEqual(q Pose, eps float64) bool {
	if math.Abs(p.Position.X-q.Position.X) > eps {
		return false
	}
	if math.Abs(p.Position.Y-q.Position.Y) > eps {
		return false
	}

	return math.Abs(AngleDiff(p.Heading, q.Heading)) <= eps
}

// ToFrame expresses the world-coordinate point pt in the local frame
// of p: the frame whose origin is p.Position and whose +x axis points
// along p.Heading.
func (p Pose) ToFrame(pt Point) Point {
	d := pt.Sub(p.Position)
	c, s := math.Cos(p.Heading), math.Sin(p.Heading)

	return Point{
		X: d.X*c + d.Y*s,
		Y: -d.X*s + d.Y*c,
	}
}

// FromFrame maps a point expressed in the local frame of p back to
// world coordinates. Inverse of ToFrame.
func (p Pose) FromFrame(pt Point) Point {
	c, s := math.Cos(p.Heading), math.Sin(p.Heading)

	return Point{
		X: p.Position.X + pt.X*c - pt.Y*s,
		Y: p.Position.Y + pt.X*s + pt.Y*c,
	}
}

// PoseToFrame expresses the world pose q in the local frame of p,
// preserving width.
func (p Pose) PoseToFrame(q Pose) Pose {
	return Pose{
		Position: p.ToFrame(q.Position),
		Heading:  NormalizeAngle(q.Heading - p.Heading),
		Width:    q.Width,
	}
}

// PoseFromFrame maps a pose expressed in the local frame of p back to
// world coordinates. Inverse of PoseToFrame.
func (p Pose) PoseFromFrame(q Pose) Pose {
	return Pose{
		Position: p.FromFrame(q.Position),
		Heading:  NormalizeAngle(q.Heading + p.Heading),
		Width:    q.Width,
	}
}
