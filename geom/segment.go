package geom

import "math"

// Straight constructs a straight segment of the given length along the
// current heading. Length must be non-negative; validation happens in
// Validate so that literal construction stays allocation-free.
func Straight(length float64) Segment {
	return Segment{Kind: StraightKind, Length: length}
}

// Arc constructs a circular arc of the given radius and signed turn
// angle in radians. Positive angle turns left (CCW), negative right.
func Arc(radius, angle float64) Segment {
	return Segment{Kind: ArcKind, Radius: radius, Angle: angle}
}

// Len returns the arc length contribution of the segment:
// the literal length for a straight, radius·|angle| for an arc.
func (s Segment) Len() float64 {
	if s.Kind == ArcKind {
		return s.Radius * math.Abs(s.Angle)
	}

	return s.Length
}

// Validate checks the segment's structural invariants:
// non-negative straight length, positive arc radius, non-zero arc angle.
func (s Segment) Validate() error {
	switch s.Kind {
	case ArcKind:
		if s.Radius <= 0 {
			return ErrNonPositiveRadius
		}
		if s.Angle == 0 {
			return ErrZeroAngle
		}
	default:
		if s.Length < 0 {
			return ErrNegativeLength
		}
	}

	return nil
}

// Reversed returns the segment as traversed in the opposite direction.
// A straight is its own reverse; an arc keeps its radius and magnitude
// but flips the turn sign (a left turn walked backwards is a right
// turn relative to the reversed travel heading).
func (s Segment) Reversed() Segment {
	if s.Kind == ArcKind {
		s.Angle = -s.Angle
	}

	return s
}

// Apply advances the pose p through the segment and returns the
// resulting pose. A straight translates along the heading; an arc
// rotates the heading by the signed angle while translating along the
// circle of the given radius whose center sits perpendicular to the
// entry heading.
//
// Complexity: O(1).
func (s Segment) Apply(p Pose) Pose {
	if s.Kind == StraightKind {
		p.Position.X += s.Length * math.Cos(p.Heading)
		p.Position.Y += s.Length * math.Sin(p.Heading)

		return p
	}

	// Arc: center lies at distance Radius perpendicular to the heading,
	// on the left for a positive (CCW) angle, on the right for negative.
	cx, cy, sign := s.arcCenter(p)

	// The entry point sits at angle (heading − sign·π/2) on the circle;
	// sweeping by the signed angle lands the exit point.
	phi := p.Heading - sign*math.Pi/2 + s.Angle
	p.Position.X = cx + s.Radius*math.Cos(phi)
	p.Position.Y = cy + s.Radius*math.Sin(phi)
	p.Heading = NormalizeAngle(p.Heading + s.Angle)

	return p
}

// arcCenter returns the center of the circle an arc follows when
// entered at pose p. Shared by Apply and Path.Flatten.
func (s Segment) arcCenter(p Pose) (cx, cy, sign float64) {
	sign = 1.0
	if s.Angle < 0 {
		sign = -1.0
	}
	cx = p.Position.X - sign*s.Radius*math.Sin(p.Heading)
	cy = p.Position.Y + sign*s.Radius*math.Cos(p.Heading)

	return cx, cy, sign
}
