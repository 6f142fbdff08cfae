package route

import (
	"fmt"
	"math"

	"github.com/photonforge/waveroute/geom"
)

// BuildDirect constructs the shortest single-maneuver path from start
// to end under the configured minimum bend radius, with an exact pose
// match at the end. Every arc uses exactly cfg.BendRadiusMin.
//
// Maneuver selection (fewest arcs, then shortest length):
//  1. pure straight           — same heading, target dead ahead
//  2. straight–arc–straight   — any heading change in (0, π)
//  3. S-bend                  — same heading, lateral offset
//  4. U-turn                  — opposing headings
//
// Fails with ErrNoFeasibleGeometry when the offset between the poses
// cannot be spanned without violating the radius floor (e.g. a lateral
// offset smaller than the radius required to turn and return), and
// with ErrWidthMismatch when the poses carry different waveguide
// widths. The condition is reported, never silently approximated.
//
// Complexity: O(1).
func BuildDirect(start, end geom.Pose, cfg Config) (geom.Path, error) {
	if err := cfg.Validate(); err != nil {
		return geom.Path{}, err
	}
	if math.Abs(start.Width-end.Width) > cfg.PoseEpsilon {
		return geom.Path{}, fmt.Errorf("%w: %.6g vs %.6g", ErrWidthMismatch, start.Width, end.Width)
	}

	// Work in the start frame: dx forward, dy lateral (+ = left),
	// dt the heading change.
	local := start.PoseToFrame(end)
	dx, dy := local.Position.X, local.Position.Y
	dt := local.Heading

	segs, ok := directSegments(dx, dy, dt, cfg.BendRadiusMin, cfg.PoseEpsilon)
	if !ok {
		return geom.Path{}, fmt.Errorf("%w: offset (%.6g, %.6g, %.6g rad) at radius %.6g",
			ErrNoFeasibleGeometry, dx, dy, dt, cfg.BendRadiusMin)
	}

	p := geom.NewPath(start, segs...)
	if !p.End().AlmostEqual(end, cfg.PoseEpsilon) {
		return geom.Path{}, fmt.Errorf("%w: end pose mismatch in direct construction", ErrInvariantViolation)
	}

	return p, nil
}

// directSegments picks the maneuver in the start frame. Returns the
// segment sequence (zero-length fillers dropped) and whether any
// maneuver spans the offset.
func directSegments(dx, dy, dt, r, eps float64) ([]geom.Segment, bool) {
	switch {
	case math.Abs(dt) <= eps && math.Abs(dy) <= eps:
		// Dead ahead (or coincident).
		if dx < -eps {
			return nil, false // target behind the port
		}

		return trim(eps, geom.Straight(math.Max(dx, 0))), true

	case math.Abs(dt) <= eps:
		return sBend(dx, dy, r, eps)

	case math.Pi-math.Abs(dt) <= eps:
		return uTurn(dx, dy, r, eps)

	default:
		return singleArc(dx, dy, dt, r, eps)
	}
}

// singleArc solves straight(a) – arc(dt) – straight(b) for a, b ≥ 0.
// The arc displaces (r·sin|dt|, sign(dt)·r·(1−cos|dt|)) in the entry
// frame; the linear system in a and b has a unique solution whenever
// sin(dt) ≠ 0.
func singleArc(dx, dy, dt, r, eps float64) ([]geom.Segment, bool) {
	sign := 1.0
	if dt < 0 {
		sign = -1.0
	}
	abs := math.Abs(dt)

	b := (dy - sign*r*(1-math.Cos(abs))) / math.Sin(dt)
	a := dx - r*math.Sin(abs) - b*math.Cos(dt)
	if a < -eps || b < -eps {
		return nil, false
	}

	return trim(eps,
		geom.Straight(math.Max(a, 0)),
		geom.Arc(r, dt),
		geom.Straight(math.Max(b, 0)),
	), true
}

// sBend spans a pure lateral offset at unchanged heading. For
// |dy| ≤ 2r two opposed arcs of angle α with 2r(1−cos α) = |dy| do it,
// consuming 2r·sin α of forward room; larger offsets use a quarter-turn
// pair around a lateral riser, consuming exactly 2r forward. Leftover
// forward room is split evenly into lead-in and lead-out straights.
func sBend(dx, dy, r, eps float64) ([]geom.Segment, bool) {
	side := 1.0
	if dy < 0 {
		side = -1.0
	}
	mag := math.Abs(dy)

	if mag <= 2*r {
		alpha := math.Acos(1 - mag/(2*r))
		forward := 2 * r * math.Sin(alpha)
		if dx < forward-eps {
			return nil, false // not enough room to turn and return
		}
		lead := (dx - forward) / 2

		return trim(eps,
			geom.Straight(lead),
			geom.Arc(r, side*alpha),
			geom.Arc(r, -side*alpha),
			geom.Straight(lead),
		), true
	}

	if dx < 2*r-eps {
		return nil, false
	}
	lead := (dx - 2*r) / 2

	return trim(eps,
		geom.Straight(lead),
		geom.Arc(r, side*math.Pi/2),
		geom.Straight(mag-2*r),
		geom.Arc(r, -side*math.Pi/2),
		geom.Straight(lead),
	), true
}

// uTurn spans opposing headings with two same-sense quarter arcs
// around a straight riser; feasible only when the lateral offset
// reaches the full turn diameter 2r. The forward imbalance goes into
// whichever of the lead-in/lead-out straights needs it.
func uTurn(dx, dy, r, eps float64) ([]geom.Segment, bool) {
	side := 1.0
	if dy < 0 {
		side = -1.0
	}
	mag := math.Abs(dy)
	if mag < 2*r-eps {
		return nil, false // lateral offset smaller than the turn diameter
	}

	riser := math.Max(mag-2*r, 0)
	lead := math.Max(dx, 0)
	tail := math.Max(-dx, 0)

	return trim(eps,
		geom.Straight(lead),
		geom.Arc(r, side*math.Pi/2),
		geom.Straight(riser),
		geom.Arc(r, side*math.Pi/2),
		geom.Straight(tail),
	), true
}

// trim drops straights shorter than eps; arcs pass through untouched.
func trim(eps float64, segs ...geom.Segment) []geom.Segment {
	out := make([]geom.Segment, 0, len(segs))
	for _, s := range segs {
		if s.Kind == geom.StraightKind && s.Length <= eps {
			continue
		}
		out = append(out, s)
	}

	return out
}
