package delay

import (
	"fmt"
	"math"

	"github.com/photonforge/waveroute/geom"
	"github.com/photonforge/waveroute/obstacle"
)

// MatchLength pads path to the target length by inserting compensating
// excursions into its straight runs, and returns the padded path.
//
// Contract:
//
//   - never shortens: a path already within tolerance of (or beyond)
//     the target is returned unchanged;
//   - the full geometric length of every excursion — outbound, top and
//     return legs — is counted against the deficit;
//   - every inserted arc uses exactly opts.BendRadius and every
//     excursion respects opts.LoopHeightMax and obstacle clearance;
//   - all-or-nothing: on any failure the input path is not modified
//     and no partial result is returned.
//
// Fails with ErrBadTarget for target ≤ 0, ErrBadOptions for option
// violations, and ErrLengthUnreachable when the deficit exceeds the
// achievable padding.
func MatchLength(path geom.Path, target float64, opts Options) (geom.Path, error) {
	if err := opts.validate(); err != nil {
		return geom.Path{}, err
	}
	if target <= 0 {
		return geom.Path{}, fmt.Errorf("%w: %.6g", ErrBadTarget, target)
	}

	base := path.Length()
	if base >= target-opts.LengthTolerance {
		return path, nil // already long enough; only ever pad
	}

	plan, err := planExcursions(path, target-base, opts)
	if err != nil {
		return geom.Path{}, err
	}

	// Side patterns, tried in order until one clears the obstacle set:
	// alternating starting up, alternating starting down, all up, all
	// down. Alternation bounds the serpentine's lateral envelope.
	patterns := []func(i int) float64{
		func(i int) float64 { return sideSign(i%2 == 0) },
		func(i int) float64 { return sideSign(i%2 == 1) },
		func(int) float64 { return 1 },
		func(int) float64 { return -1 },
	}
	for _, pattern := range patterns {
		padded := applyPlan(path, plan, pattern, opts)
		if len(opts.Obstacles) > 0 {
			pts, ferr := padded.Flatten(opts.ChordError)
			if ferr != nil {
				return geom.Path{}, ferr
			}
			hit, herr := obstacle.AnyIntersects(opts.Obstacles, pts, padded.Start.Width, opts.ClearanceMargin)
			if herr != nil {
				return geom.Path{}, herr
			}
			if hit != nil {
				continue
			}
		}
		if math.Abs(padded.Length()-target) > opts.LengthTolerance {
			return geom.Path{}, fmt.Errorf("%w: got %.9g, want %.9g",
				ErrInvariantViolation, padded.Length(), target)
		}

		return padded, nil
	}

	return geom.Path{}, fmt.Errorf("%w: every excursion side pattern is blocked", ErrLengthUnreachable)
}

// excursion is one planned compensating detour: arcs of angle alpha at
// the option bend radius, risers of length t, consuming footprint from
// the straight segment at segIdx.
type excursion struct {
	segIdx    int
	alpha     float64
	t         float64
	footprint float64
}

// planExcursions decides shapes and placements for the whole deficit.
// Greedy: each excursion absorbs as much of the remaining deficit as
// the height cap allows, the last one solves the residual exactly.
// Returns ErrLengthUnreachable when the straight footprint runs out
// first.
func planExcursions(path geom.Path, deficit float64, opts Options) ([]excursion, error) {
	r := opts.BendRadius
	hmax := opts.LoopHeightMax
	tol := opts.LengthTolerance
	minQuarter := 4 * r * (math.Pi/2 - 1)

	// Shallow-bump angle cap from the height budget:
	// h = 2r(1−cos α) ≤ hmax.
	alphaMax := math.Pi / 2
	if hmax < 2*r {
		alphaMax = math.Acos(1 - hmax/(2*r))
	}

	// Capacities: straight lengths in path order, consumed from the
	// front so excursions cluster just after the start port.
	caps := make([]float64, 0, len(path.Segments))
	idxs := make([]int, 0, len(path.Segments))
	for i, s := range path.Segments {
		if s.Kind == geom.StraightKind {
			caps = append(caps, s.Length)
			idxs = append(idxs, i)
		}
	}

	var plan []excursion
	rem := deficit
	for rem > tol {
		exc, added := nextExcursion(rem, r, hmax, alphaMax, minQuarter)

		placed := false
		for c := range caps {
			if caps[c] >= exc.footprint {
				exc.segIdx = idxs[c]
				caps[c] -= exc.footprint
				placed = true

				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("%w: deficit %.6g remains with no straight run ≥ %.6g",
				ErrLengthUnreachable, rem, exc.footprint)
		}

		plan = append(plan, exc)
		rem -= added
	}

	return plan, nil
}

// nextExcursion picks the shape absorbing as much of rem as the height
// cap permits: a quarter-turn excursion with riser when the budget
// allows, a shallow bump otherwise; either solves rem exactly when rem
// fits inside its range.
func nextExcursion(rem, r, hmax, alphaMax, minQuarter float64) (excursion, float64) {
	if hmax >= 2*r && rem >= minQuarter {
		t := (rem - minQuarter) / 2
		if tCap := hmax - 2*r; t > tCap {
			t = tCap
		}
		// α = π/2: risers are perpendicular, footprint is arcs only.
		return excursion{alpha: math.Pi / 2, t: t, footprint: 4 * r}, minQuarter + 2*t
	}

	maxAdd := 4 * r * (alphaMax - math.Sin(alphaMax))
	alpha := alphaMax
	added := maxAdd
	if rem < maxAdd {
		alpha = solveBumpAngle(rem, r, alphaMax)
		added = rem
	}

	return excursion{alpha: alpha, footprint: 4 * r * math.Sin(alpha)}, added
}

// solveBumpAngle bisects 4r(α − sin α) = want on (0, hi]. The function
// is strictly increasing, so the bracket is trivial.
func solveBumpAngle(want, r, hi float64) float64 {
	lo := 0.0
	for i := 0; i < 200 && hi-lo > 1e-15; i++ {
		mid := (lo + hi) / 2
		if 4*r*(mid-math.Sin(mid)) < want {
			lo = mid
		} else {
			hi = mid
		}
	}

	return hi
}

// applyPlan rebuilds the path with the planned excursions inserted at
// the front of their host straights, sides chosen by pattern.
func applyPlan(path geom.Path, plan []excursion, pattern func(int) float64, opts Options) geom.Path {
	byHost := make(map[int][]int, len(plan))
	for i := range plan {
		byHost[plan[i].segIdx] = append(byHost[plan[i].segIdx], i)
	}

	segs := make([]geom.Segment, 0, len(path.Segments)+7*len(plan))
	for i, s := range path.Segments {
		hosted, ok := byHost[i]
		if !ok {
			segs = append(segs, s)

			continue
		}
		remaining := s.Length
		for _, pi := range hosted {
			exc := plan[pi]
			segs = append(segs, excursionSegments(exc, pattern(pi), opts.BendRadius)...)
			remaining -= exc.footprint
		}
		if remaining > opts.PoseEpsilon {
			segs = append(segs, geom.Straight(remaining))
		}
	}

	return geom.NewPath(path.Start, segs...)
}

// excursionSegments materializes one excursion on the given side:
// jog out, jog back, returning to the host straight's axis and
// heading. Zero risers are elided.
func excursionSegments(exc excursion, side, r float64) []geom.Segment {
	segs := make([]geom.Segment, 0, 6)
	segs = append(segs, geom.Arc(r, side*exc.alpha))
	if exc.t > 0 {
		segs = append(segs, geom.Straight(exc.t))
	}
	segs = append(segs, geom.Arc(r, -side*exc.alpha), geom.Arc(r, -side*exc.alpha))
	if exc.t > 0 {
		segs = append(segs, geom.Straight(exc.t))
	}
	segs = append(segs, geom.Arc(r, side*exc.alpha))

	return segs
}

// sideSign maps a boolean side choice to ±1.
func sideSign(up bool) float64 {
	if up {
		return 1
	}

	return -1
}

func wrap(msg string) error {
	return fmt.Errorf("%w: %s", ErrBadOptions, msg)
}
