package route

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/photonforge/waveroute/delay"
	"github.com/photonforge/waveroute/geom"
	"github.com/photonforge/waveroute/obstacle"
)

// Route produces a validated path for one routing request:
//
//  1. attempt the direct maneuver (BuildDirect); accept it when it
//     clears every obstacle;
//  2. otherwise run the bounded detour search (see package doc) and
//     keep the lowest-length clearing candidate;
//  3. when the request carries a target length, hand the path to the
//     delay package for compensating-excursion insertion;
//  4. verify the correctness contract (end-pose match, bend-radius
//     floor, length tolerance) before returning.
//
// Failures are explicit and distinguishable: ErrNoFeasibleGeometry,
// ErrRouteBlocked, delay.ErrLengthUnreachable, ErrInvariantViolation.
// No partial path is ever returned. The request ID (auto-filled with a
// UUID when empty) is carried in every wrapped failure for
// diagnostics.
func Route(req RoutingRequest, cfg Config) (geom.Path, error) {
	if err := cfg.Validate(); err != nil {
		return geom.Path{}, err
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	direct, err := BuildDirect(req.Start, req.End, cfg)
	if err != nil {
		return geom.Path{}, fmt.Errorf("request %s: %w", req.ID, err)
	}

	p, err := clearOrDetour(req, direct, cfg)
	if err != nil {
		return geom.Path{}, err
	}

	if req.TargetLength > 0 {
		hmax := cfg.LoopHeightMax
		if req.LoopHeightMax > 0 {
			hmax = req.LoopHeightMax
		}
		p, err = delay.MatchLength(p, req.TargetLength, delay.Options{
			BendRadius:      cfg.BendRadiusMin,
			LoopHeightMax:   hmax,
			LengthTolerance: cfg.LengthTolerance,
			ChordError:      cfg.ChordError,
			ClearanceMargin: cfg.ClearanceMargin,
			PoseEpsilon:     cfg.PoseEpsilon,
			Obstacles:       req.Obstacles,
		})
		if err != nil {
			return geom.Path{}, fmt.Errorf("request %s: %w", req.ID, err)
		}
	}

	if err := checkContract(p, req, cfg); err != nil {
		return geom.Path{}, err
	}

	return p, nil
}

// Batch routes a list of independent requests against their own
// obstacle sets, sequentially and in order. Callers that prefer
// parallelism may fan the same calls out across goroutines, since the
// engine shares no mutable state between calls.
func Batch(reqs []RoutingRequest, cfg Config) []Result {
	out := make([]Result, len(reqs))
	for i, req := range reqs {
		if req.ID == "" {
			req.ID = uuid.NewString()
		}
		p, err := Route(req, cfg)
		out[i] = Result{ID: req.ID, Path: p, Err: err}
	}

	return out
}

// clearOrDetour accepts the direct path when it clears all obstacles,
// otherwise delegates to the detour search.
func clearOrDetour(req RoutingRequest, direct geom.Path, cfg Config) (geom.Path, error) {
	hit, err := firstHit(direct, req.Obstacles, cfg)
	if err != nil {
		return geom.Path{}, fmt.Errorf("request %s: %w", req.ID, err)
	}
	if hit == nil {
		return direct, nil
	}

	return detour(req, cfg)
}

// firstHit flattens the path and returns the first obstacle its
// inflated polyline touches, or nil when the path is clear. A
// zero-segment path (coincident ports) degenerates to its start point.
func firstHit(p geom.Path, obstacles []obstacle.Obstacle, cfg Config) (*obstacle.Obstacle, error) {
	if len(obstacles) == 0 {
		return nil, nil
	}
	pts := []geom.Point{p.Start.Position}
	if len(p.Segments) > 0 {
		var err error
		pts, err = p.Flatten(cfg.ChordError)
		if err != nil {
			return nil, err
		}
	}

	return obstacle.AnyIntersects(obstacles, pts, p.Start.Width, cfg.ClearanceMargin)
}

// checkContract enforces the all-or-nothing correctness contract on a
// path about to be returned to the caller.
func checkContract(p geom.Path, req RoutingRequest, cfg Config) error {
	if !p.End().AlmostEqual(req.End, cfg.PoseEpsilon) {
		return fmt.Errorf("request %s: %w: end pose off target", req.ID, ErrInvariantViolation)
	}
	if r := p.MinArcRadius(); r < cfg.BendRadiusMin-cfg.PoseEpsilon {
		return fmt.Errorf("request %s: %w: arc radius %.6g below floor %.6g",
			req.ID, ErrInvariantViolation, r, cfg.BendRadiusMin)
	}
	if req.TargetLength > 0 && math.Abs(p.Length()-req.TargetLength) > cfg.LengthTolerance {
		return fmt.Errorf("request %s: %w: length %.6g misses target %.6g",
			req.ID, ErrInvariantViolation, p.Length(), req.TargetLength)
	}

	return nil
}
