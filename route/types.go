// Package route defines configuration, request types and sentinel
// errors for the routing subpackage of
// github.com/photonforge/waveroute.
package route

import (
	"errors"
	"fmt"

	"github.com/photonforge/waveroute/geom"
	"github.com/photonforge/waveroute/obstacle"
)

// Sentinel errors for routing operations.
var (
	// ErrNoFeasibleGeometry indicates the start and end poses cannot be
	// connected under the minimum bend radius alone, before obstacles
	// are even considered.
	ErrNoFeasibleGeometry = errors.New("route: no feasible geometry under bend radius constraint")

	// ErrRouteBlocked indicates that no candidate within the bounded
	// detour search clears all obstacles.
	ErrRouteBlocked = errors.New("route: no obstacle-clearing path within bounded detour search")

	// ErrInvariantViolation indicates an internally produced path failed
	// its end-pose or length contract. A defect, not a runtime
	// condition to recover from.
	ErrInvariantViolation = errors.New("route: produced path violates its correctness contract")

	// ErrBadConfig indicates an out-of-range configuration value.
	ErrBadConfig = errors.New("route: invalid configuration")

	// ErrWidthMismatch indicates start and end poses with different
	// waveguide widths; the engine routes constant-width paths only.
	ErrWidthMismatch = errors.New("route: start and end waveguide widths differ")
)

// Config is the parameter surface the engine consumes. All lengths
// share the request's length unit (µm in the photonic use case).
type Config struct {
	// BendRadiusMin is the geometric floor for every arc ever
	// constructed. Must be > 0.
	BendRadiusMin float64

	// ClearanceMargin is the minimum required gap between routed
	// geometry and any obstacle. Must be ≥ 0.
	ClearanceMargin float64

	// LoopHeightMax caps the lateral extent of compensating excursions
	// inserted by length matching. Must be > 0 when a target length is
	// requested.
	LoopHeightMax float64

	// LengthTolerance is the acceptable deviation from a target length.
	// Must be > 0.
	LengthTolerance float64

	// PoseEpsilon is the positional/angular tolerance for pose equality.
	// Must be > 0.
	PoseEpsilon float64

	// ChordError bounds the sagitta when arcs are flattened for
	// obstacle testing. Must be > 0.
	ChordError float64

	// DetourSteps bounds the detour search: per blocking obstacle and
	// side, offsets at 1..DetourSteps inflation multiples beyond the
	// blocking extent are tried. Must be ≥ 1.
	DetourSteps int
}

// DefaultConfig returns the engine defaults for a silicon-photonic
// layout in µm:
//   - BendRadiusMin:   25 (fabrication/optical-loss floor)
//   - ClearanceMargin: 5
//   - LoopHeightMax:   100
//   - LengthTolerance: 1e-3
//   - PoseEpsilon:     geom.DefaultPoseEpsilon
//   - ChordError:      geom.DefaultChordError
//   - DetourSteps:     4
func DefaultConfig() Config {
	return Config{
		BendRadiusMin:   25,
		ClearanceMargin: 5,
		LoopHeightMax:   100,
		LengthTolerance: 1e-3,
		PoseEpsilon:     geom.DefaultPoseEpsilon,
		ChordError:      geom.DefaultChordError,
		DetourSteps:     4,
	}
}

// Validate checks every configuration bound. Returns ErrBadConfig
// (wrapped with the offending field) on the first violation.
func (c Config) Validate() error {
	switch {
	case c.BendRadiusMin <= 0:
		return wrapConfig("BendRadiusMin must be > 0")
	case c.ClearanceMargin < 0:
		return wrapConfig("ClearanceMargin must be ≥ 0")
	case c.LengthTolerance <= 0:
		return wrapConfig("LengthTolerance must be > 0")
	case c.PoseEpsilon <= 0:
		return wrapConfig("PoseEpsilon must be > 0")
	case c.ChordError <= 0:
		return wrapConfig("ChordError must be > 0")
	case c.DetourSteps < 1:
		return wrapConfig("DetourSteps must be ≥ 1")
	}

	return nil
}

// RoutingRequest describes one routing call. Consumed once; produces
// one path or one failure. The obstacle set is read-only input and is
// never mutated by the router.
type RoutingRequest struct {
	// ID identifies the request in diagnostics. Auto-filled with a
	// fresh UUID when empty.
	ID string

	// Start and End are the poses the path must connect. End carries
	// the travel heading of the arriving path; flip a port's outward
	// facing with geom.Pose.Flipped before building the request.
	Start, End geom.Pose

	// Obstacles are the already-placed structures the path must clear.
	Obstacles []obstacle.Obstacle

	// TargetLength, when > 0, requests delay matching: the returned
	// path's length must land within LengthTolerance of this value.
	TargetLength float64

	// LoopHeightMax, when > 0, overrides Config.LoopHeightMax for this
	// request's compensating excursions.
	LoopHeightMax float64
}

// Result pairs a routed path with the failure that prevented it, for
// batch routing. Exactly one of Path/Err is meaningful.
type Result struct {
	ID   string
	Path geom.Path
	Err  error
}

func wrapConfig(msg string) error {
	return fmt.Errorf("%w: %s", ErrBadConfig, msg)
}
