// Package delay defines options and sentinel errors for the
// length-matching subpackage of github.com/photonforge/waveroute.
package delay

import (
	"errors"

	"github.com/photonforge/waveroute/geom"
	"github.com/photonforge/waveroute/obstacle"
)

// Sentinel errors for length matching.
var (
	// ErrLengthUnreachable indicates the target exceeds what bounded
	// excursion insertion can add under the height cap and the
	// available straight footprint / obstacle constraints.
	ErrLengthUnreachable = errors.New("delay: target length unreachable under loop height and clearance constraints")

	// ErrBadTarget indicates a non-positive target length.
	ErrBadTarget = errors.New("delay: target length must be positive")

	// ErrBadOptions indicates an out-of-range option value.
	ErrBadOptions = errors.New("delay: invalid options")

	// ErrInvariantViolation indicates the padded path missed the target
	// despite a successful insertion plan. A defect, never an expected
	// runtime condition.
	ErrInvariantViolation = errors.New("delay: padded path violates its length contract")
)

// Options configures MatchLength.
//
// Fields:
//   - BendRadius      — radius for every excursion arc; must be > 0.
//   - LoopHeightMax   — ceiling on an excursion's lateral extent; must
//     be > 0.
//   - LengthTolerance — acceptable deviation from the target; must be > 0.
//   - ChordError      — arc flattening bound for obstacle validation;
//     must be > 0 when obstacles are supplied.
//   - ClearanceMargin — obstacle inflation distance; must be ≥ 0.
//   - PoseEpsilon     — geometric tolerance below which a residual
//     straight stub is dropped; must be > 0.
//   - Obstacles       — read-only set the padded path must still clear.
type Options struct {
	BendRadius      float64
	LoopHeightMax   float64
	LengthTolerance float64
	ChordError      float64
	ClearanceMargin float64
	PoseEpsilon     float64
	Obstacles       []obstacle.Obstacle
}

// DefaultOptions returns MatchLength defaults matching the engine
// configuration: 25 µm bends, 100 µm height cap, 1e-3 tolerance.
func DefaultOptions() Options {
	return Options{
		BendRadius:      25,
		LoopHeightMax:   100,
		LengthTolerance: 1e-3,
		ChordError:      geom.DefaultChordError,
		ClearanceMargin: 5,
		PoseEpsilon:     geom.DefaultPoseEpsilon,
	}
}

// validate checks option bounds; wrapped field context rides on
// ErrBadOptions.
func (o Options) validate() error {
	switch {
	case o.BendRadius <= 0:
		return wrap("BendRadius must be > 0")
	case o.LoopHeightMax <= 0:
		return wrap("LoopHeightMax must be > 0")
	case o.LengthTolerance <= 0:
		return wrap("LengthTolerance must be > 0")
	case o.ClearanceMargin < 0:
		return wrap("ClearanceMargin must be ≥ 0")
	case o.PoseEpsilon <= 0:
		return wrap("PoseEpsilon must be > 0")
	case len(o.Obstacles) > 0 && o.ChordError <= 0:
		return wrap("ChordError must be > 0 when obstacles are supplied")
	}

	return nil
}
