// Package geom provides the planar geometry primitives of the routing
// engine: points, port poses, straight and arc segments, and paths
// built from them.
//
// What geom gives you:
//
//   - Point     — plain 2-D coordinate with vector arithmetic
//   - Pose      — position + heading + waveguide width; the immutable
//     state of a port or of a path cursor under construction
//   - Segment   — tagged variant: Straight{length} or Arc{radius, angle},
//     where the angle sign encodes the turn direction
//   - Path      — start Pose plus an ordered segment sequence; exact
//     cumulative length and a deterministically composed end Pose
//
// Core contract (round-trip consistency): for any Path p,
//
//	p.Reversed().End() == p.Start.Flipped()   within pose epsilon
//
// i.e. composing the reversed segment list from the (flipped) end pose
// walks back to the (flipped) start pose. Length is strictly additive:
// a straight contributes its literal length, an arc contributes
// radius·|angle|.
//
// All angles are radians, normalized to (-π, π]; all lengths share one
// consistent unit (µm throughout the photonic use case). Pose equality
// uses ≈1e-6 in length units and ≈1e-6 rad in heading by default.
//
// Complexity: every operation here is O(n) in the number of segments
// or O(1); Flatten is O(total sampled points).
package geom
