// Package obstacle models already-placed chip structures as closed 2-D
// regions and provides the pure clearance predicate used by the
// router.
//
// An Obstacle is an immutable polygon (rectangles are a convenience
// constructor) plus an owner identifier for diagnostics. The predicate
//
//	obs.Intersects(polyline, width, clearance)
//
// reports whether a path centerline — flattened to a polyline and
// inflated by half the waveguide width plus the clearance margin —
// comes within reach of the region. It is a pure function: no shared
// state, no mutation, safe for concurrent use over a read-only
// obstacle set.
//
// The inflation is realized as a distance test (segment-to-edge
// distance ≤ inflation, or a vertex inside the polygon) rather than by
// offsetting the polygon outline; the two formulations are equivalent
// for clearance checking and the distance form needs no polygon
// buffering machinery.
//
// Complexity: Intersects is O(n·m) for n polyline points and m polygon
// vertices. Obstacle sets are small per routing call; no spatial index
// is required.
package obstacle
