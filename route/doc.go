// Package route connects two port poses with a geometrically valid
// waveguide path: direct construction when the poses admit a single
// maneuver, and a bounded obstacle-avoiding detour search otherwise.
//
// Direct construction (BuildDirect) covers, in order of preference
// (fewest arcs first, then shortest total length):
//
//   - a pure straight, when the target lies dead ahead at the same heading
//   - straight – arc – straight, for any non-zero heading change short
//     of a half turn
//   - an S-bend (two opposed arcs, with straights as needed), for a
//     lateral offset at the same heading
//   - a U-turn (two same-sense quarter arcs around a straight riser),
//     for opposing headings
//
// Every arc is constructed at exactly the configured minimum bend
// radius: the radius floor is honored by construction and the shortest
// arcs result. When the offset between the poses cannot be spanned
// under that radius — e.g. a lateral offset too small to turn and
// return — BuildDirect fails with ErrNoFeasibleGeometry rather than
// approximating.
//
// Routing (Route) first attempts the direct path and accepts it if it
// clears every obstacle. Otherwise it runs a bounded local search:
// detour waypoint pairs flanking each blocking obstacle, displaced
// perpendicular to the blocking extent at offsets derived from the
// obstacle bounds plus the inflation margin. Each candidate is
// re-validated against every obstacle; the lowest-length clearing
// candidate wins. Ties break deterministically: smallest lateral
// offset first, then the positive (left-of-travel) side. The candidate
// set is finite, so the search always terminates; exhaustion is
// reported as ErrRouteBlocked, never silently ignored.
//
// The engine is stateless: obstacles are read-only inputs, every call
// is independent, and concurrent calls over a shared obstacle set are
// safe.
//
// Complexity: BuildDirect is O(1); Route is O(k·n·m) for k candidate
// detours, n flattened polyline points and m obstacle vertices.
package route
