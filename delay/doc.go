// Package delay pads a routed path to a precise target length by
// inserting compensating excursions — the calibrated delay arms of an
// interferometric measurement depend on hitting the target within
// tolerance.
//
// MatchLength never shortens: a path already at or beyond the target
// is returned unchanged. For a deficit d it synthesizes perpendicular
// excursions inserted into straight runs of the path, starting just
// after the path leaves its start port.
//
// Excursion algebra (R = bend radius, all four return arcs included):
//
//	shape: Arc(+α) Straight(t) Arc(−α) | Arc(−α) Straight(t) Arc(+α)
//	height:    h = 2R(1−cos α) + t·sin α      (≤ loop height max)
//	footprint: F = 4R·sin α + 2t·cos α        (straight run consumed)
//	added:     A = 4R(α − sin α) + 2t(1 − cos α)
//
// The added length A counts the complete excursion — outbound legs,
// top and return legs — against the consumed footprint. Omitting the
// return segments from this accounting is precisely the defect class
// this package exists to prevent (historically observed as systematic
// path-length errors in fabricated delay arms).
//
// Two operating points of the shape family cover every deficit:
//
//   - quarter-turn excursion (α = π/2): A = 4R(π/2−1) + 2t, raised by
//     growing the riser t up to the height cap; the workhorse for
//     large deficits;
//   - shallow bump (t = 0, α < π/2): A = 4R(α − sin α) → 0 as α → 0,
//     solved by bisection; absorbs any residual below the quarter-turn
//     minimum exactly.
//
// Deficits beyond one excursion's capacity stack as a serpentine,
// alternating sides to bound the lateral envelope. When obstacles
// block the alternating pattern the inserter tries the remaining
// deterministic side patterns (start-down, all-up, all-down) before
// failing. ErrLengthUnreachable is returned when the deficit exceeds
// what the height cap and the available straight footprint can absorb.
//
// Complexity: O(e·(n + c)) for e excursions, n segments and c the
// obstacle-validation cost; the bisection solve is O(iterations) with
// a fixed cap.
package delay
