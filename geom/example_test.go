// File: geom/example_test.go
package geom_test

import (
	"fmt"
	"math"

	"github.com/photonforge/waveroute/geom"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Path composition
////////////////////////////////////////////////////////////////////////////////

// ExamplePath demonstrates building a small waveguide path — straight,
// left quarter bend, straight — and reading off its exact length and
// composed end pose.
// Scenario:
//
//   - Start at the origin heading east, waveguide width 0.5 µm
//   - 100 µm straight, 25 µm-radius quarter turn, 50 µm straight
//   - Expect the end at (125, 75) heading north, length 150 + 25·π/2
//
// Complexity: O(n) over the segment count.
func ExamplePath() {
	p := geom.NewPath(geom.NewPose(0, 0, 0, 0.5),
		geom.Straight(100),
		geom.Arc(25, math.Pi/2),
		geom.Straight(50),
	)

	end := p.End()
	fmt.Printf("end: (%.1f, %.1f) heading %.4f rad\n", end.Position.X, end.Position.Y, end.Heading)
	fmt.Printf("length: %.4f\n", p.Length())

	// Output:
	// end: (125.0, 75.0) heading 1.5708 rad
	// length: 189.2699
}
