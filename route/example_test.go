package route_test

import (
	"fmt"
	"math"

	"github.com/photonforge/waveroute/geom"
	"github.com/photonforge/waveroute/route"
)

// ExampleRoute routes between two ports a quarter turn apart and
// reports the resulting centerline length.
func ExampleRoute() {
	cfg := route.DefaultConfig()
	req := route.RoutingRequest{
		ID:    "demo",
		Start: geom.NewPose(0, 0, 0, 0.5),
		End:   geom.NewPose(50, 50, math.Pi/2, 0.5),
	}

	p, err := route.Route(req, cfg)
	if err != nil {
		fmt.Println("route failed:", err)

		return
	}

	fmt.Printf("segments: %d\n", len(p.Segments))
	fmt.Printf("length:   %.4f\n", p.Length())
	// Output:
	// segments: 3
	// length:   89.2699
}
