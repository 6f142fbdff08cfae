package route

import (
	"fmt"
	"math"

	"github.com/photonforge/waveroute/geom"
)

// candidate is one detour alternative under evaluation.
type candidate struct {
	path   geom.Path
	length float64
	offset float64 // corridor lateral offset in the start frame
}

// detour runs the bounded local search over offset waypoint pairs.
//
// For every obstacle in the request, a detour corridor is generated on
// each side of its blocking extent: a pair of waypoints flanking the
// obstacle footprint (in the start frame), displaced perpendicular to
// the extent by 1..DetourSteps multiples of the inflation margin
// beyond the obstacle bounds. Each candidate — start→w1, w1→w2,
// w2→end, all built by BuildDirect — is re-validated against every
// obstacle in the set.
//
// Selection among clearing candidates: lowest total length; ties
// within the length tolerance break to the smallest |lateral offset|,
// then to the positive (left-of-travel) side. The candidate set is
// finite, so the search always terminates; if it exhausts without a
// clearing candidate the route is blocked.
func detour(req RoutingRequest, cfg Config) (geom.Path, error) {
	inflate := req.Start.Width/2 + cfg.ClearanceMargin
	if inflate <= 0 {
		inflate = cfg.BendRadiusMin / 4 // degenerate zero-width, zero-clearance request
	}

	var best *candidate
	for i := range req.Obstacles {
		bx0, by0, bx1, by1 := frameBounds(req.Start, req.Obstacles[i].Vertices())
		wx0, wx1 := bx0-inflate, bx1+inflate

		for k := 1; k <= cfg.DetourSteps; k++ {
			for _, side := range []float64{1, -1} {
				y := by1 + float64(k)*inflate
				if side < 0 {
					y = by0 - float64(k)*inflate
				}
				cand, ok := tryCorridor(req, cfg, wx0, wx1, y)
				if !ok {
					continue
				}
				if better(cand, best, cfg.LengthTolerance) {
					c := cand
					best = &c
				}
			}
		}
	}

	if best == nil {
		return geom.Path{}, fmt.Errorf("request %s: %w", req.ID, ErrRouteBlocked)
	}

	return best.path, nil
}

// tryCorridor assembles and validates one candidate: legs to, along
// and from the corridor at lateral offset y spanning [wx0, wx1] in the
// start frame. Returns ok=false when any leg is infeasible or the
// assembled path fails clearance.
func tryCorridor(req RoutingRequest, cfg Config, wx0, wx1, y float64) (candidate, bool) {
	w := req.Start.Width
	w1 := req.Start.PoseFromFrame(geom.Pose{Position: geom.Point{X: wx0, Y: y}, Width: w})
	w2 := req.Start.PoseFromFrame(geom.Pose{Position: geom.Point{X: wx1, Y: y}, Width: w})

	leg1, err := BuildDirect(req.Start, w1, cfg)
	if err != nil {
		return candidate{}, false
	}
	leg2, err := BuildDirect(w1, w2, cfg)
	if err != nil {
		return candidate{}, false
	}
	leg3, err := BuildDirect(w2, req.End, cfg)
	if err != nil {
		return candidate{}, false
	}

	segs := make([]geom.Segment, 0, len(leg1.Segments)+len(leg2.Segments)+len(leg3.Segments))
	segs = append(segs, leg1.Segments...)
	segs = append(segs, leg2.Segments...)
	segs = append(segs, leg3.Segments...)
	p := geom.NewPath(req.Start, segs...)

	hit, err := firstHit(p, req.Obstacles, cfg)
	if err != nil || hit != nil {
		return candidate{}, false
	}

	return candidate{path: p, length: p.Length(), offset: y}, true
}

// better implements the deterministic candidate ordering: shorter
// wins; within tol, the smaller |offset| wins; still tied, the
// positive side wins.
func better(c candidate, than *candidate, tol float64) bool {
	if than == nil {
		return true
	}
	if c.length < than.length-tol {
		return true
	}
	if c.length > than.length+tol {
		return false
	}
	if math.Abs(c.offset) < math.Abs(than.offset)-tol {
		return true
	}
	if math.Abs(c.offset) > math.Abs(than.offset)+tol {
		return false
	}

	return c.offset > than.offset
}

// frameBounds projects obstacle vertices into the start frame and
// returns their bounding box there.
func frameBounds(frame geom.Pose, verts []geom.Point) (x0, y0, x1, y1 float64) {
	first := frame.ToFrame(verts[0])
	x0, y0, x1, y1 = first.X, first.Y, first.X, first.Y
	for _, v := range verts[1:] {
		p := frame.ToFrame(v)
		x0 = math.Min(x0, p.X)
		y0 = math.Min(y0, p.Y)
		x1 = math.Max(x1, p.X)
		y1 = math.Max(y1, p.Y)
	}

	return x0, y0, x1, y1
}
