package geom_test

import (
	"math"
	"testing"

	"github.com/photonforge/waveroute/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = geom.DefaultPoseEpsilon

// TestNormalizeAngle verifies mapping onto (-π, π], including the
// boundary convention that +π is canonical and −π is not.
func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, geom.NormalizeAngle(2*math.Pi), eps)
	assert.InDelta(t, math.Pi, geom.NormalizeAngle(math.Pi), eps)
	assert.InDelta(t, math.Pi, geom.NormalizeAngle(-math.Pi), eps)
	assert.InDelta(t, -math.Pi/2, geom.NormalizeAngle(3*math.Pi/2), eps)
	assert.InDelta(t, math.Pi/2, geom.NormalizeAngle(-3*math.Pi/2), eps)
}

// TestStraightApply checks that a straight advances the position along
// the heading and leaves the heading untouched.
func TestStraightApply(t *testing.T) {
	p := geom.NewPose(1, 2, math.Pi/2, 0.5)
	q := geom.Straight(10).Apply(p)

	assert.InDelta(t, 1.0, q.Position.X, eps)
	assert.InDelta(t, 12.0, q.Position.Y, eps)
	assert.InDelta(t, math.Pi/2, q.Heading, eps)
	assert.Equal(t, 0.5, q.Width, "width must ride along unchanged")
}

// TestArcApply_QuarterLeft checks a left quarter turn from the origin:
// heading east, radius R, ends at (R, R) heading north.
func TestArcApply_QuarterLeft(t *testing.T) {
	p := geom.NewPose(0, 0, 0, 0.5)
	q := geom.Arc(25, math.Pi/2).Apply(p)

	assert.InDelta(t, 25.0, q.Position.X, eps)
	assert.InDelta(t, 25.0, q.Position.Y, eps)
	assert.InDelta(t, math.Pi/2, q.Heading, eps)
}

// TestArcApply_QuarterRight checks the mirrored right quarter turn:
// ends at (R, −R) heading south.
func TestArcApply_QuarterRight(t *testing.T) {
	p := geom.NewPose(0, 0, 0, 0.5)
	q := geom.Arc(25, -math.Pi/2).Apply(p)

	assert.InDelta(t, 25.0, q.Position.X, eps)
	assert.InDelta(t, -25.0, q.Position.Y, eps)
	assert.InDelta(t, -math.Pi/2, q.Heading, eps)
}

// TestSegmentValidate covers the structural invariants of both
// segment variants.
func TestSegmentValidate(t *testing.T) {
	assert.NoError(t, geom.Straight(0).Validate())
	assert.ErrorIs(t, geom.Straight(-1).Validate(), geom.ErrNegativeLength)
	assert.ErrorIs(t, geom.Arc(0, 1).Validate(), geom.ErrNonPositiveRadius)
	assert.ErrorIs(t, geom.Arc(-5, 1).Validate(), geom.ErrNonPositiveRadius)
	assert.ErrorIs(t, geom.Arc(5, 0).Validate(), geom.ErrZeroAngle)
	assert.NoError(t, geom.Arc(5, -0.3).Validate())
}

// TestPathLengthAdditivity verifies length = Σ segment lengths with
// arcs contributing radius·|angle|.
func TestPathLengthAdditivity(t *testing.T) {
	p := geom.NewPath(geom.NewPose(0, 0, 0, 0.5),
		geom.Straight(100),
		geom.Arc(25, math.Pi/2),
		geom.Straight(40),
		geom.Arc(25, -math.Pi),
	)

	want := 100 + 25*math.Pi/2 + 40 + 25*math.Pi
	assert.InDelta(t, want, p.Length(), 1e-12)
}

// TestPathRoundTrip verifies the reversal contract on a path mixing
// straights and arcs of both turn signs: the reversed path starts at
// the flipped end pose and walks back to the flipped start pose.
func TestPathRoundTrip(t *testing.T) {
	start := geom.NewPose(3, -7, math.Pi/3, 0.5)
	p := geom.NewPath(start,
		geom.Straight(12),
		geom.Arc(25, math.Pi/2),
		geom.Straight(5),
		geom.Arc(30, -1.1),
		geom.Straight(8),
	)

	rev := p.Reversed()
	require.True(t, rev.Start.AlmostEqual(p.End().Flipped(), eps))
	assert.True(t, rev.End().AlmostEqual(start.Flipped(), eps),
		"reversed traversal must land on the flipped start pose")
	assert.InDelta(t, p.Length(), rev.Length(), 1e-12,
		"reversal must preserve length exactly")
}

// TestPathCloneIndependence ensures mutating a clone's segments never
// reaches back into the original.
func TestPathCloneIndependence(t *testing.T) {
	p := geom.NewPath(geom.NewPose(0, 0, 0, 0.5), geom.Straight(10))
	c := p.Clone()
	c.Segments[0].Length = 999

	assert.Equal(t, 10.0, p.Segments[0].Length)
}

// TestPathTranslated verifies rigid translation: identical segments,
// start and end both shifted by exactly the translation vector.
func TestPathTranslated(t *testing.T) {
	p := geom.NewPath(geom.NewPose(1, 1, math.Pi/4, 0.5),
		geom.Straight(10), geom.Arc(25, -math.Pi/2))
	d := geom.Point{X: 200, Y: -50}

	q := p.Translated(d)
	require.Equal(t, p.Segments, q.Segments, "segment sequence must be identical")
	assert.Equal(t, p.Start.Position.Add(d), q.Start.Position)

	pe, qe := p.End(), q.End()
	assert.Equal(t, pe.Position.X+d.X, qe.Position.X, "end X must shift exactly")
	assert.Equal(t, pe.Position.Y+d.Y, qe.Position.Y, "end Y must shift exactly")
	assert.Equal(t, pe.Heading, qe.Heading)
}

// TestPathTranslated_NonRoundCoordinates pins the bitwise end-pose
// guarantee on coordinates where re-accumulating the transform chain
// from the shifted start would drift by an ulp.
func TestPathTranslated_NonRoundCoordinates(t *testing.T) {
	p := geom.NewPath(geom.NewPose(0.1, 0.2, 0.7, 0.5),
		geom.Straight(12.3),
		geom.Arc(25, 1.1),
		geom.Straight(4.56),
		geom.Arc(30.5, -0.37),
	)
	d := geom.Point{X: 1000.1, Y: -7.7}

	q := p.Translated(d)
	assert.Equal(t, p.End().Position.Add(d), q.End().Position,
		"translated end position must match bitwise")
	assert.Equal(t, p.End().Heading, q.End().Heading)

	// A second hop composes exactly as well.
	r := q.Translated(geom.Point{X: -0.3, Y: 19.17})
	assert.Equal(t, q.End().Position.Add(geom.Point{X: -0.3, Y: 19.17}), r.End().Position)
}

// TestFlattenSagittaBound samples a quarter arc and checks that every
// polyline vertex sits on the circle and that the chord deviation
// stays below the requested tolerance.
func TestFlattenSagittaBound(t *testing.T) {
	const r, tol = 25.0, 0.01
	p := geom.NewPath(geom.NewPose(0, 0, 0, 0.5), geom.Arc(r, math.Pi/2))

	pts, err := p.Flatten(tol)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(pts), 3)

	center := geom.Point{X: 0, Y: r}
	for _, pt := range pts {
		assert.InDelta(t, r, pt.Dist(center), eps, "vertices must lie on the arc")
	}
	for i := 1; i < len(pts); i++ {
		mid := geom.Point{X: (pts[i-1].X + pts[i].X) / 2, Y: (pts[i-1].Y + pts[i].Y) / 2}
		sagitta := r - mid.Dist(center)
		assert.LessOrEqual(t, sagitta, tol+eps, "chord sagitta must respect the bound")
	}
}

// TestFlattenErrors covers the two flattening failure modes.
func TestFlattenErrors(t *testing.T) {
	p := geom.NewPath(geom.NewPose(0, 0, 0, 0.5), geom.Straight(1))

	_, err := p.Flatten(0)
	assert.ErrorIs(t, err, geom.ErrBadChordError)

	empty := geom.NewPath(geom.NewPose(0, 0, 0, 0.5))
	_, err = empty.Flatten(0.01)
	assert.ErrorIs(t, err, geom.ErrEmptyPath)
}

// TestPoseFrames verifies ToFrame/FromFrame and the pose variants are
// mutual inverses under an arbitrary frame.
func TestPoseFrames(t *testing.T) {
	frame := geom.NewPose(10, -4, 2.1, 0.5)
	pt := geom.Point{X: 3.7, Y: -8.2}

	back := frame.FromFrame(frame.ToFrame(pt))
	assert.InDelta(t, pt.X, back.X, eps)
	assert.InDelta(t, pt.Y, back.Y, eps)

	q := geom.NewPose(-2, 5, -1.3, 0.6)
	rt := frame.PoseFromFrame(frame.PoseToFrame(q))
	assert.True(t, rt.AlmostEqual(q, eps))
	assert.Equal(t, q.Width, rt.Width)
}

// TestPoseSnapped checks grid rounding and the non-positive-grid
// passthrough.
func TestPoseSnapped(t *testing.T) {
	p := geom.NewPose(1.2345678, -0.0004, 0, 0.5)

	s := p.Snapped(0.001)
	assert.InDelta(t, 1.235, s.Position.X, 1e-12)
	assert.InDelta(t, 0.0, s.Position.Y, 1e-12)

	assert.Equal(t, p, p.Snapped(0), "grid ≤ 0 must be a no-op")
}

// TestMinArcRadius checks the bend-radius floor helper, including the
// arc-free +Inf case.
func TestMinArcRadius(t *testing.T) {
	p := geom.NewPath(geom.NewPose(0, 0, 0, 0.5),
		geom.Straight(5), geom.Arc(30, 1), geom.Arc(25, -0.4))
	assert.Equal(t, 25.0, p.MinArcRadius())

	flat := geom.NewPath(geom.NewPose(0, 0, 0, 0.5), geom.Straight(5))
	assert.True(t, math.IsInf(flat.MinArcRadius(), 1))
}

// TestFanPoses verifies fan placement sits on the circle at the
// requested pitch with radial headings.
func TestFanPoses(t *testing.T) {
	const r, pitch = 130.0, 10.0
	poses := geom.FanPoses(3, r, pitch, 0.5)
	require.Len(t, poses, 3)

	origin := geom.Point{}
	for _, p := range poses {
		assert.InDelta(t, r, p.Position.Dist(origin), eps, "poses must lie on the circle")
		assert.InDelta(t, math.Asin(p.Position.Y/r), p.Heading, eps, "headings must be radial")
	}
	assert.InDelta(t, -pitch, poses[0].Position.Y, eps)
	assert.InDelta(t, 0, poses[1].Position.Y, eps)
	assert.InDelta(t, pitch, poses[2].Position.Y, eps)

	assert.Nil(t, geom.FanPoses(0, r, pitch, 0.5))
}
