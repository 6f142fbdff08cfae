package obstacle_test

import (
	"testing"

	"github.com/photonforge/waveroute/geom"
	"github.com/photonforge/waveroute/obstacle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rect is a test helper building a rectangle that must not fail.
func rect(t *testing.T, minX, minY, maxX, maxY float64, owner string) obstacle.Obstacle {
	t.Helper()
	o, err := obstacle.NewRect(geom.Point{X: minX, Y: minY}, geom.Point{X: maxX, Y: maxY}, owner)
	require.NoError(t, err)

	return o
}

// TestConstruction covers polygon/rectangle validation and the
// deep-copy immutability guarantee.
func TestConstruction(t *testing.T) {
	_, err := obstacle.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, "p")
	assert.ErrorIs(t, err, obstacle.ErrTooFewVertices)

	_, err = obstacle.NewRect(geom.Point{X: 1, Y: 1}, geom.Point{X: 1, Y: 5}, "r")
	assert.ErrorIs(t, err, obstacle.ErrEmptyRect)

	src := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}
	o, err := obstacle.NewPolygon(src, "tri")
	require.NoError(t, err)
	src[0].X = 99
	assert.Equal(t, 0.0, o.Vertices()[0].X, "construction must deep-copy vertices")
	assert.Equal(t, "tri", o.Owner())
}

// TestBounds verifies the axis-aligned bounding box of a polygon.
func TestBounds(t *testing.T) {
	o, err := obstacle.NewPolygon([]geom.Point{
		{X: -3, Y: 2}, {X: 5, Y: -1}, {X: 1, Y: 7},
	}, "tri")
	require.NoError(t, err)

	min, max := o.Bounds()
	assert.Equal(t, geom.Point{X: -3, Y: -1}, min)
	assert.Equal(t, geom.Point{X: 5, Y: 7}, max)
}

// TestIntersects_Crossing checks a polyline cutting straight through a
// rectangle.
func TestIntersects_Crossing(t *testing.T) {
	o := rect(t, 10, -5, 20, 5, "block")
	line := []geom.Point{{X: 0, Y: 0}, {X: 30, Y: 0}}

	hit, err := o.Intersects(line, 0.5, 1.0)
	require.NoError(t, err)
	assert.True(t, hit)
}

// TestIntersects_ClearanceMargin checks that a polyline passing just
// outside the region still hits when the inflation reaches it, and
// clears once the gap exceeds width/2 + clearance.
func TestIntersects_ClearanceMargin(t *testing.T) {
	o := rect(t, 0, 0, 10, 10, "block")

	// Gap of 2 below the region; inflation 0.5/2 + 1.0 = 1.25 < 2.
	line := []geom.Point{{X: -5, Y: -2}, {X: 15, Y: -2}}
	hit, err := o.Intersects(line, 0.5, 1.0)
	require.NoError(t, err)
	assert.False(t, hit, "gap 2 must clear inflation 1.25")

	// Same line, clearance raised so inflation 0.25 + 2.0 > 2.
	hit, err = o.Intersects(line, 0.5, 2.0)
	require.NoError(t, err)
	assert.True(t, hit, "gap 2 must hit inflation 2.25")
}

// TestIntersects_VertexInside checks the point-in-polygon branch.
func TestIntersects_VertexInside(t *testing.T) {
	o := rect(t, 0, 0, 10, 10, "block")
	hit, err := o.Intersects([]geom.Point{{X: 5, Y: 5}}, 0, 0)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = o.Intersects([]geom.Point{{X: 50, Y: 50}}, 0, 0)
	require.NoError(t, err)
	assert.False(t, hit)
}

// TestIntersects_NegativeInflation covers the validation branch.
func TestIntersects_NegativeInflation(t *testing.T) {
	o := rect(t, 0, 0, 1, 1, "block")
	_, err := o.Intersects([]geom.Point{{X: 5, Y: 5}}, -1, 0)
	assert.ErrorIs(t, err, obstacle.ErrNegativeInflation)

	_, err = o.Intersects([]geom.Point{{X: 5, Y: 5}}, 0, -0.1)
	assert.ErrorIs(t, err, obstacle.ErrNegativeInflation)
}

// TestAnyIntersects verifies first-hit reporting over a set.
func TestAnyIntersects(t *testing.T) {
	clearObs := rect(t, 100, 100, 110, 110, "far")
	blocking := rect(t, 2, -1, 4, 1, "near")
	line := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}

	hit, err := obstacle.AnyIntersects([]obstacle.Obstacle{clearObs, blocking}, line, 0.5, 0.5)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "near", hit.Owner())

	hit, err = obstacle.AnyIntersects([]obstacle.Obstacle{clearObs}, line, 0.5, 0.5)
	require.NoError(t, err)
	assert.Nil(t, hit)
}

// TestIntersects_PolygonRegion checks the predicate against a
// non-rectangular region: a triangle with a polyline skimming one edge.
func TestIntersects_PolygonRegion(t *testing.T) {
	o, err := obstacle.NewPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8},
	}, "tri")
	require.NoError(t, err)

	// Horizontal line 1.0 below the triangle base.
	line := []geom.Point{{X: -2, Y: -1}, {X: 12, Y: -1}}

	hit, err := o.Intersects(line, 0.5, 0.25)
	require.NoError(t, err)
	assert.False(t, hit, "inflation 0.5 must clear gap 1.0")

	hit, err = o.Intersects(line, 0.5, 1.0)
	require.NoError(t, err)
	assert.True(t, hit, "inflation 1.25 must reach gap 1.0")
}
