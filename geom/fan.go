package geom

import "math"

// FanPoses places n port poses on a circular arc of the given radius
// centered at the origin, vertically pitched like the taper fans of a
// free-propagation-region coupler: port i sits at
// y = (i − (n−1)/2)·pitch, on the circle, heading radially outward.
// All poses carry the same waveguide width. Pitches that would place a
// pose beyond the circle's vertical extent are clamped to the pole.
//
// n ≤ 0 yields an empty slice; radius ≤ 0 yields poses on the y axis
// heading +x (degenerate but well-defined, useful in tests).
func FanPoses(n int, radius, pitch, width float64) []Pose {
	if n <= 0 {
		return nil
	}
	poses := make([]Pose, n)
	for i := 0; i < n; i++ {
		y := (float64(i) - float64(n-1)/2) * pitch
		if radius <= 0 {
			poses[i] = NewPose(0, y, 0, width)

			continue
		}
		sin := y / radius
		if sin > 1 {
			sin = 1
		} else if sin < -1 {
			sin = -1
		}
		theta := math.Asin(sin)
		poses[i] = NewPose(radius*math.Cos(theta), radius*math.Sin(theta), theta, width)
	}

	return poses
}
