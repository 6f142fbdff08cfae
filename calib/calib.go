// Package calib replicates fully routed sub-layouts for calibration
// structures: a reference device and its duplicate must be
// geometrically congruent — identical segment sequences, not merely
// equal lengths — so that a measured difference isolates the effect
// under test instead of a layout artifact.
//
// Duplicate applies a rigid translation only. Segments are relative (a
// straight's length, an arc's radius and angle carry no absolute
// coordinates), so the sequence is copied bit-for-bit; the start and
// end poses are both shifted by exactly the translation vector, the
// end pose carried through geom.Path.Translated rather than re-derived
// from the shifted start. The congruence invariant therefore holds by
// construction, not within a tolerance.
package calib

import "github.com/photonforge/waveroute/geom"

// Duplicate returns congruent copies of the given paths, each rigidly
// shifted by translation. For every returned path:
//
//   - the segment sequence equals the original's exactly (same kinds,
//     lengths, radii and angles, bit for bit);
//   - the start and end poses equal the originals translated by
//     exactly the translation vector;
//   - the copy owns its segment slice: mutating one never affects the
//     other.
//
// Complexity: O(total segments).
func Duplicate(paths []geom.Path, translation geom.Point) []geom.Path {
	out := make([]geom.Path, len(paths))
	for i, p := range paths {
		out[i] = p.Translated(translation)
	}

	return out
}

// Congruent reports whether two paths share an identical segment
// sequence — the calibration invariant, checked exactly with no
// epsilon. Start poses are not compared: congruence is about internal
// geometry, placement is the translation's business.
func Congruent(a, b geom.Path) bool {
	if len(a.Segments) != len(b.Segments) {
		return false
	}
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			return false
		}
	}

	return true
}
