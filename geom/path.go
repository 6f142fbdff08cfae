package geom

import "math"

// Path is an ordered sequence of segments anchored at a start pose.
// The end pose is derived by composing segment transforms in order;
// the total length is the sum of segment lengths. A Path is a value:
// methods never mutate the receiver, and Clone guarantees segment
// slice independence for callers that hold copies.
type Path struct {
	Start    Pose
	Segments []Segment

	// end caches an end pose known exactly by construction (set by
	// Translated). Recomputing the pose from a shifted start would
	// reorder the float additions and cost an ulp.
	end    Pose
	endSet bool
}

// NewPath builds a Path from a start pose and a segment sequence.
// The segment slice is copied so later caller mutations cannot reach
// into the path.
func NewPath(start Pose, segs ...Segment) Path {
	owned := make([]Segment, len(segs))
	copy(owned, segs)

	return Path{Start: start, Segments: owned}
}

// Validate checks every segment's structural invariants.
// Returns the first violation encountered, or nil.
func (p Path) Validate() error {
	for _, s := range p.Segments {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Length returns the exact cumulative path length: the sum over all
// segments of the straight length or radius·|angle| for arcs.
// Complexity: O(n).
func (p Path) Length() float64 {
	var total float64
	for _, s := range p.Segments {
		total += s.Len()
	}

	return total
}

// End returns the pose reached by composing every segment transform in
// order from the start pose. Paths built by Translated return their
// cached end pose instead, preserving bit-exact translation.
// Complexity: O(n).
func (p Path) End() Pose {
	if p.endSet {
		return p.end
	}
	cur := p.Start
	for _, s := range p.Segments {
		cur = s.Apply(cur)
	}

	return cur
}

// Reversed returns the path as traversed from the end back to the
// start: its start pose is End().Flipped(), its segments are the
// reverse sequence with each segment individually reversed. The
// round-trip contract holds: p.Reversed().End() equals
// p.Start.Flipped() within pose epsilon.
func (p Path) Reversed() Path {
	segs := make([]Segment, len(p.Segments))
	for i, s := range p.Segments {
		segs[len(p.Segments)-1-i] = s.Reversed()
	}

	return Path{Start: p.End().Flipped(), Segments: segs}
}

// Clone returns a deep copy of the path. The segment slice is fresh;
// mutating the clone never affects the original.
func (p Path) Clone() Path {
	segs := make([]Segment, len(p.Segments))
	copy(segs, p.Segments)

	return Path{Start: p.Start, Segments: segs, end: p.end, endSet: p.endSet}
}

// Translated returns a deep copy of the path rigidly shifted by d.
// Segment contents are bit-for-bit identical to the original; only the
// start pose moves. The result's End() equals the original end pose
// translated by d exactly: the shifted end pose is computed once here
// and cached, since re-deriving it from the shifted start reorders the
// float accumulation and breaks bitwise equality.
func (p Path) Translated(d Point) Path {
	out := p.Clone()
	out.Start = out.Start.Translated(d)
	out.end = p.End().Translated(d)
	out.endSet = true

	return out
}

// MinArcRadius returns the smallest arc radius present in the path,
// or +Inf when the path contains no arcs. Used by callers enforcing
// the bend-radius floor.
func (p Path) MinArcRadius() float64 {
	min := math.Inf(1)
	for _, s := range p.Segments {
		if s.Kind == ArcKind && s.Radius < min {
			min = s.Radius
		}
	}

	return min
}

// Flatten approximates the path centerline as a polyline whose
// deviation from every arc stays below chordErr (sagitta bound).
// Straights contribute their endpoints; each arc is sampled at the
// uniform angular step that keeps the chord sagitta under chordErr.
// Returns ErrBadChordError for a non-positive tolerance and
// ErrEmptyPath for a path without segments.
//
// Complexity: O(total sampled points); an arc of sweep |θ| at radius R
// contributes ⌈|θ| / (2·acos(1 − chordErr/R))⌉ points.
func (p Path) Flatten(chordErr float64) ([]Point, error) {
	if chordErr <= 0 {
		return nil, ErrBadChordError
	}
	if len(p.Segments) == 0 {
		return nil, ErrEmptyPath
	}

	pts := make([]Point, 0, len(p.Segments)+1)
	pts = append(pts, p.Start.Position)
	cur := p.Start
	for _, s := range p.Segments {
		next := s.Apply(cur)
		if s.Kind == StraightKind {
			if s.Length > 0 {
				pts = append(pts, next.Position)
			}
			cur = next

			continue
		}

		// Angular step bounded by the sagitta: a chord spanning 2β on a
		// circle of radius R deviates by R(1−cos β).
		ratio := 1 - chordErr/s.Radius
		var step float64
		if ratio <= -1 {
			step = math.Pi
		} else {
			step = 2 * math.Acos(ratio)
		}
		n := int(math.Ceil(math.Abs(s.Angle) / step))
		if n < 1 {
			n = 1
		}

		cx, cy, sign := s.arcCenter(cur)
		phi0 := cur.Heading - sign*math.Pi/2
		for i := 1; i <= n; i++ {
			phi := phi0 + s.Angle*float64(i)/float64(n)
			pts = append(pts, Point{
				X: cx + s.Radius*math.Cos(phi),
				Y: cy + s.Radius*math.Sin(phi),
			})
		}
		cur = next
	}

	return pts, nil
}
