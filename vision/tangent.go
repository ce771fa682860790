package vision

import (
	"math"

	"github.com/FinleyDavies/sightline/geometry"
)

// Epsilon is the tolerance applied to the tangent feasibility checks.
// Circle pairs within Epsilon of the nesting boundary (d^2 <= (rA-rB)^2)
// report no tangents, and a tangent family is only dropped once its
// feasibility value c^2 exceeds 1+Epsilon, so boundary configurations do
// not flap between results under floating-point rounding. The tolerance
// is part of the contract of Tangents.
const Epsilon = 1e-9

// Tangents returns the bitangent segments between circles a and b, up to
// four: the two external tangents followed by the two internal tangents.
// Each segment's first endpoint lies on a and the second on b. When one
// circle is nested inside the other (or they are concentric) no tangent
// family exists and nil is returned; an infeasible family (overlapping
// circles have no internal tangents) is skipped individually, so the
// result holds 0, 2, or 4 segments. At exact external tangency the
// internal pair degenerates to segments of zero length; Visible skips
// such segments rather than querying them.
//
// For two zero-radius circles every entry degenerates to the same
// segment between the two centers.
func Tangents(a, b geometry.Circle) []geometry.Segment {
	diff := b.Center.Sub(a.Center)
	dSq := diff.Dot(diff)
	rd := a.Radius - b.Radius
	if dSq <= rd*rd+Epsilon {
		return nil
	}

	d := math.Sqrt(dSq)
	v := diff.Scale(1 / d)

	segs := make([]geometry.Segment, 0, 4)
	for _, sign1 := range [2]float64{1, -1} {
		c := (a.Radius - sign1*b.Radius) / d
		if c*c > 1+Epsilon {
			continue
		}
		h := math.Sqrt(math.Max(0, 1-c*c))

		for _, sign2 := range [2]float64{1, -1} {
			n := geometry.Pt(v.X*c-sign2*h*v.Y, v.Y*c+sign2*h*v.X)
			segs = append(segs, geometry.Seg(
				a.Center.Add(n.Scale(a.Radius)),
				b.Center.Add(n.Scale(sign1*b.Radius)),
			))
		}
	}
	return segs
}
