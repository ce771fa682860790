// Package vision implements line-of-sight visibility between circular
// regions in a 2D plane with circular obstacles. A target is visible
// from a source when none of the tangent lines connecting the two
// circles is obstructed by an obstacle. The package exposes the three
// layers of that computation separately: ray/circle intersection
// (Intersect), bitangent construction (Tangents), and nearest-hit
// occlusion scanning (FirstHit, FirstHitAlong), with Visible tying them
// together.
package vision

import (
	"errors"
	"math"

	"github.com/FinleyDavies/sightline/geometry"
)

// ErrDegenerateSegment is returned when an intersection query is given a
// segment whose endpoints coincide. Such a segment has no direction, so
// the parametric form p(t) = A + t*(B-A) cannot be solved.
var ErrDegenerateSegment = errors.New("vision: degenerate segment has no direction")

// Intersect returns the points where the line carrying seg crosses the
// boundary of c. The bound flags restrict the solution parameter t:
// lowerBounded requires t >= 0 (at or past seg.A) and upperBounded
// requires t <= 1 (at or before seg.B). With both flags set only
// crossings on the segment itself are returned; with both clear the
// whole infinite line is considered.
//
// Zero, one, or two points are returned; their order is unspecified.
// A degenerate segment yields ErrDegenerateSegment.
func Intersect(c geometry.Circle, seg geometry.Segment, lowerBounded, upperBounded bool) ([]geometry.Point, error) {
	ts, err := intersectParams(c, seg, lowerBounded, upperBounded)
	if err != nil {
		return nil, err
	}
	pts := make([]geometry.Point, 0, len(ts))
	for _, t := range ts {
		pts = append(pts, seg.At(t))
	}
	return pts, nil
}

// intersectParams solves the quadratic |A + t*d - center|^2 = r^2 and
// returns the roots that satisfy the bound flags.
func intersectParams(c geometry.Circle, seg geometry.Segment, lowerBounded, upperBounded bool) ([]float64, error) {
	d := seg.Dir()
	qa := d.Dot(d)
	if qa == 0 {
		return nil, ErrDegenerateSegment
	}

	f := seg.A.Sub(c.Center)
	qb := 2 * d.Dot(f)
	qc := f.Dot(f) - c.Radius*c.Radius

	disc := qb*qb - 4*qa*qc
	switch {
	case disc < 0:
		return nil, nil
	case disc == 0:
		t := -qb / (2 * qa)
		if inBounds(t, lowerBounded, upperBounded) {
			return []float64{t}, nil
		}
		return nil, nil
	default:
		sqrtD := math.Sqrt(disc)
		var ts []float64
		for _, t := range [2]float64{(-qb - sqrtD) / (2 * qa), (-qb + sqrtD) / (2 * qa)} {
			if inBounds(t, lowerBounded, upperBounded) {
				ts = append(ts, t)
			}
		}
		return ts, nil
	}
}

func inBounds(t float64, lowerBounded, upperBounded bool) bool {
	if lowerBounded && t < 0 {
		return false
	}
	if upperBounded && t > 1 {
		return false
	}
	return true
}
