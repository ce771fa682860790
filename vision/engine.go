package vision

import "github.com/FinleyDavies/sightline/geometry"

// Visible reports whether target can be seen from source given a set of
// circular obstacles. The test constructs the tangent lines between the
// two circles and declares the target visible when no tangent is crossed
// by an obstacle between its endpoints. Obstacles beyond the target do
// not occlude it.
//
// When no tangent family exists (one circle nested inside the other)
// there is no tangent-based determination to make and Visible returns
// true; callers that want containment semantics can check
// Circle.ContainsCircle themselves. Obstacle slices are read for the
// duration of the call only.
func Visible(target, source geometry.Circle, obstacles []geometry.Circle) bool {
	if source.Radius == 0 && target.Radius == 0 {
		// All four tangents collapse to the segment between the two
		// points; one occlusion test covers them.
		return segmentClear(geometry.Seg(source.Center, target.Center), obstacles)
	}

	for _, tan := range Tangents(source, target) {
		if !segmentClear(tan, obstacles) {
			return false
		}
	}
	return true
}

// segmentClear reports whether no obstacle crosses seg between its
// endpoints. Degenerate segments (externally tangent circle pairs
// collapse the internal tangent pair to a point) carry no sight line
// to block and are treated as clear.
func segmentClear(seg geometry.Segment, obstacles []geometry.Circle) bool {
	if seg.Length() < Epsilon {
		return true
	}
	hit, err := FirstHitAlong(seg, obstacles, true, true)
	return err == nil && hit == nil
}

// Corridor returns the quadrilateral spanned by the two external
// tangents, the region a presentation layer may highlight as the sight
// corridor between two circles. Nil when fewer than two tangents exist.
func Corridor(tangents []geometry.Segment) []geometry.Point {
	if len(tangents) < 2 {
		return nil
	}
	return []geometry.Point{tangents[0].A, tangents[1].A, tangents[1].B, tangents[0].B}
}
