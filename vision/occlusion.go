package vision

import "github.com/FinleyDavies/sightline/geometry"

// Hit records the nearest obstruction found along a ray.
type Hit struct {
	Point    geometry.Point  // where the ray enters the obstacle
	Obstacle geometry.Circle // the obstacle that produced the hit
	T        float64         // solution parameter; smaller is nearer the ray origin
}

// FirstHit scans a semi-infinite ray starting at ray.A, through ray.B and
// beyond, and returns the nearest crossing with any obstacle, or nil when
// the ray is unobstructed. Obstacles past ray.B still register; use
// FirstHitAlong with an upper bound to stop at the segment end.
func FirstHit(ray geometry.Segment, obstacles []geometry.Circle) (*Hit, error) {
	return FirstHitAlong(ray, obstacles, true, false)
}

// FirstHitAlong is FirstHit with explicit bound flags: lowerBounded
// restricts crossings to t >= 0 and upperBounded to t <= 1, with the same
// meaning as in Intersect. Candidates are ranked by t, so the hit nearest
// the segment start wins regardless of the segment's orientation.
func FirstHitAlong(seg geometry.Segment, obstacles []geometry.Circle, lowerBounded, upperBounded bool) (*Hit, error) {
	var best *Hit
	for _, obs := range obstacles {
		ts, err := intersectParams(obs, seg, lowerBounded, upperBounded)
		if err != nil {
			return nil, err
		}
		for _, t := range ts {
			if best == nil || t < best.T {
				best = &Hit{Point: seg.At(t), Obstacle: obs, T: t}
			}
		}
	}
	return best, nil
}
