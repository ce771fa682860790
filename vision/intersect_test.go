package vision

import (
	"errors"
	"math"
	"testing"

	"github.com/FinleyDavies/sightline/geometry"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestIntersectThroughCenter(t *testing.T) {
	c := geometry.C(0, 0, 4)
	seg := geometry.Seg(geometry.Pt(-10, 0), geometry.Pt(10, 0))

	pts, err := Intersect(c, seg, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 2 {
		t.Fatalf("expected 2 intersection points, got %d", len(pts))
	}

	// Both points at distance r from the center, symmetric about it.
	for _, p := range pts {
		if d := p.Distance(c.Center); !approxEqual(d, c.Radius, tolerance) {
			t.Errorf("expected point at distance %f from center, got %f", c.Radius, d)
		}
	}
	mid := pts[0].Add(pts[1]).Scale(0.5)
	if !approxEqual(mid.X, 0, tolerance) || !approxEqual(mid.Y, 0, tolerance) {
		t.Errorf("expected points symmetric about center, midpoint (%f,%f)", mid.X, mid.Y)
	}
}

func TestIntersectMiss(t *testing.T) {
	c := geometry.C(0, 10, 1)
	seg := geometry.Seg(geometry.Pt(-5, 0), geometry.Pt(5, 0))

	pts, err := Intersect(c, seg, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 0 {
		t.Errorf("expected no intersections, got %d", len(pts))
	}
}

func TestIntersectTangentLine(t *testing.T) {
	// The line y=0 grazes a circle sitting on it: one double root.
	c := geometry.C(0, 3, 3)
	seg := geometry.Seg(geometry.Pt(-5, 0), geometry.Pt(5, 0))

	pts, err := Intersect(c, seg, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 1 {
		t.Fatalf("expected 1 grazing intersection, got %d", len(pts))
	}
	if !approxEqual(pts[0].X, 0, tolerance) || !approxEqual(pts[0].Y, 0, tolerance) {
		t.Errorf("expected grazing point (0,0), got (%f,%f)", pts[0].X, pts[0].Y)
	}
}

func TestIntersectBoundFiltering(t *testing.T) {
	c := geometry.C(0, 0, 1)
	// Both roots lie at t<0 relative to this segment.
	seg := geometry.Seg(geometry.Pt(5, 0), geometry.Pt(10, 0))

	cases := []struct {
		name         string
		lower, upper bool
		want         int
	}{
		{"unbounded", false, false, 2},
		{"lower only", true, false, 0},
		{"upper only", false, true, 2},
		{"both", true, true, 0},
	}
	for _, tc := range cases {
		pts, err := Intersect(c, seg, tc.lower, tc.upper)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if len(pts) != tc.want {
			t.Errorf("%s: expected %d points, got %d", tc.name, tc.want, len(pts))
		}
	}
}

func TestIntersectPartialBoundFiltering(t *testing.T) {
	// One root inside [0,1], one past the end of the segment.
	c := geometry.C(10, 0, 2)
	seg := geometry.Seg(geometry.Pt(0, 0), geometry.Pt(10, 0))

	pts, err := Intersect(c, seg, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 1 {
		t.Fatalf("expected 1 point inside the segment, got %d", len(pts))
	}
	if !approxEqual(pts[0].X, 8, tolerance) {
		t.Errorf("expected entry point x=8, got %f", pts[0].X)
	}
}

func TestIntersectDegenerateSegment(t *testing.T) {
	c := geometry.C(0, 0, 1)
	seg := geometry.Seg(geometry.Pt(2, 2), geometry.Pt(2, 2))

	_, err := Intersect(c, seg, true, true)
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Fatalf("expected ErrDegenerateSegment, got %v", err)
	}
}

func TestIntersectIdempotent(t *testing.T) {
	c := geometry.C(1, 2, 3)
	seg := geometry.Seg(geometry.Pt(-7, 1), geometry.Pt(9, 4))

	first, err := Intersect(c, seg, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Intersect(c, seg, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("expected identical results, got %d vs %d points", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}
