package vision

import (
	"testing"

	"github.com/FinleyDavies/sightline/geometry"
)

func TestTangentsSeparatedCircles(t *testing.T) {
	a := geometry.C(0, 0, 5)
	b := geometry.C(20, 0, 5)

	tangents := Tangents(a, b)
	if len(tangents) != 4 {
		t.Fatalf("expected 4 tangents, got %d", len(tangents))
	}

	// Every tangent endpoint sits on its circle's boundary.
	for i, tan := range tangents {
		if d := tan.A.Distance(a.Center); !approxEqual(d, a.Radius, tolerance) {
			t.Errorf("tangent %d: endpoint A at distance %f from a, expected %f", i, d, a.Radius)
		}
		if d := tan.B.Distance(b.Center); !approxEqual(d, b.Radius, tolerance) {
			t.Errorf("tangent %d: endpoint B at distance %f from b, expected %f", i, d, b.Radius)
		}
	}

	// Equal radii: the external pair (first two) runs along y=+5 and y=-5.
	for i, wantY := range []float64{5, -5} {
		tan := tangents[i]
		if !approxEqual(tan.A.Y, wantY, tolerance) || !approxEqual(tan.B.Y, wantY, tolerance) {
			t.Errorf("external tangent %d: expected horizontal line y=%f, got A.Y=%f B.Y=%f",
				i, wantY, tan.A.Y, tan.B.Y)
		}
	}

	// The internal pair crosses at the midpoint between the centers.
	for i := 2; i < 4; i++ {
		mid := tangents[i].At(0.5)
		if !approxEqual(mid.X, 10, tolerance) || !approxEqual(mid.Y, 0, tolerance) {
			t.Errorf("internal tangent %d: expected crossing (10,0), got (%f,%f)", i, mid.X, mid.Y)
		}
	}
}

func TestTangentsEndpointDistances(t *testing.T) {
	cases := []struct {
		name string
		a, b geometry.Circle
	}{
		{"unequal radii", geometry.C(0, 0, 3), geometry.C(15, 5, 7)},
		{"vertical offset", geometry.C(2, -4, 1), geometry.C(2, 30, 6)},
		{"point source", geometry.C(-10, -10, 0), geometry.C(4, 8, 5)},
	}
	for _, tc := range cases {
		tangents := Tangents(tc.a, tc.b)
		if len(tangents) != 4 {
			t.Fatalf("%s: expected 4 tangents, got %d", tc.name, len(tangents))
		}
		for i, tan := range tangents {
			if d := tan.A.Distance(tc.a.Center); !approxEqual(d, tc.a.Radius, tolerance) {
				t.Errorf("%s: tangent %d endpoint A at distance %f, expected %f", tc.name, i, d, tc.a.Radius)
			}
			if d := tan.B.Distance(tc.b.Center); !approxEqual(d, tc.b.Radius, tolerance) {
				t.Errorf("%s: tangent %d endpoint B at distance %f, expected %f", tc.name, i, d, tc.b.Radius)
			}
		}
	}
}

func TestTangentsNestedCircles(t *testing.T) {
	cases := []struct {
		name string
		a, b geometry.Circle
	}{
		{"b inside a", geometry.C(0, 0, 10), geometry.C(2, 0, 3)},
		{"a inside b", geometry.C(2, 0, 3), geometry.C(0, 0, 10)},
		{"concentric", geometry.C(5, 5, 4), geometry.C(5, 5, 2)},
		{"coincident", geometry.C(1, 1, 3), geometry.C(1, 1, 3)},
		{"internally tangent", geometry.C(0, 0, 10), geometry.C(5, 0, 5)},
	}
	for _, tc := range cases {
		if tangents := Tangents(tc.a, tc.b); len(tangents) != 0 {
			t.Errorf("%s: expected no tangents, got %d", tc.name, len(tangents))
		}
	}
}

func TestTangentsOverlappingCircles(t *testing.T) {
	// Partially overlapping circles keep the external pair but have no
	// internal tangents.
	a := geometry.C(0, 0, 5)
	b := geometry.C(6, 0, 5)

	tangents := Tangents(a, b)
	if len(tangents) != 2 {
		t.Fatalf("expected 2 external tangents, got %d", len(tangents))
	}
	for i, wantY := range []float64{5, -5} {
		if !approxEqual(tangents[i].A.Y, wantY, tolerance) {
			t.Errorf("external tangent %d: expected y=%f, got %f", i, wantY, tangents[i].A.Y)
		}
	}
}

func TestTangentsZeroRadiusCollapse(t *testing.T) {
	// Two point-circles: every family yields the same segment between
	// the points.
	a := geometry.C(0, 0, 0)
	b := geometry.C(12, 9, 0)

	tangents := Tangents(a, b)
	if len(tangents) != 4 {
		t.Fatalf("expected 4 (collapsed) tangents, got %d", len(tangents))
	}
	for i, tan := range tangents {
		if tan.A != a.Center || tan.B != b.Center {
			t.Errorf("tangent %d: expected segment between the two points, got %v -> %v", i, tan.A, tan.B)
		}
	}
}
