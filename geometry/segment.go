package geometry

// Segment represents a finite line segment from A to B. Interpreted
// parametrically, At(0) is A and At(1) is B; callers may also treat the
// segment as the carrier of an infinite line or semi-infinite ray.
type Segment struct {
	A, B Point
}

// Seg is a shorthand constructor for Segment.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Dir returns the direction vector B - A. It is the zero vector for a
// degenerate segment whose endpoints coincide.
func (s Segment) Dir() Point {
	return s.B.Sub(s.A)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Dir().Length()
}

// At returns the point A + t*(B-A).
func (s Segment) At(t float64) Point {
	return s.A.Lerp(s.B, t)
}

// DistanceTo returns the shortest distance from p to the segment.
func (s Segment) DistanceTo(p Point) float64 {
	d := s.Dir()
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return p.Distance(s.A)
	}
	t := p.Sub(s.A).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(s.At(t))
}
