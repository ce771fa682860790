package geometry

// Circle represents a circle by its center and radius. A radius of zero
// is a valid degenerate circle describing a point location.
type Circle struct {
	Center Point
	Radius float64
}

// C is a shorthand constructor for Circle.
func C(x, y, r float64) Circle {
	return Circle{Center: Pt(x, y), Radius: r}
}

// Contains reports whether p lies inside or on the boundary of c.
func (c Circle) Contains(p Point) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// ContainsCircle reports whether o lies entirely inside or on the
// boundary of c.
func (c Circle) ContainsCircle(o Circle) bool {
	return c.Center.Distance(o.Center)+o.Radius <= c.Radius
}
