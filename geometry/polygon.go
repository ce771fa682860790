package geometry

// PointInPolygon tests if a point is inside a polygon using the ray
// casting algorithm. The polygon is given as an ordered vertex list.
func PointInPolygon(p Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > p.Y) != (yj > p.Y)) &&
			(p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// CircleOverlapsPolygon reports whether c and the polygon share any area.
// True when the circle's center is inside the polygon, or any polygon
// edge passes within the circle's radius.
func CircleOverlapsPolygon(c Circle, polygon []Point) bool {
	if len(polygon) == 0 {
		return false
	}
	if PointInPolygon(c.Center, polygon) {
		return true
	}
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		edge := Seg(polygon[j], polygon[i])
		if edge.DistanceTo(c.Center) <= c.Radius {
			return true
		}
		j = i
	}
	return false
}
