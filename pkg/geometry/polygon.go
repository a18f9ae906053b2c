package geometry

// PointInPolygon uses ray casting to test if (x, y) is inside the polygon.
func PointInPolygon(x, y float64, polygon []Point2D) bool {
	n := len(polygon)
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y
		if ((yi > y) != (yj > y)) && (x < (xj-xi)*(y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PolygonArea returns the unsigned area of a simple polygon (shoelace formula).
func PolygonArea(polygon []Point2D) float64 {
	n := len(polygon)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += polygon[i].X*polygon[j].Y - polygon[j].X*polygon[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// IsFourConnected reports whether every consecutive pair of pixels differs by
// exactly one unit along exactly one axis. When closed is true the last pixel
// must also step onto the first.
func IsFourConnected(path []PointInt, closed bool) bool {
	if len(path) < 2 {
		return true
	}
	for i := 1; i < len(path); i++ {
		if !path[i-1].IsAdjacent4(path[i]) {
			return false
		}
	}
	if closed {
		return path[len(path)-1].IsAdjacent4(path[0])
	}
	return true
}
