package geom

// Triangulate splits a simple polygon into triangles by ear clipping
// in the polygon's plane frame. Triangles keep the polygon's winding.
// Returns nil when the ring is degenerate.
func (p Polygon) Triangulate() [][3]Point {
	if len(p) < 3 || p.Area() < Epsilon {
		return nil
	}
	origin, u, v := p.basis()
	pts := p.toPlane(origin, u, v)

	// work on a CCW index ring; remember if the input was flipped so
	// emitted triangles can keep the original winding
	idx := make([]int, len(p))
	for i := range idx {
		idx[i] = i
	}
	flipped := signedArea2(pts) < 0
	if flipped {
		for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}

	emit := func(tris [][3]Point, i0, i1, i2 int) [][3]Point {
		if flipped {
			i0, i2 = i2, i0
		}
		return append(tris, [3]Point{p[i0], p[i1], p[i2]})
	}

	var tris [][3]Point
	for len(idx) > 3 {
		clipped := false
		for k := range idx {
			i0 := idx[(k+len(idx)-1)%len(idx)]
			i1 := idx[k]
			i2 := idx[(k+1)%len(idx)]
			if !isEar(pts, idx, i0, i1, i2) {
				continue
			}
			tris = emit(tris, i0, i1, i2)
			idx = append(idx[:k], idx[k+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// numerically degenerate remainder; stop rather than loop
			break
		}
	}
	if len(idx) == 3 {
		tris = emit(tris, idx[0], idx[1], idx[2])
	}
	return tris
}

func signedArea2(pts []point2) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].x*pts[j].y - pts[j].x*pts[i].y
	}
	return sum / 2
}

func cross2(o, a, b point2) float64 {
	return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
}

// isEar reports whether the corner i0-i1-i2 of a CCW ring is convex
// and holds no other remaining vertex.
func isEar(pts []point2, idx []int, i0, i1, i2 int) bool {
	a, b, c := pts[i0], pts[i1], pts[i2]
	if cross2(a, b, c) < Epsilon {
		return false
	}
	for _, i := range idx {
		if i == i0 || i == i1 || i == i2 {
			continue
		}
		if inTriangle(pts[i], a, b, c) {
			return false
		}
	}
	return true
}

func inTriangle(pt, a, b, c point2) bool {
	return cross2(a, b, pt) > -Epsilon &&
		cross2(b, c, pt) > -Epsilon &&
		cross2(c, a, pt) > -Epsilon
}
