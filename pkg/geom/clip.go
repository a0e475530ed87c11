package geom

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
)

// The boolean layer runs entirely in the receiver polygon's plane
// frame: both rings are projected to 2D, clipped, and the results are
// lifted back onto the receiver's plane, so the output is exactly
// planar even when the inputs only agree within tolerance.

// Intersection returns the regions covered by both p and q.
func (p Polygon) Intersection(q Polygon) []Polygon {
	return p.clip(polyclip.INTERSECTION, q)
}

// Union returns the regions covered by either p or q.
func (p Polygon) Union(q Polygon) []Polygon {
	return p.clip(polyclip.UNION, q)
}

// Difference returns the regions covered by p but not q.
func (p Polygon) Difference(q Polygon) []Polygon {
	return p.clip(polyclip.DIFFERENCE, q)
}

func (p Polygon) clip(op polyclip.Op, q Polygon) []Polygon {
	origin, u, v := p.basis()
	subject := polyclip.Polygon{toContour(p.toPlane(origin, u, v))}
	clipping := polyclip.Polygon{toContour(q.toPlane(origin, u, v))}

	n := p.windingNormal()
	var rings []Polygon
	for _, c := range subject.Construct(op, clipping) {
		ring := simplify(fromContour(c, origin, u, v))
		if len(ring) < 3 || ring.Area() < Epsilon {
			continue
		}
		rings = append(rings, ring.Orient(n))
	}
	return rings
}

func toContour(pts []point2) polyclip.Contour {
	c := make(polyclip.Contour, len(pts))
	for i, pt := range pts {
		c[i] = polyclip.Point{X: pt.x, Y: pt.y}
	}
	return c
}

func fromContour(c polyclip.Contour, origin, u, v Point) Polygon {
	ring := make(Polygon, len(c))
	for i, pt := range c {
		ring[i] = origin.Add(u.Mul(pt.X)).Add(v.Mul(pt.Y))
	}
	return ring
}

// simplify drops repeated vertices and collinear midpoints so clipper
// output compares cleanly against hand-built rings.
func simplify(p Polygon) Polygon {
	var dedup Polygon
	for _, pt := range p {
		if len(dedup) > 0 && PointsEqual(dedup[len(dedup)-1], pt) {
			continue
		}
		dedup = append(dedup, pt)
	}
	for len(dedup) > 1 && PointsEqual(dedup[0], dedup[len(dedup)-1]) {
		dedup = dedup[:len(dedup)-1]
	}
	if len(dedup) < 3 {
		return dedup
	}
	n := len(dedup)
	var ring Polygon
	for i := 0; i < n; i++ {
		prev := dedup[(i+n-1)%n]
		next := dedup[(i+1)%n]
		if Collinear(prev, dedup[i], next) {
			continue
		}
		ring = append(ring, dedup[i])
	}
	return ring
}

// Intersect computes the maximal set of simple polygons tiling the
// union of two coplanar polygons. When the pair does not overlap the
// result is exactly [a, b]. Otherwise each side contributes the parts
// of itself not covered by the other plus its own copy of every
// overlap region, wound to match that side. A strictly-interior
// overlap is treated as a hole (see BreakPolygons).
func Intersect(a, b Polygon) []Polygon {
	aPieces, bPieces, ok := SplitSides(a, b)
	if !ok {
		return []Polygon{a, b}
	}
	return append(aPieces, bPieces...)
}

// SplitSides returns the replacement pieces for each side of an
// overlapping pair. ok is false when a and b do not overlap, in which
// case both sides are left as-is.
func SplitSides(a, b Polygon) (aPieces, bPieces []Polygon, ok bool) {
	overlap := a.Intersection(b)
	if len(overlap) == 0 {
		return nil, nil, false
	}
	return sidePieces(a, b, overlap), sidePieces(b, a, overlap), true
}

// sidePieces assembles the pieces replacing side: its area not covered
// by other, then one copy of each overlap region in side's winding.
func sidePieces(side, other Polygon, overlap []Polygon) []Polygon {
	var pieces []Polygon
	if len(overlap) == 1 && IsHole(side, overlap[0]) {
		pieces = append(pieces, BreakPolygons(side, overlap[0])...)
	} else {
		pieces = append(pieces, side.Difference(other)...)
	}
	n := side.windingNormal()
	for _, o := range overlap {
		pieces = append(pieces, o.Orient(n))
	}
	return pieces
}

// IsHole reports whether candidate lies strictly inside outer: every
// vertex inside the boundary and none on it. Opposite winding alone
// never makes a hole, and any coincidence with the outer boundary
// always disqualifies one.
func IsHole(outer, candidate Polygon) bool {
	if len(outer) < 3 || len(candidate) < 3 {
		return false
	}
	if outer.Area() < candidate.Area()-Epsilon {
		return false
	}
	n := outer.Normal()
	d := -n.Dot(outer[0])
	origin, u, v := outer.basis()
	ring := outer.toPlane(origin, u, v)
	for _, pt := range candidate {
		if !almostZero(n.Dot(pt) + d) {
			return false
		}
		rel := pt.Sub(origin)
		if locate(ring, point2{rel.Dot(u), rel.Dot(v)}) != locInside {
			return false
		}
	}
	return true
}

// BreakPolygons breaks a polygon with a strictly-interior hole into
// simple polygons: a ring-with-a-slit polygon walking the outer
// boundary and detouring around the hole, plus the section the slit
// cuts off. The slit is anchored at the closest outer/hole vertex
// pair, which makes the decomposition deterministic.
func BreakPolygons(poly, hole Polygon) []Polygon {
	n := poly.windingNormal()
	// the inner ring is walked against the outer winding so the slit
	// polygon stays simple
	hole = hole.Orient(n.Mul(-1))

	bi, bj := 0, 0
	best := math.Inf(1)
	for i, op := range poly {
		for j, hp := range hole {
			if d := op.Sub(hp).Len(); d < best {
				best, bi, bj = d, i, j
			}
		}
	}

	ring := make(Polygon, 0, len(poly)+len(hole))
	for i := range poly {
		ring = append(ring, poly[(bi+i)%len(poly)])
	}
	for j := range hole {
		ring = append(ring, hole[(bj+1+j)%len(hole)])
	}

	pieces := []Polygon{ring}
	// whatever the slit ring and the hole leave uncovered is the
	// cut-off section
	remainder := []Polygon{poly}
	for _, covered := range ring.Union(hole) {
		var next []Polygon
		for _, r := range remainder {
			next = append(next, r.Difference(covered)...)
		}
		remainder = next
	}
	return append(pieces, remainder...)
}

// MinimalSet deduplicates polygons that describe the same region under
// any cyclic rotation, ignoring winding, and drops degenerate entries.
// Pairwise splitting of overlapping chains rediscovers shared pieces
// from both directions; this collapses them.
func MinimalSet(polys []Polygon) []Polygon {
	var out []Polygon
	for _, p := range polys {
		if len(p) < 3 || p.Area() < Epsilon {
			continue
		}
		dup := false
		for _, q := range out {
			if p.SameRegion(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
