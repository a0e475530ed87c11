package geom

import "math"

// Polygon is an ordered ring of at least three coplanar points,
// implicitly closed (the last point connects back to the first) and
// with no point repeated. The vertex order encodes the winding
// direction relative to the normal, which is what distinguishes a
// region from a hole and a surface from its opposite face.
//
// Polygons are value types: every operation returns a new ring and
// never mutates the receiver.
type Polygon []Point

// NewPolygon copies pts into a fresh Polygon.
func NewPolygon(pts ...Point) Polygon {
	p := make(Polygon, len(pts))
	copy(p, pts)
	return p
}

// Invert returns the ring in reverse vertex order (opposite winding).
func (p Polygon) Invert() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// Normal returns the unit normal derived from the first three
// non-collinear vertices via cross product. The direction follows the
// winding at that corner.
func (p Polygon) Normal() Point {
	n := len(p)
	for i := 0; i < n && n >= 3; i++ {
		a := p[i]
		b := p[(i+1)%n]
		c := p[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross.Len() > Epsilon {
			return cross.Normalize()
		}
	}
	return Point{}
}

// newell returns the area-weighted normal of the ring (Newell's
// method), computed relative to the first vertex so survey-scale
// coordinates do not lose precision. Its length is twice the area and
// its direction follows the winding even when the ring is non-convex.
func (p Polygon) newell() Point {
	var sum Point
	if len(p) < 3 {
		return sum
	}
	o := p[0]
	for i := range p {
		a := p[i].Sub(o)
		b := p[(i+1)%len(p)].Sub(o)
		sum = sum.Add(a.Cross(b))
	}
	return sum
}

// windingNormal returns the unit normal implied by the vertex winding,
// robust for rings whose first corner is reflex.
func (p Polygon) windingNormal() Point {
	nv := p.newell()
	if nv.Len() < Epsilon {
		return Point{}
	}
	return nv.Normalize()
}

// Area returns the enclosed area.
func (p Polygon) Area() float64 {
	return p.newell().Len() / 2
}

// Orient returns the ring wound so that its winding normal points
// along n. The vertex set is unchanged.
func (p Polygon) Orient(n Point) Polygon {
	if p.newell().Dot(n) < 0 {
		return p.Invert()
	}
	return p
}

// Clockwise reports whether the ring winds clockwise when viewed from
// the tip of n.
func (p Polygon) Clockwise(n Point) bool {
	return p.newell().Dot(n) < 0
}

// Equal reports whether q contains the same points in the same cyclic
// order. Rotation-invariant, winding-sensitive.
func (p Polygon) Equal(q Polygon) bool {
	n := len(p)
	if n != len(q) || n == 0 {
		return false
	}
	for off := 0; off < n; off++ {
		match := true
		for i := 0; i < n; i++ {
			if !PointsEqual(p[i], q[(i+off)%n]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// SameRegion reports whether p and q describe the same region,
// ignoring winding direction.
func (p Polygon) SameRegion(q Polygon) bool {
	return p.Equal(q) || p.Equal(q.Invert())
}

// IsCoplanar reports whether every vertex of q lies on p's plane and
// the normals are parallel (either direction).
func (p Polygon) IsCoplanar(q Polygon) bool {
	if len(p) < 3 || len(q) < 3 {
		return false
	}
	n1 := p.Normal()
	if !Parallel(n1, q.Normal()) {
		return false
	}
	d := -n1.Dot(p[0])
	for _, pt := range q {
		if !almostZero(n1.Dot(pt) + d) {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box of the ring.
func (p Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, pt := range p {
		for i := 0; i < 3; i++ {
			if pt[i] < min[i] {
				min[i] = pt[i]
			}
			if pt[i] > max[i] {
				max[i] = pt[i]
			}
		}
	}
	return min, max
}

// Xs returns the x coordinate of every vertex.
func (p Polygon) Xs() []float64 { return p.axis(0) }

// Ys returns the y coordinate of every vertex.
func (p Polygon) Ys() []float64 { return p.axis(1) }

// Zs returns the z coordinate of every vertex.
func (p Polygon) Zs() []float64 { return p.axis(2) }

func (p Polygon) axis(i int) []float64 {
	out := make([]float64, len(p))
	for j, pt := range p {
		out[j] = pt[i]
	}
	return out
}

// basis returns an orthonormal frame for the polygon's plane, anchored
// at the first vertex. Clipping runs in this frame so coordinates stay
// near the origin regardless of where the polygon sits in world space.
func (p Polygon) basis() (origin, u, v Point) {
	origin = p[0]
	for i := 1; i < len(p); i++ {
		e := p[i].Sub(origin)
		if e.Len() > Epsilon {
			u = e.Normalize()
			break
		}
	}
	v = p.Normal().Cross(u)
	return origin, u, v
}

type point2 struct {
	x, y float64
}

func (p Polygon) toPlane(origin, u, v Point) []point2 {
	out := make([]point2, len(p))
	for i, pt := range p {
		d := pt.Sub(origin)
		out[i] = point2{x: d.Dot(u), y: d.Dot(v)}
	}
	return out
}

// Contains reports whether pt lies strictly inside the polygon. Points
// on the boundary (within Epsilon) are not contained.
func (p Polygon) Contains(pt Point) bool {
	origin, u, v := p.basis()
	d := pt.Sub(origin)
	return locate(p.toPlane(origin, u, v), point2{d.Dot(u), d.Dot(v)}) == locInside
}

type location int

const (
	locOutside location = iota
	locBoundary
	locInside
)

// locate classifies a plane point against a 2D ring with an even-odd
// ray cast, treating anything within Epsilon of an edge as boundary.
func locate(ring []point2, pt point2) location {
	n := len(ring)
	for i := 0; i < n; i++ {
		if distToSegment(pt, ring[i], ring[(i+1)%n]) < Epsilon {
			return locBoundary
		}
	}
	in := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.y > pt.y) != (b.y > pt.y) {
			x := a.x + (pt.y-a.y)/(b.y-a.y)*(b.x-a.x)
			if pt.x < x {
				in = !in
			}
		}
	}
	if in {
		return locInside
	}
	return locOutside
}

func distToSegment(pt, a, b point2) float64 {
	abx, aby := b.x-a.x, b.y-a.y
	apx, apy := pt.x-a.x, pt.y-a.y
	ab2 := abx*abx + aby*aby
	t := 0.0
	if ab2 > 0 {
		t = (apx*abx + apy*aby) / ab2
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	dx := pt.x - (a.x + t*abx)
	dy := pt.y - (a.y + t*aby)
	return math.Hypot(dx, dy)
}
