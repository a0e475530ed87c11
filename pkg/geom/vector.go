// Package geom implements the planar polygon primitives and the
// boolean decomposition engine used to split and match building
// surfaces.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance for all floating-point comparisons in this
// package. Every geometric predicate must use the same tolerance or
// the split/match pipeline produces inconsistent classifications.
const Epsilon = 1e-6

// Point is a position in 3D space.
type Point = mgl64.Vec3

// P builds a Point from its coordinates.
func P(x, y, z float64) Point {
	return Point{x, y, z}
}

// PointsEqual reports whether two points coincide within Epsilon.
func PointsEqual(a, b Point) bool {
	return a.ApproxEqualThreshold(b, Epsilon)
}

// Collinear reports whether three points lie on a single line.
func Collinear(a, b, c Point) bool {
	return b.Sub(a).Cross(c.Sub(a)).Len() < Epsilon
}

// Parallel reports whether two unit vectors point along the same line,
// ignoring direction.
func Parallel(a, b Point) bool {
	return a.Cross(b).Len() < Epsilon
}

func almostZero(x float64) bool {
	return math.Abs(x) < Epsilon
}
