// Package recipes provides whole-model editing operations: coordinate
// transforms over every surface and window generation on external
// walls.
package recipes

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/samuelduchesne/geomeppy/pkg/geom"
	"github.com/samuelduchesne/geomeppy/pkg/model"
)

// transform applies f to every vertex of every surface. A surface
// without vertex data is reported and left alone so one malformed
// record does not abort the edit.
func transform(st *model.Store, f func(geom.Point) geom.Point) {
	for _, s := range st.Surfaces() {
		if !s.HasGeometry() {
			log.Printf("%s was not affected by this operation since it does not define vertices", s.Name)
			continue
		}
		pts := make([]geom.Point, len(s.Vertices))
		for i, pt := range s.Vertices {
			pts[i] = f(pt)
		}
		s.Vertices = pts
	}
}

// Translate moves every surface by v.
func Translate(st *model.Store, v geom.Point) {
	transform(st, func(pt geom.Point) geom.Point {
		return pt.Add(v)
	})
}

// TranslateToOrigin moves the model so its minimum x and y sit at the
// origin. Clipping precision degrades with distance from the origin,
// so survey-coordinate models should be moved here before splitting.
func TranslateToOrigin(st *model.Store) {
	minX, minY := math.Inf(1), math.Inf(1)
	for _, s := range st.Surfaces() {
		for _, pt := range s.Vertices {
			minX = math.Min(minX, pt.X())
			minY = math.Min(minY, pt.Y())
		}
	}
	if math.IsInf(minX, 1) {
		return
	}
	Translate(st, geom.P(-minX, -minY, 0))
}

// Rotate turns every surface about the z axis by the given angle in
// degrees.
func Rotate(st *model.Store, degrees float64) {
	m := mgl64.Rotate3DZ(mgl64.DegToRad(degrees))
	transform(st, func(pt geom.Point) geom.Point {
		return m.Mul3x1(pt)
	})
}

// Scale multiplies coordinates by factor on the given axes ("x", "y",
// "z" or any combination, e.g. "xy").
func Scale(st *model.Store, factor float64, axes string) {
	sx, sy, sz := 1.0, 1.0, 1.0
	if strings.Contains(axes, "x") {
		sx = factor
	}
	if strings.Contains(axes, "y") {
		sy = factor
	}
	if strings.Contains(axes, "z") {
		sz = factor
	}
	transform(st, func(pt geom.Point) geom.Point {
		return geom.P(pt.X()*sx, pt.Y()*sy, pt.Z()*sz)
	})
}

// SetWWR sets the window-to-wall ratio on all external walls: existing
// windows on each wall are removed and replaced by a single vertical
// strip midway up the wall. A wwr of 0 just strips the windows.
func SetWWR(st *model.Store, wwr float64, construction string) error {
	if wwr < 0 || wwr >= 1 {
		return fmt.Errorf("recipes: window-to-wall ratio %v out of range [0, 1)", wwr)
	}
	windows := st.Surfaces(model.Window)
	for _, wall := range st.Surfaces(model.Wall) {
		if wall.Boundary != model.BoundaryOutdoors {
			continue
		}
		for _, win := range windows {
			if win.Parent == wall.Name {
				st.Remove(win)
			}
		}
		if wwr == 0 || !wall.HasGeometry() {
			continue
		}
		window := &model.Surface{
			Name:         fmt.Sprintf("%s window", wall.Name),
			Type:         model.Window,
			Zone:         wall.Zone,
			Construction: construction,
			Parent:       wall.Name,
			Boundary:     model.BoundaryOutdoors,
			Vertices:     windowVertices(wall.Vertices, wwr),
		}
		if err := st.Add(window); err != nil {
			return err
		}
	}
	return nil
}

// windowVertices shrinks the wall outline toward its centroid: the
// vertical extent by the glazing ratio, the horizontal extent by 0.1%
// so the window stays strictly inside the wall face.
func windowVertices(wall []geom.Point, wwr float64) []geom.Point {
	var cx, cy, cz float64
	for _, pt := range wall {
		cx += pt.X()
		cy += pt.Y()
		cz += pt.Z()
	}
	n := float64(len(wall))
	cx, cy, cz = cx/n, cy/n, cz/n

	out := make([]geom.Point, len(wall))
	for i, pt := range wall {
		out[i] = geom.P(
			(pt.X()-cx)*0.999+cx,
			(pt.Y()-cy)*0.999+cy,
			(pt.Z()-cz)*wwr+cz,
		)
	}
	return out
}
