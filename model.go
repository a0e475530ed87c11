// Package geomeppy edits 3D building-block geometry: it detects where
// planar surfaces overlap, splits them into disjoint pieces, and
// records which pieces face each other versus the exterior or the
// ground. The result is block geometry with thermally consistent
// boundary conditions.
package geomeppy

import (
	"io"

	"github.com/samuelduchesne/geomeppy/pkg/export"
	"github.com/samuelduchesne/geomeppy/pkg/geom"
	"github.com/samuelduchesne/geomeppy/pkg/intersect"
	"github.com/samuelduchesne/geomeppy/pkg/model"
	"github.com/samuelduchesne/geomeppy/pkg/recipes"
)

// Model is the top-level handle on a building's surface collection.
type Model struct {
	Store *model.Store

	// GroundLevel is the z height of the ground plane used when
	// classifying unmatched walls.
	GroundLevel float64
}

// New returns an empty model.
func New() *Model {
	return &Model{Store: model.NewStore()}
}

// AddBlock extrudes a 2D footprint into walls, floors and roofs, one
// zone per storey.
func (m *Model) AddBlock(name string, footprint [][2]float64, height float64, storeys int) error {
	return model.AddBlock(m.Store, name, footprint, height, storeys)
}

// IntersectMatch splits every overlapping surface pair into disjoint
// pieces and then assigns boundary conditions: facing pieces reference
// each other, everything else faces outdoors or ground.
func (m *Model) IntersectMatch() {
	intersect.IntersectSurfaces(m.Store)
	intersect.MatchSurfaces(m.Store, m.GroundLevel)
}

// Surfaces returns surfaces in declaration order, optionally filtered
// by type.
func (m *Model) Surfaces(types ...model.SurfaceType) []*model.Surface {
	return m.Store.Surfaces(types...)
}

// GetSurface returns the surface with the given name, or nil.
func (m *Model) GetSurface(name string) *model.Surface {
	return m.Store.Get(name)
}

// Translate moves the whole model by (x, y, z).
func (m *Model) Translate(x, y, z float64) {
	recipes.Translate(m.Store, geom.P(x, y, z))
}

// TranslateToOrigin moves the model next to the origin, which keeps
// clipping precise for survey-coordinate footprints.
func (m *Model) TranslateToOrigin() {
	recipes.TranslateToOrigin(m.Store)
}

// Rotate turns the model about the z axis by an angle in degrees.
func (m *Model) Rotate(degrees float64) {
	recipes.Rotate(m.Store, degrees)
}

// Scale multiplies coordinates by factor on the given axes, e.g. "xy".
func (m *Model) Scale(factor float64, axes string) {
	recipes.Scale(m.Store, factor, axes)
}

// SetWWR sets the window-to-wall ratio on all external walls.
func (m *Model) SetWWR(wwr float64, construction string) error {
	return recipes.SetWWR(m.Store, wwr, construction)
}

// WriteSTL writes the model to a binary STL file.
func (m *Model) WriteSTL(path string) error {
	return export.WriteSTL(m.Store, path)
}

// WriteOBJ writes the model as Wavefront OBJ.
func (m *Model) WriteOBJ(w io.Writer) error {
	return export.WriteOBJ(m.Store, w)
}
