// Package model holds the surface records and the ordered collection
// that the intersection and matching passes read and rewrite.
package model

import "github.com/samuelduchesne/geomeppy/pkg/geom"

// SurfaceType classifies a surface record.
type SurfaceType int

const (
	Wall SurfaceType = iota
	Floor
	Roof
	Ceiling
	Window
	Door
	Shading
)

func (t SurfaceType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Roof:
		return "roof"
	case Ceiling:
		return "ceiling"
	case Window:
		return "window"
	case Door:
		return "door"
	case Shading:
		return "shading"
	default:
		return "unknown"
	}
}

// Matchable reports whether surfaces of this type take part in
// splitting and adjacency matching. Subsurfaces and shading never do.
func (t SurfaceType) Matchable() bool {
	switch t {
	case Wall, Floor, Roof, Ceiling:
		return true
	default:
		return false
	}
}

// MatchableTypes lists the types the split/match passes operate on.
func MatchableTypes() []SurfaceType {
	return []SurfaceType{Wall, Floor, Roof, Ceiling}
}

// BoundaryCondition describes what lies beyond a surface.
type BoundaryCondition int

const (
	BoundaryOutdoors BoundaryCondition = iota
	BoundaryGround
	BoundarySurface
	BoundaryAdiabatic
)

func (b BoundaryCondition) String() string {
	switch b {
	case BoundaryOutdoors:
		return "outdoors"
	case BoundaryGround:
		return "ground"
	case BoundarySurface:
		return "surface"
	case BoundaryAdiabatic:
		return "adiabatic"
	default:
		return "unknown"
	}
}

// Surface is one planar building surface. The geometry core reads and
// rewrites exactly these fields; anything else a full building model
// carries stays with its owner.
type Surface struct {
	Name         string
	Type         SurfaceType
	Zone         string // zone (block storey) the surface belongs to
	Construction string
	Parent       string // owning surface name, for subsurfaces only

	Boundary   BoundaryCondition
	AdjacentTo string // partner surface name when Boundary is surface

	Vertices []geom.Point

	// MissingGeometryReported is set once a pass has warned about this
	// record's absent vertex data, so repeat passes stay quiet.
	MissingGeometryReported bool
}

// HasGeometry reports whether the surface carries usable vertex data.
func (s *Surface) HasGeometry() bool {
	return len(s.Vertices) >= 3
}

// Polygon returns the surface outline as a polygon ring.
func (s *Surface) Polygon() geom.Polygon {
	return geom.NewPolygon(s.Vertices...)
}

// SetCoords replaces the surface geometry with the given ring.
func (s *Surface) SetCoords(p geom.Polygon) {
	s.Vertices = append([]geom.Point(nil), p...)
}

// CloneMeta returns a new surface with every non-geometric field
// copied and the given name. The caller sets the geometry.
func (s *Surface) CloneMeta(name string) *Surface {
	return &Surface{
		Name:         name,
		Type:         s.Type,
		Zone:         s.Zone,
		Construction: s.Construction,
		Parent:       s.Parent,
		Boundary:     s.Boundary,
		AdjacentTo:   s.AdjacentTo,
	}
}
