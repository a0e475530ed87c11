package intersect

import (
	"github.com/samuelduchesne/geomeppy/pkg/geom"
	"github.com/samuelduchesne/geomeppy/pkg/model"
)

// Adjacency records one discovered facing pair: two surfaces that
// occupy the same footprint from opposite sides. Adjacencies are
// transient; MatchSurfaces persists them as boundary conditions.
type Adjacency struct {
	A, B *model.Surface
}

// Adjacencies pairs up surfaces that are coplanar with identical
// footprints and opposite winding. Pairing is 1:1: once a surface is
// matched it leaves the candidate pool. Surfaces are considered in the
// order given, so ties resolve to the earliest candidate.
func Adjacencies(surfaces []*model.Surface) []Adjacency {
	var out []Adjacency
	matched := make(map[*model.Surface]bool)
	for i, a := range surfaces {
		if matched[a] || !a.HasGeometry() {
			continue
		}
		pa := a.Polygon()
		for _, b := range surfaces[i+1:] {
			if matched[b] || !b.HasGeometry() {
				continue
			}
			pb := b.Polygon()
			if !pa.IsCoplanar(pb) {
				continue
			}
			if !pa.Equal(pb.Invert()) {
				continue
			}
			matched[a], matched[b] = true, true
			out = append(out, Adjacency{A: a, B: b})
			break
		}
	}
	return out
}

// MatchSurfaces assigns boundary conditions across a fully split
// store. Facing pairs become boundary "surface" with mutual partner
// references. Everything unmatched gets its default: walls face
// outdoors unless entirely at or below groundLevel (then ground),
// floors face ground, roofs and ceilings face outdoors. Windows,
// doors and shading are never touched.
func MatchSurfaces(st *model.Store, groundLevel float64) {
	surfaces := st.Surfaces(model.MatchableTypes()...)

	matched := make(map[*model.Surface]bool)
	for _, adj := range Adjacencies(surfaces) {
		adj.A.Boundary = model.BoundarySurface
		adj.A.AdjacentTo = adj.B.Name
		adj.B.Boundary = model.BoundarySurface
		adj.B.AdjacentTo = adj.A.Name
		matched[adj.A] = true
		matched[adj.B] = true
	}

	for _, s := range surfaces {
		if matched[s] || !s.HasGeometry() {
			continue
		}
		s.AdjacentTo = ""
		switch s.Type {
		case model.Wall:
			if belowGround(s.Polygon(), groundLevel) {
				s.Boundary = model.BoundaryGround
			} else {
				s.Boundary = model.BoundaryOutdoors
			}
		case model.Floor:
			s.Boundary = model.BoundaryGround
		case model.Roof, model.Ceiling:
			s.Boundary = model.BoundaryOutdoors
		}
	}
}

// belowGround reports whether the whole polygon sits at or below the
// ground plane.
func belowGround(p geom.Polygon, groundLevel float64) bool {
	for _, z := range p.Zs() {
		if z > groundLevel+geom.Epsilon {
			return false
		}
	}
	return true
}
