// Package intersect turns overlapping block geometry into a disjoint,
// matched surface set: a candidate-pair selector prunes the search, a
// splitter rewrites overlapping pairs as non-overlapping pieces, and a
// matcher links the pieces that face each other.
package intersect

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/samuelduchesne/geomeppy/pkg/geom"
	"github.com/samuelduchesne/geomeppy/pkg/model"
)

// Pair is a candidate surface pair worth testing for overlap.
type Pair struct {
	A, B *model.Surface
}

// treeEntry adapts a surface to the rtreego Spatial interface.
type treeEntry struct {
	surface *model.Surface
	rect    rtreego.Rect
}

func (e *treeEntry) Bounds() rtreego.Rect {
	return e.rect
}

func boundsRect(p geom.Polygon) rtreego.Rect {
	min, max := p.Bounds()
	// pad so flat boxes have volume and touching boxes intersect
	const pad = geom.Epsilon
	rect, _ := rtreego.NewRect(
		rtreego.Point{min.X() - pad, min.Y() - pad, min.Z() - pad},
		[]float64{max.X() - min.X() + 2*pad, max.Y() - min.Y() + 2*pad, max.Z() - min.Z() + 2*pad},
	)
	return rect
}

// CandidatePairs returns the surface pairs that the intersection
// engine must test: matchable types, bounding boxes intersecting (via
// a 3D R-tree), different zones, and coplanar polygons. Pairs come out
// ordered by store position so split naming is deterministic. The
// pruning is an optimization only; every truly overlapping coplanar
// pair survives it.
func CandidatePairs(st *model.Store) []Pair {
	surfaces := st.Surfaces(model.MatchableTypes()...)

	position := make(map[*model.Surface]int, len(surfaces))
	tree := rtreego.NewTree(3, 25, 50)
	for i, s := range surfaces {
		position[s] = i
		if !s.HasGeometry() {
			continue
		}
		tree.Insert(&treeEntry{surface: s, rect: boundsRect(s.Polygon())})
	}

	var pairs []Pair
	for i, s := range surfaces {
		if !s.HasGeometry() {
			continue
		}
		poly := s.Polygon()
		hits := tree.SearchIntersect(boundsRect(poly))

		var partners []*model.Surface
		for _, hit := range hits {
			other := hit.(*treeEntry).surface
			if position[other] <= i {
				continue
			}
			if other.Zone != "" && other.Zone == s.Zone {
				continue
			}
			if !poly.IsCoplanar(other.Polygon()) {
				continue
			}
			partners = append(partners, other)
		}
		sort.Slice(partners, func(a, b int) bool {
			return position[partners[a]] < position[partners[b]]
		})
		for _, other := range partners {
			pairs = append(pairs, Pair{A: s, B: other})
		}
	}
	return pairs
}
