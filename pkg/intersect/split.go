package intersect

import (
	"fmt"
	"log"

	"github.com/samuelduchesne/geomeppy/pkg/geom"
	"github.com/samuelduchesne/geomeppy/pkg/model"
)

// IntersectSurfaces splits every overlapping coplanar surface pair in
// the store until no candidate pair yields a non-trivial split. Each
// split removes the two originals and appends their pieces named
// <original>_<n>, with all non-geometric fields copied. Running it on
// an already disjoint model changes nothing, so the pass is
// idempotent. Surfaces without vertex data are skipped with a warning
// rather than aborting the whole model.
func IntersectSurfaces(st *model.Store) {
	for _, s := range st.Surfaces(model.MatchableTypes()...) {
		if !s.HasGeometry() && !s.MissingGeometryReported {
			s.MissingGeometryReported = true
			log.Printf("surface %q defines no vertices; skipping", s.Name)
		}
	}
	for splitOnce(st) {
	}
}

// splitOnce applies the first non-trivial split found and reports
// whether one happened. Candidates are recomputed after every
// mutation, so stale pairs never reach the engine.
func splitOnce(st *model.Store) bool {
	for _, pr := range CandidatePairs(st) {
		pa, pb := pr.A.Polygon(), pr.B.Polygon()
		aPieces, bPieces, ok := geom.SplitSides(pa, pb)
		if !ok {
			continue
		}
		if trivial(pa, aPieces) && trivial(pb, bPieces) {
			// exact coincidence or touching only; leave the pair for
			// the matcher
			continue
		}
		applySplit(st, pr.A, aPieces)
		applySplit(st, pr.B, bPieces)
		return true
	}
	return false
}

// trivial reports whether pieces is just the original region again.
func trivial(orig geom.Polygon, pieces []geom.Polygon) bool {
	return len(pieces) == 1 && pieces[0].SameRegion(orig)
}

func applySplit(st *model.Store, s *model.Surface, pieces []geom.Polygon) {
	st.Remove(s)
	n := 0
	for _, piece := range pieces {
		// skip suffixes the model already uses; a piece must never be
		// dropped over a name clash
		var name string
		for {
			n++
			name = fmt.Sprintf("%s_%d", s.Name, n)
			if st.Get(name) == nil {
				break
			}
			log.Printf("surface %q already exists; skipping the suffix", name)
		}
		ns := s.CloneMeta(name)
		ns.SetCoords(piece)
		if err := st.Add(ns); err != nil {
			log.Printf("could not add split piece %q: %v", name, err)
		}
	}
}
