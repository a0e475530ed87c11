package model

import (
	"fmt"

	"github.com/samuelduchesne/geomeppy/pkg/geom"
)

// AddBlock appends the surfaces of an extruded block footprint: per
// storey one wall per footprint edge, a floor, and a roof (top storey)
// or ceiling. The footprint is an ordered (x, y) ring; counterclockwise
// order gives outward-facing wall normals. Floors are wound to face
// down and roofs/ceilings to face up.
func AddBlock(st *Store, name string, footprint [][2]float64, height float64, storeys int) error {
	if len(footprint) < 3 {
		return fmt.Errorf("model: block %q footprint needs at least 3 points, got %d", name, len(footprint))
	}
	if height <= 0 {
		return fmt.Errorf("model: block %q height must be positive", name)
	}
	if storeys < 1 {
		return fmt.Errorf("model: block %q needs at least one storey", name)
	}
	// drop an explicitly closed ring's repeated last point
	if len(footprint) > 3 {
		first, last := footprint[0], footprint[len(footprint)-1]
		if first == last {
			footprint = footprint[:len(footprint)-1]
		}
	}

	storeyHeight := height / float64(storeys)
	for storey := 1; storey <= storeys; storey++ {
		z0 := storeyHeight * float64(storey-1)
		z1 := storeyHeight * float64(storey)
		zone := fmt.Sprintf("Block %s Storey %d", name, storey)

		for i := range footprint {
			a := footprint[i]
			b := footprint[(i+1)%len(footprint)]
			wall := &Surface{
				Name: fmt.Sprintf("%s Wall %04d", zone, i+1),
				Type: Wall,
				Zone: zone,
				Vertices: []geom.Point{
					geom.P(a[0], a[1], z1),
					geom.P(a[0], a[1], z0),
					geom.P(b[0], b[1], z0),
					geom.P(b[0], b[1], z1),
				},
			}
			if err := st.Add(wall); err != nil {
				return err
			}
		}

		floor := &Surface{
			Name:     fmt.Sprintf("%s Floor 0001", zone),
			Type:     Floor,
			Zone:     zone,
			Vertices: ringAt(footprint, z0, true),
		}
		if err := st.Add(floor); err != nil {
			return err
		}

		topType := Ceiling
		topName := "Ceiling"
		if storey == storeys {
			topType = Roof
			topName = "Roof"
		}
		top := &Surface{
			Name:     fmt.Sprintf("%s %s 0001", zone, topName),
			Type:     topType,
			Zone:     zone,
			Vertices: ringAt(footprint, z1, false),
		}
		if err := st.Add(top); err != nil {
			return err
		}
	}
	return nil
}

// ringAt lifts the footprint to height z. Reversing the ring flips the
// winding so the surface faces down instead of up.
func ringAt(footprint [][2]float64, z float64, reverse bool) []geom.Point {
	pts := make([]geom.Point, len(footprint))
	for i, xy := range footprint {
		j := i
		if reverse {
			j = len(footprint) - 1 - i
		}
		pts[j] = geom.P(xy[0], xy[1], z)
	}
	return pts
}
