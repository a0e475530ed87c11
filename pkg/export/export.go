// Package export converts the surface model into triangle meshes and
// writes STL or OBJ output for viewing the geometry.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/samuelduchesne/geomeppy/pkg/model"
)

// Triangles tessellates every surface with geometry into a flat
// triangle soup, preserving each surface's winding so face normals
// stay meaningful.
func Triangles(st *model.Store) []*sdf.Triangle3 {
	var tris []*sdf.Triangle3
	for _, s := range st.Surfaces() {
		if !s.HasGeometry() {
			continue
		}
		for _, t := range s.Polygon().Triangulate() {
			tris = append(tris, &sdf.Triangle3{
				v3.Vec{X: t[0].X(), Y: t[0].Y(), Z: t[0].Z()},
				v3.Vec{X: t[1].X(), Y: t[1].Y(), Z: t[1].Z()},
				v3.Vec{X: t[2].X(), Y: t[2].Y(), Z: t[2].Z()},
			})
		}
	}
	return tris
}

// WriteSTL writes the whole model as a binary STL file.
func WriteSTL(st *model.Store, path string) error {
	return render.SaveSTL(path, Triangles(st))
}

// objWriter accumulates the first write error so the export code can
// stay linear.
type objWriter struct {
	w   io.Writer
	err error
}

func (o *objWriter) printf(format string, args ...interface{}) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format, args...)
}

// WriteOBJ writes the model as Wavefront OBJ, one object per surface.
// Faces are emitted as n-gons; OBJ viewers triangulate on load.
func WriteOBJ(st *model.Store, w io.Writer) error {
	o := &objWriter{w: w}
	o.printf("# surface model\n")
	index := 1
	for _, s := range st.Surfaces() {
		if !s.HasGeometry() {
			continue
		}
		o.printf("o %s\n", strings.ReplaceAll(s.Name, " ", "_"))
		for _, pt := range s.Vertices {
			o.printf("v %g %g %g\n", pt.X(), pt.Y(), pt.Z())
		}
		o.printf("f")
		for i := range s.Vertices {
			o.printf(" %d", index+i)
		}
		o.printf("\n")
		index += len(s.Vertices)
	}
	return o.err
}
