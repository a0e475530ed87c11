package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelduchesne/geomeppy/pkg/geom"
	"github.com/samuelduchesne/geomeppy/pkg/model"
)

func testStore(t *testing.T) *model.Store {
	t.Helper()
	st := model.NewStore()
	roof := &model.Surface{
		Name: "Roof 0001", Type: model.Roof, Zone: "z",
		Vertices: []geom.Point{geom.P(0, 0, 3), geom.P(4, 0, 3), geom.P(4, 4, 3), geom.P(0, 4, 3)},
	}
	empty := &model.Surface{Name: "no geometry", Type: model.Wall, Zone: "z"}
	for _, s := range []*model.Surface{roof, empty} {
		if err := st.Add(s); err != nil {
			t.Fatal(err)
		}
	}
	return st
}

func TestTriangles(t *testing.T) {
	tris := Triangles(testStore(t))
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2 for a quad", len(tris))
	}
	for _, tri := range tris {
		for _, v := range tri {
			if v.Z != 3 {
				t.Errorf("triangle vertex off the roof plane: %v", v)
			}
		}
		// the roof winds counterclockwise seen from above
		if n := tri.Normal(); n.Z <= 0 {
			t.Errorf("triangle normal %v does not face up", n)
		}
	}
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(testStore(t), &buf); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "o Roof_0001\n") {
		t.Error("object name missing or not underscore-escaped")
	}
	if got := strings.Count(out, "v "); got != 4 {
		t.Errorf("vertex count = %d, want 4", got)
	}
	if !strings.Contains(out, "f 1 2 3 4\n") {
		t.Error("face line missing")
	}
	if strings.Contains(out, "no geometry") {
		t.Error("vertex-less surface must be skipped")
	}
}

func TestWriteOBJPropagatesError(t *testing.T) {
	if err := WriteOBJ(testStore(t), failWriter{}); err == nil {
		t.Error("write error not propagated")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWriteSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	if err := WriteSTL(testStore(t), path); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	// binary STL: 80-byte header, 4-byte count, 50 bytes per triangle
	if want := int64(84 + 2*50); info.Size() != want {
		t.Errorf("file size = %d, want %d", info.Size(), want)
	}
}
