package recipes

import (
	"math"
	"testing"

	"github.com/samuelduchesne/geomeppy/pkg/geom"
	"github.com/samuelduchesne/geomeppy/pkg/model"
)

func testWall(t *testing.T, st *model.Store, name string) *model.Surface {
	t.Helper()
	s := &model.Surface{
		Name: name, Type: model.Wall, Zone: "z", Boundary: model.BoundaryOutdoors,
		Vertices: []geom.Point{geom.P(0, 0, 3), geom.P(0, 0, 0), geom.P(4, 0, 0), geom.P(4, 0, 3)},
	}
	if err := st.Add(s); err != nil {
		t.Fatalf("Add(%s): %v", name, err)
	}
	return s
}

func TestTranslate(t *testing.T) {
	st := model.NewStore()
	s := testWall(t, st, "w")

	Translate(st, geom.P(10, -2, 1))
	if !geom.PointsEqual(s.Vertices[0], geom.P(10, -2, 4)) {
		t.Errorf("vertex after translate = %v", s.Vertices[0])
	}
}

func TestTranslateToOrigin(t *testing.T) {
	st := model.NewStore()
	s := &model.Surface{
		Name: "w", Type: model.Wall,
		Vertices: []geom.Point{
			geom.P(526005, 182010, 3), geom.P(526005, 182010, 0),
			geom.P(526009, 182010, 0), geom.P(526009, 182010, 3),
		},
	}
	if err := st.Add(s); err != nil {
		t.Fatal(err)
	}

	TranslateToOrigin(st)
	minX, minY := math.Inf(1), math.Inf(1)
	for _, pt := range s.Vertices {
		minX = math.Min(minX, pt.X())
		minY = math.Min(minY, pt.Y())
	}
	if math.Abs(minX) > geom.Epsilon || math.Abs(minY) > geom.Epsilon {
		t.Errorf("model minimum after move = (%v, %v), want origin", minX, minY)
	}
	if s.Vertices[0].Z() != 3 {
		t.Error("z coordinates must not move")
	}

	// empty store is a no-op
	TranslateToOrigin(model.NewStore())
}

func TestRotate(t *testing.T) {
	st := model.NewStore()
	s := &model.Surface{
		Name: "w", Type: model.Wall,
		Vertices: []geom.Point{geom.P(1, 0, 0), geom.P(1, 0, 2), geom.P(2, 0, 2)},
	}
	if err := st.Add(s); err != nil {
		t.Fatal(err)
	}

	Rotate(st, 90)
	if !geom.PointsEqual(s.Vertices[0], geom.P(0, 1, 0)) {
		t.Errorf("vertex after 90 degree rotation = %v, want (0, 1, 0)", s.Vertices[0])
	}
	Rotate(st, -90)
	if !geom.PointsEqual(s.Vertices[0], geom.P(1, 0, 0)) {
		t.Errorf("rotation did not round-trip: %v", s.Vertices[0])
	}
}

func TestScale(t *testing.T) {
	st := model.NewStore()
	s := &model.Surface{
		Name: "w", Type: model.Wall,
		Vertices: []geom.Point{geom.P(1, 2, 3), geom.P(1, 2, 0), geom.P(4, 2, 0)},
	}
	if err := st.Add(s); err != nil {
		t.Fatal(err)
	}

	Scale(st, 2, "xy")
	if !geom.PointsEqual(s.Vertices[0], geom.P(2, 4, 3)) {
		t.Errorf("vertex after xy scale = %v, want (2, 4, 3)", s.Vertices[0])
	}
	Scale(st, 0.5, "xyz")
	if !geom.PointsEqual(s.Vertices[0], geom.P(1, 2, 1.5)) {
		t.Errorf("vertex after xyz scale = %v, want (1, 2, 1.5)", s.Vertices[0])
	}
}

func TestSetWWR(t *testing.T) {
	st := model.NewStore()
	wall := testWall(t, st, "w")

	if err := SetWWR(st, 0.4, "glazing"); err != nil {
		t.Fatalf("SetWWR: %v", err)
	}
	win := st.Get("w window")
	if win == nil {
		t.Fatal("window not created")
	}
	if win.Type != model.Window || win.Parent != "w" || win.Construction != "glazing" {
		t.Errorf("window record wrong: %+v", win)
	}
	if win.Zone != wall.Zone {
		t.Error("window must inherit the wall's zone")
	}

	zs := win.Polygon().Zs()
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, z := range zs {
		minZ = math.Min(minZ, z)
		maxZ = math.Max(maxZ, z)
	}
	// glazed height is wwr times the wall height, centred on the wall
	if math.Abs((maxZ-minZ)-0.4*3) > geom.Epsilon {
		t.Errorf("window height = %v, want 1.2", maxZ-minZ)
	}
	if math.Abs((maxZ+minZ)/2-1.5) > geom.Epsilon {
		t.Errorf("window centre = %v, want 1.5", (maxZ+minZ)/2)
	}
	for _, x := range win.Polygon().Xs() {
		if x <= 0 || x >= 4 {
			t.Errorf("window x = %v, must be strictly inside the wall", x)
		}
	}
}

func TestSetWWRReplacesAndStrips(t *testing.T) {
	st := model.NewStore()
	testWall(t, st, "w")

	if err := SetWWR(st, 0.4, "glazing"); err != nil {
		t.Fatal(err)
	}
	if err := SetWWR(st, 0.2, "glazing"); err != nil {
		t.Fatalf("second SetWWR: %v", err)
	}
	if got := len(st.Surfaces(model.Window)); got != 1 {
		t.Fatalf("window count after replace = %d, want 1", got)
	}

	if err := SetWWR(st, 0, ""); err != nil {
		t.Fatalf("SetWWR(0): %v", err)
	}
	if got := len(st.Surfaces(model.Window)); got != 0 {
		t.Errorf("window count after strip = %d, want 0", got)
	}
}

func TestSetWWRSkipsInternalWalls(t *testing.T) {
	st := model.NewStore()
	wall := testWall(t, st, "party")
	wall.Boundary = model.BoundarySurface

	if err := SetWWR(st, 0.4, "glazing"); err != nil {
		t.Fatal(err)
	}
	if len(st.Surfaces(model.Window)) != 0 {
		t.Error("internal walls must not get windows")
	}
}

func TestSetWWRRange(t *testing.T) {
	st := model.NewStore()
	if err := SetWWR(st, 1, ""); err == nil {
		t.Error("wwr of 1 must be rejected")
	}
	if err := SetWWR(st, -0.1, ""); err == nil {
		t.Error("negative wwr must be rejected")
	}
}
