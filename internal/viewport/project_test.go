package viewport

import (
	"math"
	"testing"

	"github.com/marlenko/graveyard-management/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPixelsPerDegree(t *testing.T) {
	for zoom, want := range map[int]float64{1: 50, 2: 100, 3: 150, 5: 250} {
		if got := PixelsPerDegree(zoom); got != want {
			t.Errorf("PixelsPerDegree(%d) = %v, want %v", zoom, got, want)
		}
	}
}

func gmAt(id string, lat, lng float64) model.GraveyardMap {
	return model.GraveyardMap{ID: id, Center: model.GPSCoordinate{Latitude: lat, Longitude: lng}}
}

func TestAnchorIsMinimumAcrossMaps(t *testing.T) {
	maps := []model.GraveyardMap{
		gmAt("a", 40.7128, -74.0060),
		gmAt("b", 34.0522, -118.2437),
	}
	anchor, ok := Anchor(maps)
	if !ok {
		t.Fatal("Anchor reported no maps")
	}
	// The minimum latitude and longitude come from different maps when
	// neither dominates the other.
	if anchor.Latitude != 34.0522 || anchor.Longitude != -118.2437 {
		t.Errorf("anchor = %+v, want {34.0522 -118.2437}", anchor)
	}
}

func TestAnchorStableUnderReordering(t *testing.T) {
	a := gmAt("a", 40.7128, -74.0060)
	b := gmAt("b", 34.0522, -118.2437)
	c := gmAt("c", 47.6062, -122.3321)

	first, _ := Anchor([]model.GraveyardMap{a, b, c})
	second, _ := Anchor([]model.GraveyardMap{c, a, b})
	if first != second {
		t.Errorf("anchor depends on order: %+v vs %+v", first, second)
	}

	// Removing a non-minimal map leaves the anchor untouched.
	third, _ := Anchor([]model.GraveyardMap{b, c})
	if third != first {
		t.Errorf("anchor moved after removing non-minimal map: %+v vs %+v", third, first)
	}
}

func TestAnchorEmpty(t *testing.T) {
	if _, ok := Anchor(nil); ok {
		t.Error("Anchor(nil) reported ok")
	}
}

func TestProjectGraveyard(t *testing.T) {
	anchor := model.GPSCoordinate{Latitude: 34.0522, Longitude: -118.2437}
	m := gmAt("a", 34.0622, -118.2337) // +0.01 degrees on both axes

	// At zoom 3 one degree is 150 pixels, so 0.01 degrees is 1.5 px
	// from the surface midpoint.
	vp := New(TierGraveyard, 3, Pan{})
	pt := ProjectGraveyard(m, anchor, vp)
	if !almostEqual(pt.X, GraveyardSurfaceWidth/2+1.5) {
		t.Errorf("X = %v, want %v", pt.X, GraveyardSurfaceWidth/2+1.5)
	}
	if !almostEqual(pt.Y, GraveyardSurfaceHeight/2+1.5) {
		t.Errorf("Y = %v, want %v", pt.Y, GraveyardSurfaceHeight/2+1.5)
	}

	// The map sitting on the anchor projects to the midpoint plus pan.
	vp = New(TierGraveyard, 3, Pan{X: 10, Y: -20})
	pt = ProjectGraveyard(gmAt("b", anchor.Latitude, anchor.Longitude), anchor, vp)
	if !almostEqual(pt.X, GraveyardSurfaceWidth/2+10) || !almostEqual(pt.Y, GraveyardSurfaceHeight/2-20) {
		t.Errorf("anchored map = %+v", pt)
	}
}

func TestProjectPlotScalesWithZoom(t *testing.T) {
	m := model.PlotMap{
		Position: model.ScreenPoint{X: 50, Y: 50},
		Size:     model.ScreenSize{Width: 150, Height: 200},
	}

	// Zoom 1 is the identity scale.
	pos, size := ProjectPlot(m, New(TierPlot, 1, Pan{}))
	if pos != m.Position || size != m.Size {
		t.Errorf("zoom 1 changed geometry: %+v %+v", pos, size)
	}

	// Zoom 2 doubles everything; pan shifts the position only.
	pos, size = ProjectPlot(m, New(TierPlot, 2, Pan{X: 5, Y: -5}))
	if !almostEqual(pos.X, 105) || !almostEqual(pos.Y, 95) {
		t.Errorf("pos = %+v, want {105 95}", pos)
	}
	if !almostEqual(size.Width, 300) || !almostEqual(size.Height, 400) {
		t.Errorf("size = %+v, want {300 400}", size)
	}
}

func TestProjectGraveCell(t *testing.T) {
	// At zoom 2 the cell is 50x60, so cell (1,2) sits at
	// padding + 2*50 on x and padding + 1*60 on y.
	vp := New(TierGrave, 2, Pan{})
	pt := ProjectGraveCell(model.GridCell{Row: 1, Column: 2}, vp)
	if !almostEqual(pt.X, GridPadding+100) {
		t.Errorf("X = %v, want %v", pt.X, GridPadding+100)
	}
	if !almostEqual(pt.Y, GridPadding+60) {
		t.Errorf("Y = %v, want %v", pt.Y, GridPadding+60)
	}

	// Cell (0,0) starts at the padding corner; pan offsets apply.
	pt = ProjectGraveCell(model.GridCell{}, New(TierGrave, 3, Pan{X: -40, Y: -40}))
	if !almostEqual(pt.X, 0) || !almostEqual(pt.Y, 0) {
		t.Errorf("origin cell = %+v, want {0 0}", pt)
	}
}

func TestGridSurface(t *testing.T) {
	// 5 rows by 10 columns at zoom 2: width 10*50 + 80, height 5*60 + 80.
	size := GridSurface(5, 10, New(TierGrave, 2, Pan{}))
	if !almostEqual(size.Width, 580) {
		t.Errorf("Width = %v, want 580", size.Width)
	}
	if !almostEqual(size.Height, 380) {
		t.Errorf("Height = %v, want 380", size.Height)
	}
}
