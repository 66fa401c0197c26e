package viewport

import "testing"

func TestClampZoom(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		in   int
		want int
	}{
		{"graveyard in range", TierGraveyard, 3, 3},
		{"graveyard below min", TierGraveyard, 0, 1},
		{"graveyard above max", TierGraveyard, 9, 5},
		{"plot above its lower max", TierPlot, 5, 4},
		{"plot in range", TierPlot, 4, 4},
		{"grave above max", TierGrave, 6, 5},
		{"grave negative", TierGrave, -3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampZoom(tt.tier, tt.in); got != tt.want {
				t.Errorf("ClampZoom(%v, %d) = %d, want %d", tt.tier, tt.in, got, tt.want)
			}
		})
	}
}

func TestZoomStepsSaturate(t *testing.T) {
	// Stepping past the limit holds at the limit on every tier.
	if got := ZoomIn(TierGraveyard, 5); got != 5 {
		t.Errorf("ZoomIn at max = %d, want 5", got)
	}
	if got := ZoomIn(TierPlot, 4); got != 4 {
		t.Errorf("ZoomIn at plot max = %d, want 4", got)
	}
	if got := ZoomOut(TierGrave, 1); got != 1 {
		t.Errorf("ZoomOut at min = %d, want 1", got)
	}
	// Ordinary steps move by exactly one.
	if got := ZoomIn(TierGraveyard, 2); got != 3 {
		t.Errorf("ZoomIn(2) = %d, want 3", got)
	}
	if got := ZoomOut(TierPlot, 3); got != 2 {
		t.Errorf("ZoomOut(3) = %d, want 2", got)
	}
}

func TestNewClampsZoomAndKeepsPan(t *testing.T) {
	// Pan is unbounded and passes through untouched, including
	// negative offsets.
	vp := New(TierPlot, 99, Pan{X: -1200.5, Y: 3400})
	if vp.Zoom != 4 {
		t.Errorf("Zoom = %d, want 4", vp.Zoom)
	}
	if vp.Pan.X != -1200.5 || vp.Pan.Y != 3400 {
		t.Errorf("Pan = %+v, want {-1200.5 3400}", vp.Pan)
	}
}
