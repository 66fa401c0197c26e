// Package viewport derives on-screen pixel positions from the raw
// geographic and grid coordinates held in the map store.  The math is
// deliberately naive: latitude and longitude scale linearly into pixel
// space, there is no projection or great-circle geometry.
package viewport

// Tier identifies one level of the map hierarchy.  Zoom limits differ
// per tier.
type Tier int

const (
	TierGraveyard Tier = iota
	TierPlot
	TierGrave
)

// MinZoom is the lowest zoom level on every tier.
const MinZoom = 1

// MaxZoom returns the highest zoom level for the tier: 5 for the
// graveyard and grave tiers, 4 for the plot tier.
func MaxZoom(t Tier) int {
	if t == TierPlot {
		return 4
	}
	return 5
}

// ClampZoom saturates a zoom level to the tier's [MinZoom, MaxZoom] range.
func ClampZoom(t Tier, level int) int {
	if level < MinZoom {
		return MinZoom
	}
	if max := MaxZoom(t); level > max {
		return max
	}
	return level
}

// ZoomIn steps the level up by one, saturating at the tier maximum.
func ZoomIn(t Tier, level int) int {
	return ClampZoom(t, level+1)
}

// ZoomOut steps the level down by one, saturating at MinZoom.
func ZoomOut(t Tier, level int) int {
	return ClampZoom(t, level-1)
}

// Pan is a free-form 2-D offset applied to the whole drawing surface.
// It has no bounds.
type Pan struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport bundles the zoom level and pan offset a renderer should
// apply.  Construct it through New so the zoom is always clamped.
type Viewport struct {
	Tier Tier
	Zoom int
	Pan  Pan
}

// New builds a viewport for the tier with the zoom clamped to range.
func New(t Tier, zoom int, pan Pan) Viewport {
	return Viewport{Tier: t, Zoom: ClampZoom(t, zoom), Pan: pan}
}
