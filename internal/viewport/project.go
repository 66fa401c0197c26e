package viewport

import "github.com/marlenko/graveyard-management/internal/model"

// Drawing surface dimensions per tier, in pixels.  These mirror the
// fixed canvas sizes of the map screens.
const (
	GraveyardSurfaceWidth  = 800.0
	GraveyardSurfaceHeight = 500.0
	PlotSurfaceWidth       = 900.0
	PlotSurfaceHeight      = 600.0
)

// Grid cell geometry for the grave tier.  Cell dimensions scale
// linearly with zoom; padding is a fixed margin around the grid.
const (
	BaseCellWidth  = 25.0
	BaseCellHeight = 30.0
	GridPadding    = 40.0
)

// PixelsPerDegree is the linear degree-to-pixel scale at a zoom level.
func PixelsPerDegree(zoom int) float64 {
	return 50 * float64(zoom)
}

// Anchor returns the reference coordinate that graveyard markers are
// projected against: the minimum center latitude and longitude across
// all graveyard maps.  Unlike anchoring on the first list element,
// this stays stable when maps are reordered or removed from the front.
// ok is false when there are no maps to anchor on.
func Anchor(maps []model.GraveyardMap) (anchor model.GPSCoordinate, ok bool) {
	if len(maps) == 0 {
		return model.GPSCoordinate{}, false
	}
	anchor = maps[0].Center
	for _, m := range maps[1:] {
		if m.Center.Latitude < anchor.Latitude {
			anchor.Latitude = m.Center.Latitude
		}
		if m.Center.Longitude < anchor.Longitude {
			anchor.Longitude = m.Center.Longitude
		}
	}
	return anchor, true
}

// ProjectGraveyard places a graveyard map's center on the drawing
// surface: the surface midpoint offset by the coordinate's delta from
// the anchor, scaled by pixels-per-degree, plus the pan offset.
func ProjectGraveyard(m model.GraveyardMap, anchor model.GPSCoordinate, vp Viewport) model.ScreenPoint {
	ppd := PixelsPerDegree(vp.Zoom)
	return model.ScreenPoint{
		X: GraveyardSurfaceWidth/2 + (m.Center.Longitude-anchor.Longitude)*ppd + vp.Pan.X,
		Y: GraveyardSurfaceHeight/2 + (m.Center.Latitude-anchor.Latitude)*ppd + vp.Pan.Y,
	}
}

// ProjectPlot scales the stored screen rectangle by the zoom ratio
// (50*zoom over the base 50 pixels per unit) and applies the pan.
func ProjectPlot(m model.PlotMap, vp Viewport) (model.ScreenPoint, model.ScreenSize) {
	scale := PixelsPerDegree(vp.Zoom) / 50
	pos := model.ScreenPoint{
		X: m.Position.X*scale + vp.Pan.X,
		Y: m.Position.Y*scale + vp.Pan.Y,
	}
	size := model.ScreenSize{
		Width:  m.Size.Width * scale,
		Height: m.Size.Height * scale,
	}
	return pos, size
}

// CellSize returns the grave-tier cell dimensions at a zoom level.
func CellSize(zoom int) model.ScreenSize {
	return model.ScreenSize{
		Width:  BaseCellWidth * float64(zoom),
		Height: BaseCellHeight * float64(zoom),
	}
}

// ProjectGraveCell returns the pixel origin of a grid cell:
// padding + index * cell dimension on each axis, plus the pan offset.
func ProjectGraveCell(cell model.GridCell, vp Viewport) model.ScreenPoint {
	size := CellSize(vp.Zoom)
	return model.ScreenPoint{
		X: GridPadding + float64(cell.Column)*size.Width + vp.Pan.X,
		Y: GridPadding + float64(cell.Row)*size.Height + vp.Pan.Y,
	}
}

// GridSurface returns the total pixel area a rows x columns grid
// occupies including padding on all sides.
func GridSurface(rows, columns int, vp Viewport) model.ScreenSize {
	size := CellSize(vp.Zoom)
	return model.ScreenSize{
		Width:  float64(columns)*size.Width + GridPadding*2,
		Height: float64(rows)*size.Height + GridPadding*2,
	}
}
