package model

import "time"

// PlotMap anchors a plot inside a graveyard map using four corner
// coordinates plus a precomputed screen rectangle.  Grave maps
// reference it by ID.
//
// The corners are stored as given; the store does not reject a
// degenerate quadrilateral.
type PlotMap struct {
	ID             string        `json:"id"`
	PlotID         string        `json:"plotId"`
	GraveyardMapID string        `json:"graveyardMapId"`
	TopLeft        GPSCoordinate `json:"topLeft"`
	TopRight       GPSCoordinate `json:"topRight"`
	BottomLeft     GPSCoordinate `json:"bottomLeft"`
	BottomRight    GPSCoordinate `json:"bottomRight"`
	Position       ScreenPoint   `json:"position"`
	Size           ScreenSize    `json:"size"`
	CreatedAt      time.Time     `json:"createdAt"`
}
