package model

import "time"

// GraveMap anchors an individual grave to a discrete grid cell inside
// a plot map, along with its raw GPS position and on-screen cell size.
//
// The store does not enforce that the grid cell is unique within the
// plot map or inside the plot's declared row/column bounds.
type GraveMap struct {
	ID        string        `json:"id"`
	GraveID   string        `json:"graveId"`
	PlotMapID string        `json:"plotMapId"`
	Position  GPSCoordinate `json:"position"`
	GridCell  GridCell      `json:"gridPosition"`
	Size      ScreenSize    `json:"size"`
	CreatedAt time.Time     `json:"createdAt"`
}
