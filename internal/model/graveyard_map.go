package model

import "time"

// GraveyardMap anchors a graveyard to GPS coordinates.  It is the top
// tier of the spatial hierarchy; plot maps reference it by ID.
//
// Fields:
//  ID          – store-generated identifier (gm- prefix).
//  GraveyardID – foreign key into the graveyard registry.
//  Center      – GPS center of the graveyard.
//  ZoomLevel   – default zoom used when the map is first rendered.
//  Bounds      – bounding box; must enclose Center.
//  CreatedAt   – creation timestamp.
type GraveyardMap struct {
	ID          string        `json:"id"`
	GraveyardID string        `json:"graveyardId"`
	Center      GPSCoordinate `json:"center"`
	ZoomLevel   int           `json:"zoomLevel"`
	Bounds      Bounds        `json:"bounds"`
	CreatedAt   time.Time     `json:"createdAt"`
}
