package model

// GPSCoordinate is a raw geographic coordinate in decimal degrees.
// Positive latitude is north, positive longitude is east.
type GPSCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Bounds describes a north/south/east/west bounding box around a
// graveyard.  Values are decimal degrees, like GPSCoordinate.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Contains reports whether the coordinate lies inside the box
// (borders included).
func (b Bounds) Contains(c GPSCoordinate) bool {
	return c.Latitude <= b.North && c.Latitude >= b.South &&
		c.Longitude <= b.East && c.Longitude >= b.West
}

// ScreenPoint is a position on the 2-D drawing surface in pixels.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScreenSize is a width/height pair on the drawing surface in pixels.
type ScreenSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GridCell is a discrete row/column position inside a plot's grid.
// Both indices are zero-based.
type GridCell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}
