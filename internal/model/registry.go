package model

// GraveStatusAvailable is the literal grave status that renders a cell
// as available; every other status renders as occupied.
const GraveStatusAvailable = "available"

// Graveyard is a registry entry naming a graveyard.  The registry is
// read-only reference data used to resolve display names.
type Graveyard struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Plot is a registry entry describing a burial plot and the declared
// dimensions of its grave grid.
type Plot struct {
	ID         string `json:"id"`
	PlotNumber string `json:"plotNumber"`
	Rows       int    `json:"rows"`
	Columns    int    `json:"columns"`
}

// Grave is a registry entry for an individual grave.  Status drives
// availability coloring on the grave map.
type Grave struct {
	ID          string `json:"id"`
	GraveNumber string `json:"graveNumber"`
	PlotID      string `json:"plotId"`
	Status      string `json:"status"`
}

// BurialRecord is the read-only {id, name} pair supplied by the
// burial-record collaborator to populate the payment form.
type BurialRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
