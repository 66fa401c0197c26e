// Package store holds the in-memory state of the application: the
// three-tier geo-map collections, the finance ledger and the read-only
// registry of graveyards, plots, graves and burial records.  Nothing
// in this package is persisted; each process start reseeds the same
// data.  Stores are guarded by mutexes so HTTP handlers can share them.
package store

import "errors"

// ErrGraveyardMapNotFound is returned when a graveyard map lookup
// yields no entry.
var ErrGraveyardMapNotFound = errors.New("graveyard map not found")

// ErrPlotMapNotFound is returned when a plot map lookup yields no entry.
var ErrPlotMapNotFound = errors.New("plot map not found")

// ErrGraveMapNotFound is returned when a grave map lookup yields no entry.
var ErrGraveMapNotFound = errors.New("grave map not found")

// ErrPaymentNotFound is returned when a payment lookup yields no entry.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrBoundsExcludeCenter is returned when a graveyard map's bounding
// box does not enclose its center coordinate.
var ErrBoundsExcludeCenter = errors.New("bounds do not enclose center")
