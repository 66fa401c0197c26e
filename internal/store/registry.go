package store

import "github.com/marlenko/graveyard-management/internal/model"

// Registry is the read-only reference data collaborator: graveyard,
// plot and grave records plus the burial-record list for the payment
// form.  It never changes after construction, so no locking is needed.
type Registry struct {
	graveyards    []model.Graveyard
	plots         []model.Plot
	graves        []model.Grave
	burialRecords []model.BurialRecord
}

// NewRegistry builds a registry from the given reference lists.
func NewRegistry(graveyards []model.Graveyard, plots []model.Plot, graves []model.Grave, records []model.BurialRecord) *Registry {
	return &Registry{
		graveyards:    graveyards,
		plots:         plots,
		graves:        graves,
		burialRecords: records,
	}
}

// GraveyardName resolves a graveyard ID to its display name, falling
// back to "Unknown" for a dangling reference.
func (r *Registry) GraveyardName(id string) string {
	for _, g := range r.graveyards {
		if g.ID == id {
			return g.Name
		}
	}
	return "Unknown"
}

// PlotByID returns the plot registry entry, if any.
func (r *Registry) PlotByID(id string) (model.Plot, bool) {
	for _, p := range r.plots {
		if p.ID == id {
			return p, true
		}
	}
	return model.Plot{}, false
}

// GraveByID returns the grave registry entry, if any.
func (r *Registry) GraveByID(id string) (model.Grave, bool) {
	for _, g := range r.graves {
		if g.ID == id {
			return g, true
		}
	}
	return model.Grave{}, false
}

// GraveAvailable reports whether the referenced grave's status is the
// availability literal.  A dangling reference counts as occupied.
func (r *Registry) GraveAvailable(id string) bool {
	g, ok := r.GraveByID(id)
	return ok && g.Status == model.GraveStatusAvailable
}

// GravesByPlot returns the graves belonging to a plot, in registry order.
func (r *Registry) GravesByPlot(plotID string) []model.Grave {
	var out []model.Grave
	for _, g := range r.graves {
		if g.PlotID == plotID {
			out = append(out, g)
		}
	}
	return out
}

// BurialRecords returns a copy of the burial-record list.
func (r *Registry) BurialRecords() []model.BurialRecord {
	out := make([]model.BurialRecord, len(r.burialRecords))
	copy(out, r.burialRecords)
	return out
}
