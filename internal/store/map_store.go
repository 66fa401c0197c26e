package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marlenko/graveyard-management/internal/model"
)

// MapStore holds the three nested map collections.  Slices keep
// insertion order; filtered lookups return entries in that order.
//
// Inserts do not verify foreign keys: callers are responsible for
// referencing an existing parent.  Deletes cascade transitively, so
// removing a graveyard map also removes the grave maps of its plot
// maps, not just the plot maps themselves.
type MapStore struct {
	mu            sync.RWMutex
	graveyardMaps []model.GraveyardMap
	plotMaps      []model.PlotMap
	graveMaps     []model.GraveMap
}

// NewMapStore returns an empty store.
func NewMapStore() *MapStore {
	return &MapStore{}
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// ----- graveyard maps -----

// AddGraveyardMap assigns an ID and creation time and appends the map.
// The bounding box must enclose the center coordinate.
func (s *MapStore) AddGraveyardMap(m model.GraveyardMap) (model.GraveyardMap, error) {
	if !m.Bounds.Contains(m.Center) {
		return model.GraveyardMap{}, ErrBoundsExcludeCenter
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = newID("gm")
	m.CreatedAt = time.Now().UTC()
	s.graveyardMaps = append(s.graveyardMaps, m)
	return m, nil
}

// GraveyardMapPatch carries the optional fields of a partial update.
// Nil fields keep their current value.
type GraveyardMapPatch struct {
	GraveyardID *string
	Center      *model.GPSCoordinate
	ZoomLevel   *int
	Bounds      *model.Bounds
}

// UpdateGraveyardMap merges the patch into the stored map and returns
// the result.  The merged bounds must still enclose the merged center.
func (s *MapStore) UpdateGraveyardMap(id string, p GraveyardMapPatch) (model.GraveyardMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.graveyardMaps {
		if s.graveyardMaps[i].ID != id {
			continue
		}
		m := s.graveyardMaps[i]
		if p.GraveyardID != nil {
			m.GraveyardID = *p.GraveyardID
		}
		if p.Center != nil {
			m.Center = *p.Center
		}
		if p.ZoomLevel != nil {
			m.ZoomLevel = *p.ZoomLevel
		}
		if p.Bounds != nil {
			m.Bounds = *p.Bounds
		}
		if !m.Bounds.Contains(m.Center) {
			return model.GraveyardMap{}, ErrBoundsExcludeCenter
		}
		s.graveyardMaps[i] = m
		return m, nil
	}
	return model.GraveyardMap{}, ErrGraveyardMapNotFound
}

// DeleteGraveyardMap removes the map, its plot maps and the grave maps
// of those plot maps.
func (s *MapStore) DeleteGraveyardMap(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	kept := s.graveyardMaps[:0]
	for _, m := range s.graveyardMaps {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return ErrGraveyardMapNotFound
	}
	s.graveyardMaps = kept

	orphaned := map[string]bool{}
	plots := s.plotMaps[:0]
	for _, pm := range s.plotMaps {
		if pm.GraveyardMapID == id {
			orphaned[pm.ID] = true
			continue
		}
		plots = append(plots, pm)
	}
	s.plotMaps = plots

	graves := s.graveMaps[:0]
	for _, gm := range s.graveMaps {
		if orphaned[gm.PlotMapID] {
			continue
		}
		graves = append(graves, gm)
	}
	s.graveMaps = graves
	return nil
}

// GraveyardMapByID returns the map with the given ID.
func (s *MapStore) GraveyardMapByID(id string) (model.GraveyardMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.graveyardMaps {
		if m.ID == id {
			return m, nil
		}
	}
	return model.GraveyardMap{}, ErrGraveyardMapNotFound
}

// GraveyardMaps returns a copy of all graveyard maps in insertion order.
func (s *MapStore) GraveyardMaps() []model.GraveyardMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.GraveyardMap, len(s.graveyardMaps))
	copy(out, s.graveyardMaps)
	return out
}

// ----- plot maps -----

// AddPlotMap assigns an ID and creation time and appends the plot map.
// The corner coordinates are stored as given; a degenerate quadrilateral
// is not rejected.
func (s *MapStore) AddPlotMap(m model.PlotMap) (model.PlotMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = newID("pm")
	m.CreatedAt = time.Now().UTC()
	s.plotMaps = append(s.plotMaps, m)
	return m, nil
}

// PlotMapPatch carries the optional fields of a partial plot map update.
type PlotMapPatch struct {
	PlotID         *string
	GraveyardMapID *string
	TopLeft        *model.GPSCoordinate
	TopRight       *model.GPSCoordinate
	BottomLeft     *model.GPSCoordinate
	BottomRight    *model.GPSCoordinate
	Position       *model.ScreenPoint
	Size           *model.ScreenSize
}

// UpdatePlotMap merges the patch into the stored plot map.
func (s *MapStore) UpdatePlotMap(id string, p PlotMapPatch) (model.PlotMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plotMaps {
		if s.plotMaps[i].ID != id {
			continue
		}
		m := s.plotMaps[i]
		if p.PlotID != nil {
			m.PlotID = *p.PlotID
		}
		if p.GraveyardMapID != nil {
			m.GraveyardMapID = *p.GraveyardMapID
		}
		if p.TopLeft != nil {
			m.TopLeft = *p.TopLeft
		}
		if p.TopRight != nil {
			m.TopRight = *p.TopRight
		}
		if p.BottomLeft != nil {
			m.BottomLeft = *p.BottomLeft
		}
		if p.BottomRight != nil {
			m.BottomRight = *p.BottomRight
		}
		if p.Position != nil {
			m.Position = *p.Position
		}
		if p.Size != nil {
			m.Size = *p.Size
		}
		s.plotMaps[i] = m
		return m, nil
	}
	return model.PlotMap{}, ErrPlotMapNotFound
}

// DeletePlotMap removes the plot map and all grave maps that reference it.
func (s *MapStore) DeletePlotMap(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	kept := s.plotMaps[:0]
	for _, m := range s.plotMaps {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return ErrPlotMapNotFound
	}
	s.plotMaps = kept

	graves := s.graveMaps[:0]
	for _, gm := range s.graveMaps {
		if gm.PlotMapID == id {
			continue
		}
		graves = append(graves, gm)
	}
	s.graveMaps = graves
	return nil
}

// PlotMapByID returns the plot map with the given ID.
func (s *MapStore) PlotMapByID(id string) (model.PlotMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.plotMaps {
		if m.ID == id {
			return m, nil
		}
	}
	return model.PlotMap{}, ErrPlotMapNotFound
}

// PlotMapsByGraveyard returns the plot maps whose GraveyardMapID
// matches, preserving insertion order.
func (s *MapStore) PlotMapsByGraveyard(graveyardMapID string) []model.PlotMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.PlotMap
	for _, m := range s.plotMaps {
		if m.GraveyardMapID == graveyardMapID {
			out = append(out, m)
		}
	}
	return out
}

// ----- grave maps -----

// AddGraveMap assigns an ID and creation time and appends the grave map.
// Grid cell uniqueness within the plot is not enforced.
func (s *MapStore) AddGraveMap(m model.GraveMap) (model.GraveMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = newID("grm")
	m.CreatedAt = time.Now().UTC()
	s.graveMaps = append(s.graveMaps, m)
	return m, nil
}

// GraveMapPatch carries the optional fields of a partial grave map update.
type GraveMapPatch struct {
	GraveID   *string
	PlotMapID *string
	Position  *model.GPSCoordinate
	GridCell  *model.GridCell
	Size      *model.ScreenSize
}

// UpdateGraveMap merges the patch into the stored grave map.
func (s *MapStore) UpdateGraveMap(id string, p GraveMapPatch) (model.GraveMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.graveMaps {
		if s.graveMaps[i].ID != id {
			continue
		}
		m := s.graveMaps[i]
		if p.GraveID != nil {
			m.GraveID = *p.GraveID
		}
		if p.PlotMapID != nil {
			m.PlotMapID = *p.PlotMapID
		}
		if p.Position != nil {
			m.Position = *p.Position
		}
		if p.GridCell != nil {
			m.GridCell = *p.GridCell
		}
		if p.Size != nil {
			m.Size = *p.Size
		}
		s.graveMaps[i] = m
		return m, nil
	}
	return model.GraveMap{}, ErrGraveMapNotFound
}

// DeleteGraveMap removes the grave map.  Nothing references grave maps,
// so there is no cascade.
func (s *MapStore) DeleteGraveMap(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.graveMaps {
		if m.ID == id {
			s.graveMaps = append(s.graveMaps[:i], s.graveMaps[i+1:]...)
			return nil
		}
	}
	return ErrGraveMapNotFound
}

// GraveMapByID returns the grave map with the given ID.
func (s *MapStore) GraveMapByID(id string) (model.GraveMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.graveMaps {
		if m.ID == id {
			return m, nil
		}
	}
	return model.GraveMap{}, ErrGraveMapNotFound
}

// GraveMapsByPlot returns the grave maps whose PlotMapID matches,
// preserving insertion order.
func (s *MapStore) GraveMapsByPlot(plotMapID string) []model.GraveMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.GraveMap
	for _, m := range s.graveMaps {
		if m.PlotMapID == plotMapID {
			out = append(out, m)
		}
	}
	return out
}
