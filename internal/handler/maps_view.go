package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/marlenko/graveyard-management/internal/model"
	"github.com/marlenko/graveyard-management/internal/viewport"
)

// Read path of the map hierarchy: raw listings plus the three scene
// endpoints that project coordinates into pixel space.  These routes
// are public and sit behind the Redis response cache.

// parseViewport reads zoom, pan_x and pan_y query parameters and
// clamps the zoom to the tier's range.
func parseViewport(c echo.Context, tier viewport.Tier, defaultZoom int) viewport.Viewport {
	zoom := defaultZoom
	if s := c.QueryParam("zoom"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			zoom = n
		}
	}
	var pan viewport.Pan
	if s := c.QueryParam("pan_x"); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			pan.X = f
		}
	}
	if s := c.QueryParam("pan_y"); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			pan.Y = f
		}
	}
	return viewport.New(tier, zoom, pan)
}

// ListGraveyardMaps handles GET /v1/graveyard-maps and returns every
// graveyard map with its resolved display name.
func (h *MapHandler) ListGraveyardMaps(c echo.Context) error {
	maps := h.Maps.GraveyardMaps()
	type entry struct {
		model.GraveyardMap
		Name string `json:"name"`
	}
	out := make([]entry, 0, len(maps))
	for _, m := range maps {
		out = append(out, entry{GraveyardMap: m, Name: h.Registry.GraveyardName(m.GraveyardID)})
	}
	return c.JSON(http.StatusOK, out)
}

// graveyardMarker is one projected marker on the graveyard scene.
type graveyardMarker struct {
	ID          string              `json:"id"`
	GraveyardID string              `json:"graveyardId"`
	Name        string              `json:"name"`
	Center      model.GPSCoordinate `json:"center"`
	Screen      model.ScreenPoint   `json:"screen"`
}

// GraveyardScene handles GET /v1/graveyard-maps/scene.  Marker
// positions are projected against the minimum-coordinate anchor so the
// layout does not shift when maps are reordered.
func (h *MapHandler) GraveyardScene(c echo.Context) error {
	vp := parseViewport(c, viewport.TierGraveyard, 3)
	maps := h.Maps.GraveyardMaps()
	anchor, ok := viewport.Anchor(maps)
	markers := make([]graveyardMarker, 0, len(maps))
	if ok {
		for _, m := range maps {
			markers = append(markers, graveyardMarker{
				ID:          m.ID,
				GraveyardID: m.GraveyardID,
				Name:        h.Registry.GraveyardName(m.GraveyardID),
				Center:      m.Center,
				Screen:      viewport.ProjectGraveyard(m, anchor, vp),
			})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"zoom":    vp.Zoom,
		"pan":     vp.Pan,
		"width":   viewport.GraveyardSurfaceWidth,
		"height":  viewport.GraveyardSurfaceHeight,
		"markers": markers,
	})
}

// ListPlotMaps handles GET /v1/graveyard-maps/:id/plot-maps, returning
// the plot maps of one graveyard map in insertion order.
func (h *MapHandler) ListPlotMaps(c echo.Context) error {
	if _, err := h.Maps.GraveyardMapByID(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "graveyard map not found"})
	}
	return c.JSON(http.StatusOK, h.Maps.PlotMapsByGraveyard(c.Param("id")))
}

// plotRect is one projected plot rectangle on the plot scene.
type plotRect struct {
	ID         string            `json:"id"`
	PlotID     string            `json:"plotId"`
	PlotNumber string            `json:"plotNumber"`
	Rows       int               `json:"rows"`
	Columns    int               `json:"columns"`
	Screen     model.ScreenPoint `json:"screen"`
	Size       model.ScreenSize  `json:"size"`
}

// PlotScene handles GET /v1/graveyard-maps/:id/plot-maps/scene.  Stored
// screen rectangles scale linearly with the zoom level.  Plots whose
// registry entry is missing keep rendering with "Unknown" labels.
func (h *MapHandler) PlotScene(c echo.Context) error {
	if _, err := h.Maps.GraveyardMapByID(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "graveyard map not found"})
	}
	vp := parseViewport(c, viewport.TierPlot, 2)
	plotMaps := h.Maps.PlotMapsByGraveyard(c.Param("id"))
	rects := make([]plotRect, 0, len(plotMaps))
	for _, pm := range plotMaps {
		pos, size := viewport.ProjectPlot(pm, vp)
		r := plotRect{
			ID:         pm.ID,
			PlotID:     pm.PlotID,
			PlotNumber: "Unknown",
			Screen:     pos,
			Size:       size,
		}
		if plot, ok := h.Registry.PlotByID(pm.PlotID); ok {
			r.PlotNumber = plot.PlotNumber
			r.Rows = plot.Rows
			r.Columns = plot.Columns
		}
		rects = append(rects, r)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"zoom":   vp.Zoom,
		"pan":    vp.Pan,
		"width":  viewport.PlotSurfaceWidth,
		"height": viewport.PlotSurfaceHeight,
		"plots":  rects,
	})
}

// ListGraveMaps handles GET /v1/plot-maps/:id/grave-maps, returning the
// grave maps of one plot map in insertion order.
func (h *MapHandler) ListGraveMaps(c echo.Context) error {
	if _, err := h.Maps.PlotMapByID(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "plot map not found"})
	}
	return c.JSON(http.StatusOK, h.Maps.GraveMapsByPlot(c.Param("id")))
}

// graveCell is one projected grid cell on the grave scene.  Available
// is the binary availability view: true only when the referenced
// grave's status is exactly "available".
type graveCell struct {
	ID        string            `json:"id"`
	GraveID   string            `json:"graveId"`
	Label     string            `json:"label"`
	GridCell  model.GridCell    `json:"gridPosition"`
	Screen    model.ScreenPoint `json:"screen"`
	Available bool              `json:"available"`
}

// GraveScene handles GET /v1/plot-maps/:id/grave-maps/scene.  Cell origins
// derive from the grid indices; the surface size comes from the plot's
// declared row/column dimensions.
func (h *MapHandler) GraveScene(c echo.Context) error {
	pm, err := h.Maps.PlotMapByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "plot map not found"})
	}
	vp := parseViewport(c, viewport.TierGrave, 2)

	plotNumber := "Unknown"
	rows, columns := 0, 0
	if plot, ok := h.Registry.PlotByID(pm.PlotID); ok {
		plotNumber = plot.PlotNumber
		rows = plot.Rows
		columns = plot.Columns
	}

	graveMaps := h.Maps.GraveMapsByPlot(pm.ID)
	cells := make([]graveCell, 0, len(graveMaps))
	for _, gm := range graveMaps {
		label := "Unknown"
		if grave, ok := h.Registry.GraveByID(gm.GraveID); ok {
			label = "Grave " + grave.GraveNumber
		}
		cells = append(cells, graveCell{
			ID:        gm.ID,
			GraveID:   gm.GraveID,
			Label:     label,
			GridCell:  gm.GridCell,
			Screen:    viewport.ProjectGraveCell(gm.GridCell, vp),
			Available: h.Registry.GraveAvailable(gm.GraveID),
		})
	}

	surface := viewport.GridSurface(rows, columns, vp)
	return c.JSON(http.StatusOK, echo.Map{
		"zoom":       vp.Zoom,
		"pan":        vp.Pan,
		"plotNumber": plotNumber,
		"rows":       rows,
		"columns":    columns,
		"cellSize":   viewport.CellSize(vp.Zoom),
		"surface":    surface,
		"cells":      cells,
	})
}

// ListBurialRecords handles GET /v1/burial-records: the read-only
// {id,name} list that populates the payment form.
func (h *MapHandler) ListBurialRecords(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Registry.BurialRecords())
}
