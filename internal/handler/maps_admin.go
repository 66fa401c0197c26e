package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/marlenko/graveyard-management/internal/model"
	"github.com/marlenko/graveyard-management/internal/store"
	"github.com/marlenko/graveyard-management/internal/viewport"
)

// MapHandler bundles the geo-map store and the registry for map
// endpoints.  Write operations live here; the read/view operations
// are in maps_view.go.
type MapHandler struct {
	Maps     *store.MapStore
	Registry *store.Registry
}

// NewMapHandler constructs a MapHandler and panics on nil dependencies.
func NewMapHandler(maps *store.MapStore, registry *store.Registry) *MapHandler {
	if maps == nil || registry == nil {
		panic("nil dependency passed to NewMapHandler")
	}
	return &MapHandler{Maps: maps, Registry: registry}
}

// ----- graveyard maps -----

type graveyardMapBody struct {
	GraveyardID *string              `json:"graveyardId"`
	Center      *model.GPSCoordinate `json:"center"`
	ZoomLevel   *int                 `json:"zoomLevel"`
	Bounds      *model.Bounds        `json:"bounds"`
}

// CreateGraveyardMap handles POST /v1/graveyard-maps.
func (h *MapHandler) CreateGraveyardMap(c echo.Context) error {
	var body graveyardMapBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.GraveyardID == nil || strings.TrimSpace(*body.GraveyardID) == "" ||
		body.Center == nil || body.Bounds == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "graveyardId, center and bounds are required"})
	}
	zoom := viewport.ClampZoom(viewport.TierGraveyard, intOr(body.ZoomLevel, 3))
	m, err := h.Maps.AddGraveyardMap(model.GraveyardMap{
		GraveyardID: strings.TrimSpace(*body.GraveyardID),
		Center:      *body.Center,
		ZoomLevel:   zoom,
		Bounds:      *body.Bounds,
	})
	if err != nil {
		if errors.Is(err, store.ErrBoundsExcludeCenter) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "bounds must enclose center"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create graveyard map"})
	}
	return c.JSON(http.StatusCreated, m)
}

// UpdateGraveyardMap handles PATCH /v1/graveyard-maps/:id with a
// partial merge.
func (h *MapHandler) UpdateGraveyardMap(c echo.Context) error {
	var body graveyardMapBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	patch := store.GraveyardMapPatch{
		GraveyardID: body.GraveyardID,
		Center:      body.Center,
		Bounds:      body.Bounds,
	}
	if body.ZoomLevel != nil {
		z := viewport.ClampZoom(viewport.TierGraveyard, *body.ZoomLevel)
		patch.ZoomLevel = &z
	}
	m, err := h.Maps.UpdateGraveyardMap(c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrGraveyardMapNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "graveyard map not found"})
		case errors.Is(err, store.ErrBoundsExcludeCenter):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "bounds must enclose center"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update graveyard map"})
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteGraveyardMap handles DELETE /v1/graveyard-maps/:id.  The
// delete cascades to the map's plots and their graves.
func (h *MapHandler) DeleteGraveyardMap(c echo.Context) error {
	if err := h.Maps.DeleteGraveyardMap(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "graveyard map not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- plot maps -----

type plotMapBody struct {
	PlotID         *string              `json:"plotId"`
	GraveyardMapID *string              `json:"graveyardMapId"`
	TopLeft        *model.GPSCoordinate `json:"topLeft"`
	TopRight       *model.GPSCoordinate `json:"topRight"`
	BottomLeft     *model.GPSCoordinate `json:"bottomLeft"`
	BottomRight    *model.GPSCoordinate `json:"bottomRight"`
	Position       *model.ScreenPoint   `json:"position"`
	Size           *model.ScreenSize    `json:"size"`
}

// CreatePlotMap handles POST /v1/plot-maps.
func (h *MapHandler) CreatePlotMap(c echo.Context) error {
	var body plotMapBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.PlotID == nil || strings.TrimSpace(*body.PlotID) == "" ||
		body.GraveyardMapID == nil || strings.TrimSpace(*body.GraveyardMapID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "plotId and graveyardMapId are required"})
	}
	m := model.PlotMap{
		PlotID:         strings.TrimSpace(*body.PlotID),
		GraveyardMapID: strings.TrimSpace(*body.GraveyardMapID),
	}
	if body.TopLeft != nil {
		m.TopLeft = *body.TopLeft
	}
	if body.TopRight != nil {
		m.TopRight = *body.TopRight
	}
	if body.BottomLeft != nil {
		m.BottomLeft = *body.BottomLeft
	}
	if body.BottomRight != nil {
		m.BottomRight = *body.BottomRight
	}
	if body.Position != nil {
		m.Position = *body.Position
	}
	if body.Size != nil {
		m.Size = *body.Size
	}
	created, err := h.Maps.AddPlotMap(m)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create plot map"})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdatePlotMap handles PATCH /v1/plot-maps/:id.
func (h *MapHandler) UpdatePlotMap(c echo.Context) error {
	var body plotMapBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	m, err := h.Maps.UpdatePlotMap(c.Param("id"), store.PlotMapPatch{
		PlotID:         body.PlotID,
		GraveyardMapID: body.GraveyardMapID,
		TopLeft:        body.TopLeft,
		TopRight:       body.TopRight,
		BottomLeft:     body.BottomLeft,
		BottomRight:    body.BottomRight,
		Position:       body.Position,
		Size:           body.Size,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "plot map not found"})
	}
	return c.JSON(http.StatusOK, m)
}

// DeletePlotMap handles DELETE /v1/plot-maps/:id.  The delete cascades
// to the plot's grave maps.
func (h *MapHandler) DeletePlotMap(c echo.Context) error {
	if err := h.Maps.DeletePlotMap(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "plot map not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- grave maps -----

type graveMapBody struct {
	GraveID   *string              `json:"graveId"`
	PlotMapID *string              `json:"plotMapId"`
	Position  *model.GPSCoordinate `json:"position"`
	GridCell  *model.GridCell      `json:"gridPosition"`
	Size      *model.ScreenSize    `json:"size"`
}

// CreateGraveMap handles POST /v1/grave-maps.
func (h *MapHandler) CreateGraveMap(c echo.Context) error {
	var body graveMapBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.GraveID == nil || strings.TrimSpace(*body.GraveID) == "" ||
		body.PlotMapID == nil || strings.TrimSpace(*body.PlotMapID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "graveId and plotMapId are required"})
	}
	if body.GridCell != nil && (body.GridCell.Row < 0 || body.GridCell.Column < 0) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "gridPosition must be non-negative"})
	}
	m := model.GraveMap{
		GraveID:   strings.TrimSpace(*body.GraveID),
		PlotMapID: strings.TrimSpace(*body.PlotMapID),
	}
	if body.Position != nil {
		m.Position = *body.Position
	}
	if body.GridCell != nil {
		m.GridCell = *body.GridCell
	}
	if body.Size != nil {
		m.Size = *body.Size
	}
	created, err := h.Maps.AddGraveMap(m)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create grave map"})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateGraveMap handles PATCH /v1/grave-maps/:id.
func (h *MapHandler) UpdateGraveMap(c echo.Context) error {
	var body graveMapBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.GridCell != nil && (body.GridCell.Row < 0 || body.GridCell.Column < 0) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "gridPosition must be non-negative"})
	}
	m, err := h.Maps.UpdateGraveMap(c.Param("id"), store.GraveMapPatch{
		GraveID:   body.GraveID,
		PlotMapID: body.PlotMapID,
		Position:  body.Position,
		GridCell:  body.GridCell,
		Size:      body.Size,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "grave map not found"})
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteGraveMap handles DELETE /v1/grave-maps/:id.
func (h *MapHandler) DeleteGraveMap(c echo.Context) error {
	if err := h.Maps.DeleteGraveMap(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "grave map not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}
