package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"planetapi/internal/delivery/api/response"
	"planetapi/internal/delivery/api/validator"
	"planetapi/internal/domain/entity"
	"planetapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlanetHandlerParams holds dependencies for PlanetHandler, injected by Fx.
type PlanetHandlerParams struct {
	fx.In

	PlanetUC usecase.PlanetUsecase
	Logger   *slog.Logger
}

// PlanetHandler serves the /planets resource
type PlanetHandler struct {
	planetUC usecase.PlanetUsecase
	logger   *slog.Logger
}

func NewPlanetHandler(params PlanetHandlerParams) *PlanetHandler {
	return &PlanetHandler{
		planetUC: params.PlanetUC,
		logger:   params.Logger,
	}
}

// CreatePlanetRequest is the body of POST /planets. An "id" in the body is ignored.
type CreatePlanetRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=255"`
	Climate string `json:"climate" validate:"required,notblank,max=255"`
	Terrain string `json:"terrain" validate:"required,notblank,max=255"`
}

// CreatePlanet handles POST /planets
func (h *PlanetHandler) CreatePlanet(c echo.Context) error {
	var req CreatePlanetRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Request body is not a valid planet")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	planet, err := h.planetUC.Create(c.Request().Context(), &entity.Planet{
		Name:    req.Name,
		Climate: req.Climate,
		Terrain: req.Terrain,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusCreated, planet)
}

// ListPlanets handles GET /planets with optional climate and terrain filters
func (h *PlanetHandler) ListPlanets(c echo.Context) error {
	planets, err := h.planetUC.FindAll(c.Request().Context(), c.QueryParam("climate"), c.QueryParam("terrain"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, planets)
}

// GetPlanet handles GET /planets/:id
func (h *PlanetHandler) GetPlanet(c echo.Context) error {
	id, ok := parsePlanetID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Planet id must be a positive integer")
	}

	planet, err := h.planetUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, planet)
}

// GetPlanetByName handles GET /planets/name/:name
func (h *PlanetHandler) GetPlanetByName(c echo.Context) error {
	name, ok := planetNameParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_NAME", "Planet name is not a valid path segment")
	}

	planet, err := h.planetUC.FindByName(c.Request().Context(), name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, planet)
}

// DeletePlanet handles DELETE /planets/:id
func (h *PlanetHandler) DeletePlanet(c echo.Context) error {
	id, ok := parsePlanetID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Planet id must be a positive integer")
	}

	if err := h.planetUC.RemoveByID(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// planetNameParam decodes the :name segment. echo routes on URL.RawPath when
// it is set (an escaped "/" in the name), leaving the parameter still escaped.
func planetNameParam(c echo.Context) (string, bool) {
	name := c.Param("name")
	if c.Request().URL.RawPath == "" {
		return name, true
	}

	decoded, err := url.PathUnescape(name)
	if err != nil {
		return "", false
	}

	return decoded, true
}

func parsePlanetID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
