package handler

import (
	"net/http"

	"planetapi/internal/delivery/api/response"
	"planetapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the service can reach its store.
type HealthHandler struct {
	planetUC usecase.PlanetUsecase
}

func NewHealthHandler(planetUC usecase.PlanetUsecase) *HealthHandler {
	return &HealthHandler{planetUC: planetUC}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	if err := h.planetUC.CheckHealth(c.Request().Context()); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
