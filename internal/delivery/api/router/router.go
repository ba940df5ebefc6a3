// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"planetapi/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlanetHandler *handler.PlanetHandler
	HealthHandler *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	planetHandler *handler.PlanetHandler
	healthHandler *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		planetHandler: params.PlanetHandler,
		healthHandler: params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	planetsGroup := e.Group("/planets")
	{
		planetsGroup.POST("", r.planetHandler.CreatePlanet)
		planetsGroup.POST("/", r.planetHandler.CreatePlanet)
		planetsGroup.GET("", r.planetHandler.ListPlanets)
		planetsGroup.GET("/", r.planetHandler.ListPlanets)
		planetsGroup.GET("/:id", r.planetHandler.GetPlanet)
		planetsGroup.GET("/name/:name", r.planetHandler.GetPlanetByName)
		planetsGroup.DELETE("/:id", r.planetHandler.DeletePlanet)
	}
}
