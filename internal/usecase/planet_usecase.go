package usecase

import (
	"context"

	"planetapi/internal/domain/entity"
)

// PlanetUsecase defines the interface for planet management use cases
type PlanetUsecase interface {
	// Create persists a new planet and returns it with its assigned ID
	Create(ctx context.Context, planet *entity.Planet) (*entity.Planet, error)

	// FindAll returns the planets matching the optional climate and terrain filters
	FindAll(ctx context.Context, climate, terrain string) ([]*entity.Planet, error)

	// FindByID returns the planet with the given ID
	FindByID(ctx context.Context, id int64) (*entity.Planet, error)

	// FindByName returns the planet with the given name
	FindByName(ctx context.Context, name string) (*entity.Planet, error)

	// RemoveByID deletes the planet with the given ID
	RemoveByID(ctx context.Context, id int64) error

	// CheckHealth reports whether the backing store is reachable
	CheckHealth(ctx context.Context) error
}
