// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"planetapi/internal/domain/criteria"
	"planetapi/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for planet persistence.
var (
	// ErrPlanetNotFound is returned when no planet matches the id or name.
	ErrPlanetNotFound = errors.New("planet not found")
	// ErrDuplicatePlanet is returned when the name is already taken.
	ErrDuplicatePlanet = errors.New("planet already exists")
	// ErrInvalidPlanet is returned when the store rejects a record that
	// violates a NOT NULL or CHECK constraint.
	ErrInvalidPlanet = errors.New("planet violates a storage constraint")
)

// PlanetRepository defines the interface for planet-related database operations.
type PlanetRepository interface {
	// Save persists a new planet and sets its store-assigned ID.
	Save(ctx context.Context, planet *entity.Planet) error

	// FindByID retrieves a planet by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Planet, error)

	// FindByName retrieves a planet by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Planet, error)

	// DeleteByID removes a planet, returning ErrPlanetNotFound when no row was deleted.
	DeleteByID(ctx context.Context, id int64) error

	// FindMatching returns every planet satisfying spec in insertion order.
	FindMatching(ctx context.Context, spec criteria.Specification) ([]*entity.Planet, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
