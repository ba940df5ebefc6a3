package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "planetapi/internal/delivery/context"
	"planetapi/internal/domain/criteria"
	"planetapi/internal/domain/entity"
	domainerrors "planetapi/internal/domain/errors"
	"planetapi/internal/domain/repository"
	"planetapi/internal/errors"
	"planetapi/internal/usecase"
)

// storeConstraintDetails replaces driver messages, which name tables and constraints.
const storeConstraintDetails = "planet violates a storage constraint"

type planetService struct {
	planetRepo repository.PlanetRepository
	logger     *slog.Logger
}

// NewPlanetService creates a new planet service instance
func NewPlanetService(planetRepo repository.PlanetRepository, logger *slog.Logger) usecase.PlanetUsecase {
	return &planetService{
		planetRepo: planetRepo,
		logger:     logger,
	}
}

// Create validates and persists a new planet
func (s *planetService) Create(ctx context.Context, planet *entity.Planet) (*entity.Planet, error) {
	if planet == nil {
		return nil, domainerrors.ErrPlanetInvalid.WithDetails("planet is required")
	}
	if planet.IsPersisted() {
		return nil, domainerrors.ErrPlanetInvalid.WithDetails("id is assigned by the store")
	}
	if missing := planet.MissingFields(); len(missing) > 0 {
		return nil, domainerrors.ErrPlanetInvalid.WithDetails("missing fields: " + strings.Join(missing, ", "))
	}

	if err := s.planetRepo.Save(ctx, planet); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicatePlanet):
			return nil, domainerrors.ErrPlanetAlreadyExists.WithDetails(planet.Name)
		case errors.Is(err, repository.ErrInvalidPlanet):
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Planet rejected by store",
				slog.String("name", planet.Name),
				slog.String("error", err.Error()),
			)

			return nil, domainerrors.ErrPlanetInvalid.WithDetails(storeConstraintDetails)
		}

		return nil, errors.Wrap(err, "failed to save planet")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Planet created",
		slog.Int64("planet_id", planet.ID),
		slog.String("name", planet.Name),
	)

	return planet, nil
}

// FindAll returns the planets matching the optional filters, never nil
func (s *planetService) FindAll(ctx context.Context, climate, terrain string) ([]*entity.Planet, error) {
	spec := criteria.FromPlanet(entity.PlanetCriteria{
		Climate: climate,
		Terrain: terrain,
	})

	planets, err := s.planetRepo.FindMatching(ctx, spec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find planets")
	}
	if planets == nil {
		planets = []*entity.Planet{}
	}

	return planets, nil
}

// FindByID returns the planet with the given ID
func (s *planetService) FindByID(ctx context.Context, id int64) (*entity.Planet, error) {
	planet, err := s.planetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return nil, domainerrors.ErrPlanetNotFound
		}

		return nil, errors.Wrap(err, "failed to find planet by ID")
	}

	return planet, nil
}

// FindByName returns the planet with the given name
func (s *planetService) FindByName(ctx context.Context, name string) (*entity.Planet, error) {
	planet, err := s.planetRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return nil, domainerrors.ErrPlanetNotFound
		}

		return nil, errors.Wrap(err, "failed to find planet by name")
	}

	return planet, nil
}

// RemoveByID deletes the planet with the given ID
func (s *planetService) RemoveByID(ctx context.Context, id int64) error {
	if err := s.planetRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return domainerrors.ErrPlanetNotFound
		}

		return errors.Wrap(err, "failed to delete planet")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Planet removed", slog.Int64("planet_id", id))

	return nil
}

// CheckHealth pings the backing store
func (s *planetService) CheckHealth(ctx context.Context) error {
	if err := s.planetRepo.Ping(ctx); err != nil {
		return domainerrors.ErrServiceUnavailable.WithDetails(err.Error())
	}

	return nil
}
