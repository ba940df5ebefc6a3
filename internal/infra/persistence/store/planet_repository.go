package store

import (
	"context"

	"planetapi/internal/domain/criteria"
	"planetapi/internal/domain/entity"
	domainerrors "planetapi/internal/domain/errors"
	"planetapi/internal/domain/repository"
	"planetapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// planetRepository implements the repository.PlanetRepository interface.
type planetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository is the constructor for planetRepository.
func NewPlanetRepository(db *gorm.DB) repository.PlanetRepository {
	return &planetRepository{
		db: db,
	}
}

// Save persists a new planet and copies the generated ID back onto it.
func (repo *planetRepository) Save(ctx context.Context, planet *entity.Planet) error {
	planetM := fromPlanetDomain(planet)

	if err := repo.db.WithContext(ctx).Create(planetM).Error; err != nil {
		// Convert driver errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePlanet
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return errors.Wrap(repository.ErrInvalidPlanet, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create planet")
	}

	planet.ID = planetM.ID

	return nil
}

// FindByID retrieves a planet by its identifier.
func (repo *planetRepository) FindByID(ctx context.Context, id int64) (*entity.Planet, error) {
	var planetM model.PlanetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanetNotFound
		}

		return nil, errors.Wrap(err, "failed to find planet by ID")
	}

	return toPlanetDomain(&planetM), nil
}

// FindByName retrieves a planet by its unique name.
func (repo *planetRepository) FindByName(ctx context.Context, name string) (*entity.Planet, error) {
	var planetM model.PlanetModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&planetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanetNotFound
		}

		return nil, errors.Wrap(err, "failed to find planet by name")
	}

	return toPlanetDomain(&planetM), nil
}

// DeleteByID removes a planet by its ID.
func (repo *planetRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlanetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete planet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlanetNotFound
	}

	return nil
}

// FindMatching runs spec as a single AND of equality predicates.
func (repo *planetRepository) FindMatching(ctx context.Context, spec criteria.Specification) ([]*entity.Planet, error) {
	query := repo.db.WithContext(ctx).Model(&model.PlanetModel{})
	for _, cond := range spec.Conditions() {
		query = query.Where(clause.Eq{
			Column: clause.Column{Name: string(cond.Field)},
			Value:  cond.Value,
		})
	}

	var planetModels []*model.PlanetModel
	if err := query.Order("id ASC").Find(&planetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matching planets")
	}

	planets := make([]*entity.Planet, 0, len(planetModels))
	for _, planetM := range planetModels {
		planets = append(planets, toPlanetDomain(planetM))
	}

	return planets, nil
}

// Ping checks the underlying connection pool.
func (repo *planetRepository) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "database ping failed")
}

// --- Mapper Functions ---

// toPlanetDomain converts a GORM PlanetModel to a domain Planet entity.
func toPlanetDomain(data *model.PlanetModel) *entity.Planet {
	if data == nil {
		return nil
	}

	return &entity.Planet{
		ID:      data.ID,
		Name:    data.Name,
		Climate: data.Climate,
		Terrain: data.Terrain,
	}
}

// fromPlanetDomain converts a domain Planet entity to a GORM PlanetModel.
func fromPlanetDomain(data *entity.Planet) *model.PlanetModel {
	if data == nil {
		return nil
	}

	return &model.PlanetModel{
		ID:      data.ID,
		Name:    data.Name,
		Climate: data.Climate,
		Terrain: data.Terrain,
	}
}
