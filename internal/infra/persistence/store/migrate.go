package store

import (
	"context"

	"planetapi/internal/errors"
	"planetapi/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables backing the planet repository.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.PlanetModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate planets table")
	}

	return nil
}
