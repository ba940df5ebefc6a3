package main

import (
	"context"
	"log/slog"

	"planetapi/internal/domain/lifecycle"
	"planetapi/internal/errors"
	"planetapi/internal/infra/persistence/store"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the planets table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func runMigrate(ctx context.Context) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)
	app := fx.New(
		injectInfra(),
		fx.Populate(&db, &logger),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			logger.Error("Failed to stop application", slog.Any("error", err))
		}
	}()

	if err := store.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("Planets schema is up to date")

	return nil
}
