package main

import (
	"context"
	"log/slog"

	"planetapi/config"
	"planetapi/internal/delivery/api"
	"planetapi/internal/delivery/api/router/handler"
	logs "planetapi/internal/infra/log"
	"planetapi/internal/infra/persistence/store"
	"planetapi/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planetapi",
		Short: "Planet catalogue HTTP service",
		Long: `planetapi stores planets (name, climate, terrain) and serves them over HTTP.

Configuration is read from config.yaml, overridden by environment variables
and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())

	return rootCmd
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			store.New,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		store.NewPlanetRepository,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewPlanetService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewPlanetHandler,
		handler.NewHealthHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}
