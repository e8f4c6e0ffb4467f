package fx

import (
	"go.uber.org/fx"

	"preset-tracker/internal/api"
	"preset-tracker/internal/config"
	"preset-tracker/internal/database"
	"preset-tracker/internal/logger"
	"preset-tracker/internal/repository"
	"preset-tracker/internal/server"
	"preset-tracker/internal/service"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewPresetRepository),
	// api client
	fx.Provide(api.NewItemDataClient),
	// svc
	fx.Provide(service.NewSummaryService),
	fx.Provide(service.NewPresetService),
	// server
	fx.Provide(server.NewServer),
)
