//go:build wireinject
// +build wireinject

package main

import (
	"flighttracker/config"
	"flighttracker/internal/command"
	"flighttracker/internal/cron"
	"flighttracker/internal/database"
	"flighttracker/internal/handler"
	"flighttracker/internal/middleware"
	"flighttracker/internal/router"
	"flighttracker/internal/service"
	"flighttracker/internal/telemetry"
	"flighttracker/internal/tool"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			tool.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			newHttpClient,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init command.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			tool.ProviderSet,
			newHttpClient,
			telemetry.ProviderSet,
			command.ProviderSet,
		),
	)
}
