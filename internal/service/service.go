package service

import (
	"flighttracker/internal/database/fluentd/repository"
	"flighttracker/internal/service/flight"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHealthService,
	flight.NewConfigCredentialResolver,
	wire.Bind(new(flight.CredentialResolver), new(*flight.ConfigCredentialResolver)),
	flight.NewAviationStackClient,
	wire.Bind(new(flight.Lookup), new(*flight.AviationStackClient)),
	flight.NewPipeline,
	wire.Bind(new(flight.Recorder), new(*repository.LogRepository)),
	wire.Bind(new(flight.Tracker), new(*flight.Pipeline)),
)
