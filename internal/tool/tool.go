package tool

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewTrackFlight,
	NewMCPServer,
	NewAssistant,
)
