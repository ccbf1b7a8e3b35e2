package middleware

import (
	"strings"

	"flighttracker/internal/database/redis/repository"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCors,
	NewLogger,
	NewRecovery,
	NewTraceEntry,
	NewRateLimit,
	wire.Bind(new(Limiter), new(*repository.RateLimiterRepository)),
	NewResponse,
)

// skipInstrument 這些路徑不做 trace / 請求日誌 / 回應包裝
func skipInstrument(endpoint string) bool {
	return strings.HasPrefix(endpoint, "/swagger") ||
		strings.HasPrefix(endpoint, "/metrics") ||
		strings.HasPrefix(endpoint, "/version") ||
		strings.HasPrefix(endpoint, "/health")
}
