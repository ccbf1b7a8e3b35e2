package database

import (
	client "flighttracker/internal/database/client"
	fluentdRepo "flighttracker/internal/database/fluentd/repository"
	redisRepo "flighttracker/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有外部儲存 Client 與 repository 的依賴
var ProviderSet = wire.NewSet(
	client.NewFluentdClient,
	client.NewRedisClient,
	fluentdRepo.ProviderSet,
	redisRepo.ProviderSet,
)
