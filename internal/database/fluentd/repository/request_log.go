package repository

import (
	"context"
	"encoding/json"
	"time"

	"flighttracker/config"
	"flighttracker/internal/core"
	"flighttracker/internal/database/client"
	"flighttracker/internal/database/fluentd/model"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewLogRepository)

const loggedAtLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository 統一負責發送 Request/Response/Track Log 到 Fluentd
type LogRepository struct {
	fluentdClient client.Client
	projectName   string
	version       string
}

func NewLogRepository(config *config.Configuration, client client.Client) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, projectName: config.App.Name, version: version}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if repository == nil {
		return nil
	}
	if req.LoggedAt == "" {
		req.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if repository == nil {
		return nil
	}
	if resp.LoggedAt == "" {
		resp.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogTrack(ctx context.Context, track model.TrackLog) error {
	if repository == nil {
		return nil
	}
	if track.LoggedAt == "" {
		track.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if track.Version == "" {
		track.Version = repository.version
	}
	if track.ProjectName == "" {
		track.ProjectName = repository.projectName
	}
	return repository.post(ctx, core.FluentdTrack, track)
}

// post 依 json tag 轉成 map 後送出
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	if repository.fluentdClient == nil {
		return nil
	}
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}
