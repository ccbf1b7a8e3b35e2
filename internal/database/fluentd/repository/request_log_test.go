package repository

import (
	"context"
	"testing"

	"flighttracker/config"
	"flighttracker/internal/database/fluentd/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type posted struct {
	tag     string
	message any
}

type fakeClient struct {
	posts []posted
}

func (f *fakeClient) Post(_ context.Context, tag string, message any) error {
	f.posts = append(f.posts, posted{tag: tag, message: message})
	return nil
}

func (f *fakeClient) Close() error { return nil }

func TestLogTrack(t *testing.T) {
	conf := &config.Configuration{}
	conf.App.Name = "flighttracker"
	conf.App.Version = "2.1.0"
	fc := &fakeClient{}

	err := NewLogRepository(conf, fc).LogTrack(context.Background(), model.TrackLog{
		Entry:        "tool",
		FlightNumber: "BA123",
		Outcome:      "success",
		RecordCount:  1,
	})
	require.NoError(t, err)
	require.Len(t, fc.posts, 1)
	assert.Equal(t, "track_flight_log", fc.posts[0].tag)

	msg, ok := fc.posts[0].message.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "BA123", msg["flight_number"])
	assert.Equal(t, "2.1.0", msg["version"])
	assert.Equal(t, "flighttracker", msg["project_name"])
	assert.NotEmpty(t, msg["logged_at"])
}

func TestNilRepositoryIsNoop(t *testing.T) {
	var repo *LogRepository
	assert.NoError(t, repo.LogTrack(context.Background(), model.TrackLog{}))
	assert.NoError(t, repo.LogRequest(context.Background(), model.RequestLog{}))
}
