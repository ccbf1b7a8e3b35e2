package command

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"flighttracker/config"
	"flighttracker/internal/service/flight"
	"flighttracker/internal/telemetry"
	"flighttracker/internal/tool"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTrackHandler(t *testing.T, body string) *TrackHandler {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	conf := &config.Configuration{}
	conf.AviationStack.BaseURL = srv.URL
	conf.AviationStack.APIKey = "key"

	trace, metric := &telemetry.Trace{}, &telemetry.Metric{}
	client := flight.NewAviationStackClient(conf, http.DefaultClient, trace, metric)
	pipeline := flight.NewPipeline(zap.NewNop(), trace, metric, flight.NewConfigCredentialResolver(conf), client, nil)
	return NewTrackHandler(zap.NewNop(), tool.NewTrackFlight(trace, pipeline))
}

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{Use: "track"}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())
	return cmd, &stdout, &stderr
}

func TestTrackPrintsPayload(t *testing.T) {
	body := `{"data":[{"flight":{"iata":"LH890"}}]}`
	cmd, stdout, _ := newTestCommand()

	require.NoError(t, newTrackHandler(t, body).Track(cmd, []string{"LH890"}))
	assert.JSONEq(t, body, stdout.String())
}

func TestTrackPrintsError(t *testing.T) {
	cmd, stdout, stderr := newTestCommand()

	err := newTrackHandler(t, `{"data":[]}`).Track(cmd, []string{"ZZ0000"})
	require.Error(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "No flight data found for flight ZZ0000")
}
