package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"flighttracker/config"
	"flighttracker/internal/core"
	"flighttracker/internal/database/fluentd/model"
	cErr "flighttracker/internal/pkg/error"
	"flighttracker/internal/telemetry"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLookup struct {
	calls int
	resp  string
	err   error
}

func (f *fakeLookup) Flights(_ context.Context, _, _ string) (*UpstreamResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return ParseUpstreamResponse([]byte(f.resp))
}

func newTestPipeline(cred CredentialResolver, lookup Lookup) *Pipeline {
	return NewPipeline(zap.NewNop(), &telemetry.Trace{}, &telemetry.Metric{}, cred, lookup, nil)
}

func TestPipelineOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		cred   CredentialResolver
		lookup *fakeLookup
		input  any
		want   Kind
		calls  int
	}{
		{
			name:   "success",
			cred:   StaticCredential("key"),
			lookup: &fakeLookup{resp: `{"data":[{"flight":{"iata":"AA1234"}}]}`},
			input:  map[string]any{"flight_number": "AA1234"},
			want:   KindSuccess,
			calls:  1,
		},
		{
			name:   "not found",
			cred:   StaticCredential("key"),
			lookup: &fakeLookup{resp: `{"data":[]}`},
			input:  map[string]any{"flight_number": "ZZ0000"},
			want:   KindNotFound,
			calls:  1,
		},
		{
			name:   "validation error skips lookup",
			cred:   StaticCredential("key"),
			lookup: &fakeLookup{},
			input:  map[string]any{},
			want:   KindValidationError,
		},
		{
			name:   "missing credential skips lookup",
			cred:   StaticCredential(""),
			lookup: &fakeLookup{},
			input:  map[string]any{"flight_number": "AA1234"},
			want:   KindConfigError,
		},
		{
			name:   "upstream status",
			cred:   StaticCredential("key"),
			lookup: &fakeLookup{err: &UpstreamError{StatusCode: http.StatusUnauthorized}},
			input:  map[string]any{"flight_number": "AA1234"},
			want:   KindUpstreamError,
			calls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestPipeline(tt.cred, tt.lookup).Execute(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Kind)
			assert.Equal(t, tt.calls, tt.lookup.calls)
		})
	}
}

func TestPipelineUnexpectedError(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("connection reset by peer")}
	_, err := newTestPipeline(StaticCredential("key"), lookup).
		Execute(WithEntry(context.Background(), core.EntryTool), map[string]any{"flight_number": "AA1"})
	require.Error(t, err)

	_, appErr := HTTPResult(Outcome{}, err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HttpCode())
	assert.Equal(t, cErr.GenericFailureMessage, appErr.Error())
}

func TestHTTPResultUnexpectedErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "malformed body", err: fmt.Errorf("%w: decompress (br): %w", ErrMalformedResponse, errors.New("corrupt input")), code: cErr.EXTERNAL_RESPONSE_FORMAT_ERROR},
		{name: "deadline", err: fmt.Errorf("GET /v1/flights: %w", context.DeadlineExceeded), code: cErr.GATEWAY_TIMEOUT},
		{name: "other", err: errors.New("connection reset by peer"), code: cErr.INTERNAL_ERROR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := HTTPResult(Outcome{}, tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.ErrorCode())
			assert.Equal(t, http.StatusInternalServerError, appErr.HttpCode())
			assert.Equal(t, cErr.GenericFailureMessage, appErr.Error())
		})
	}
}

func TestHTTPResult(t *testing.T) {
	resp, err := ParseUpstreamResponse([]byte(`{"data":[{}]}`))
	require.NoError(t, err)

	tests := []struct {
		name    string
		outcome Outcome
		status  int
		message string
	}{
		{name: "not found", outcome: NotFound("ZZ0000"), status: 404, message: "No flight data found for flight ZZ0000"},
		{name: "config", outcome: ConfigError(), status: 500, message: "Aviation Stack API key not configured"},
		{name: "upstream", outcome: UpstreamFailure(503), status: 500, message: "Failed to track flight. Please try again later."},
		{name: "validation", outcome: ValidationError(nil), status: 400, message: "Invalid request parameters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, appErr := HTTPResult(tt.outcome, nil)
			assert.Nil(t, data)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.status, appErr.HttpCode())
			assert.Equal(t, tt.message, appErr.Error())
		})
	}

	data, appErr := HTTPResult(Success(resp), nil)
	assert.Nil(t, appErr)
	assert.Same(t, resp, data)
}

func TestToolResultNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	p := newTestPipeline(StaticCredential("key"), client)

	data, err := ToolResult(p.Execute(context.Background(), map[string]any{"flight_number": "ZZ0000"}))
	assert.Nil(t, data)
	require.Error(t, err)
	assert.Equal(t, "No flight data found for flight ZZ0000", err.Error())
}

func TestToolResultSuccessPayload(t *testing.T) {
	body := `{"data":[{"flight":{"iata":"AA1234"},"flight_status":"scheduled"}]}`
	p := newTestPipeline(StaticCredential("key"), &fakeLookup{resp: body})

	data, err := ToolResult(p.Execute(context.Background(), map[string]any{"flight_number": "AA1234"}))
	require.NoError(t, err)
	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(out))
}

func TestConfigCredentialResolverReadsLiveValue(t *testing.T) {
	conf := &config.Configuration{}
	r := NewConfigCredentialResolver(conf)

	_, ok := r.Resolve(context.Background())
	assert.False(t, ok)

	require.NoError(t, conf.Reload(func(next *config.Configuration) error {
		next.AviationStack.APIKey = "rotated"
		return nil
	}))
	key, ok := r.Resolve(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "rotated", key)
}

func TestConfigCredentialResolverKeyRemovedFromFile(t *testing.T) {
	v := viper.NewWithOptions(viper.KeyDelimiter("__"))
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader("AVIATION_STACK:\n  API_KEY: secret\n")))

	conf := &config.Configuration{}
	require.NoError(t, v.Unmarshal(conf))
	r := NewConfigCredentialResolver(conf)
	key, ok := r.Resolve(context.Background())
	require.True(t, ok)
	assert.Equal(t, "secret", key)

	require.NoError(t, v.ReadConfig(strings.NewReader("AVIATION_STACK:\n  BASE_URL: https://api.aviationstack.com\n")))
	require.NoError(t, conf.Reload(func(next *config.Configuration) error { return v.Unmarshal(next) }))

	key, ok = r.Resolve(context.Background())
	assert.False(t, ok)
	assert.Empty(t, key)

	out, err := newTestPipeline(r, &fakeLookup{}).Execute(context.Background(), map[string]any{"flight_number": "AA1234"})
	require.NoError(t, err)
	assert.Equal(t, KindConfigError, out.Kind)
}

func TestMissingCredentialMakesNoNetworkCall(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	p := newTestPipeline(NewConfigCredentialResolver(&config.Configuration{}), newTestClient(srv.URL))
	out, err := p.Execute(context.Background(), map[string]any{"flight_number": "AA1234"})
	require.NoError(t, err)
	assert.Equal(t, KindConfigError, out.Kind)
	assert.Zero(t, hits.Load())
}

type recorderFunc func(model.TrackLog)

func (f recorderFunc) LogTrack(_ context.Context, track model.TrackLog) error {
	f(track)
	return nil
}

func TestPipelineRecordsTrackLog(t *testing.T) {
	var got []model.TrackLog
	rec := recorderFunc(func(l model.TrackLog) { got = append(got, l) })
	p := NewPipeline(zap.NewNop(), &telemetry.Trace{}, &telemetry.Metric{}, StaticCredential("secret"),
		&fakeLookup{resp: `{"data":[{},{}]}`}, rec)

	_, err := p.Execute(WithEntry(context.Background(), core.EntryTool), map[string]any{"flight_number": "UA456"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tool", got[0].Entry)
	assert.Equal(t, "UA456", got[0].FlightNumber)
	assert.Equal(t, "success", got[0].Outcome)
	assert.Equal(t, 2, got[0].RecordCount)
}
