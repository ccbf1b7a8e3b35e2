package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"flighttracker/config"
	"flighttracker/internal/database/client"
	"flighttracker/internal/database/fluentd/repository"
	"flighttracker/internal/middleware"
	"flighttracker/internal/service/flight"
	"flighttracker/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type provider struct {
	srv  *httptest.Server
	hits atomic.Int32
}

func newProvider(t *testing.T, status int, body string) *provider {
	t.Helper()
	p := &provider{}
	p.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(p.srv.Close)
	return p
}

func newTestEngine(apiKey, baseURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	conf.App.Name = "flighttracker"
	conf.AviationStack.APIKey = apiKey
	conf.AviationStack.BaseURL = baseURL

	logger := zap.NewNop()
	trace := &telemetry.Trace{}
	metric := &telemetry.Metric{}
	logRepo := repository.NewLogRepository(conf, &client.NoopClient{})

	lookup := flight.NewAviationStackClient(conf, http.DefaultClient, trace, metric)
	pipeline := flight.NewPipeline(logger, trace, metric, flight.NewConfigCredentialResolver(conf), lookup, logRepo)
	h := NewFlightHandler(trace, pipeline)

	r := gin.New()
	r.Use(middleware.NewRecovery(logger, trace, conf, logRepo).ErrorHandler())
	r.Use(middleware.NewResponse(logger, trace, conf, logRepo).FormatHandler())
	r.POST("/api/track-flight", h.Track)
	return r
}

func postTrack(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/track-flight", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTrackFlightSuccess(t *testing.T) {
	upstream := `{"pagination":{"limit":100,"offset":0,"count":1,"total":1},"data":[{"flight_date":"2024-05-01","flight_status":"active","departure":{"iata":"JFK","delay":null},"arrival":{"iata":"LAX"},"airline":{"name":"American Airlines","iata":"AA"},"flight":{"number":"1234","iata":"AA1234"}}]}`
	p := newProvider(t, http.StatusOK, upstream)

	w := postTrack(newTestEngine("key", p.srv.URL), `{"flight_number":"AA1234"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, upstream, w.Body.String())
	assert.EqualValues(t, 1, p.hits.Load())
}

func TestTrackFlightNotFound(t *testing.T) {
	p := newProvider(t, http.StatusOK, `{"data":[]}`)

	w := postTrack(newTestEngine("key", p.srv.URL), `{"flight_number":"ZZ0000"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No flight data found for flight ZZ0000"}`, w.Body.String())
}

func TestTrackFlightValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing flight_number", body: `{}`},
		{name: "number flight_number", body: `{"flight_number":1234}`},
		{name: "null flight_number", body: `{"flight_number":null}`},
		{name: "array body", body: `["AA1234"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProvider(t, http.StatusOK, `{"data":[{}]}`)

			w := postTrack(newTestEngine("key", p.srv.URL), tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body struct {
				Error   string           `json:"error"`
				Details []map[string]any `json:"details"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Invalid request parameters", body.Error)
			assert.NotEmpty(t, body.Details)
			assert.Zero(t, p.hits.Load())
		})
	}
}

func TestTrackFlightMissingAPIKey(t *testing.T) {
	p := newProvider(t, http.StatusOK, `{"data":[{}]}`)

	w := postTrack(newTestEngine("", p.srv.URL), `{"flight_number":"AA1234"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Aviation Stack API key not configured"}`, w.Body.String())
	assert.Zero(t, p.hits.Load())
}

func TestTrackFlightUpstreamFailure(t *testing.T) {
	p := newProvider(t, http.StatusServiceUnavailable, `{"error":{"code":"usage_limit_reached"}}`)

	w := postTrack(newTestEngine("key", p.srv.URL), `{"flight_number":"AA1234"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to track flight. Please try again later."}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestTrackFlightMalformedUpstreamJSON(t *testing.T) {
	p := newProvider(t, http.StatusOK, `{"data":`)

	w := postTrack(newTestEngine("key", p.srv.URL), `{"flight_number":"AA1234"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to track flight. Please try again later."}`, w.Body.String())
}

func TestTrackFlightMalformedRequestBody(t *testing.T) {
	p := newProvider(t, http.StatusOK, `{"data":[{}]}`)

	req := httptest.NewRequest(http.MethodPost, "/api/track-flight", bytes.NewBufferString(`{"flight_number":`))
	w := httptest.NewRecorder()
	newTestEngine("key", p.srv.URL).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to track flight. Please try again later."}`, w.Body.String())
	assert.Zero(t, p.hits.Load())
}
