package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flighttracker/config"
	"flighttracker/internal/database/client"
	"flighttracker/internal/database/fluentd/repository"
	redisRepository "flighttracker/internal/database/redis/repository"
	cErr "flighttracker/internal/pkg/error"
	"flighttracker/internal/pkg/response"
	"flighttracker/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLimiter struct {
	enabled   bool
	remaining int
	ttl       int64
	err       error
	calls     int
}

func (f *fakeLimiter) Enabled() bool { return f.enabled }

func (f *fakeLimiter) Consume(_ context.Context, _ string, _ int, _ int64) (int, int64, error) {
	f.calls++
	return f.remaining, f.ttl, f.err
}

func newTestEngine(conf *config.Configuration, limiter Limiter, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	trace := &telemetry.Trace{}
	logRepo := repository.NewLogRepository(conf, &client.NoopClient{})

	r := gin.New()
	r.Use(NewRecovery(logger, trace, conf, logRepo).ErrorHandler())
	r.Use(NewResponse(logger, trace, conf, logRepo).FormatHandler())
	r.POST("/api/track-flight", NewRateLimit(logger, trace, &telemetry.Metric{}, conf, limiter).Guard(), handler)
	return r
}

func do(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/track-flight", nil))
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func ok(c *gin.Context) {
	response.Success(c, map[string]any{"data": []any{}})
}

func rateLimitConf() *config.Configuration {
	conf := &config.Configuration{}
	conf.RateLimit.Enabled = true
	conf.RateLimit.Limit = 2
	return conf
}

func TestRateLimitBlocks(t *testing.T) {
	limiter := &fakeLimiter{enabled: true, ttl: 30, err: redisRepository.ErrRateLimitExceeded}
	w := do(newTestEngine(rateLimitConf(), limiter, ok))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "Too many requests", errorBody(t, w).Error)
}

func TestRateLimitAllows(t *testing.T) {
	limiter := &fakeLimiter{enabled: true, remaining: 1, ttl: 60}
	w := do(newTestEngine(rateLimitConf(), limiter, ok))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, 1, limiter.calls)
}

func TestRateLimitFailsOpen(t *testing.T) {
	limiter := &fakeLimiter{enabled: true, err: errors.New("dial tcp: connection refused")}
	w := do(newTestEngine(rateLimitConf(), limiter, ok))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitDisabled(t *testing.T) {
	limiter := &fakeLimiter{enabled: true}
	w := do(newTestEngine(&config.Configuration{}, limiter, ok))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, limiter.calls)
}

func TestRecoveryPanicReturnsGenericFailure(t *testing.T) {
	w := do(newTestEngine(&config.Configuration{}, nil, func(c *gin.Context) {
		panic("boom")
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, cErr.GenericFailureMessage, errorBody(t, w).Error)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRecoveryAppError(t *testing.T) {
	w := do(newTestEngine(&config.Configuration{}, nil, func(c *gin.Context) {
		response.AbortWithError(c, cErr.NotFound("No flight data found for flight ZZ0000"))
	}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No flight data found for flight ZZ0000", errorBody(t, w).Error)
}

func TestRecoveryUnknownError(t *testing.T) {
	w := do(newTestEngine(&config.Configuration{}, nil, func(c *gin.Context) {
		response.AbortWithError(c, errors.New("socket closed"))
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, cErr.GenericFailureMessage, errorBody(t, w).Error)
}

func TestResponseWritesDataVerbatim(t *testing.T) {
	w := do(newTestEngine(&config.Configuration{}, nil, func(c *gin.Context) {
		response.Success(c, json.RawMessage(`{"data":[{"flight":{"iata":"AA1"}}],"extra":1.50}`))
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[{"flight":{"iata":"AA1"}}],"extra":1.50}`, w.Body.String())
}
