package flight

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flighttracker/config"
	cErr "flighttracker/internal/pkg/error"
	"flighttracker/internal/telemetry"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *AviationStackClient {
	conf := &config.Configuration{}
	conf.AviationStack.BaseURL = baseURL
	return NewAviationStackClient(conf, http.DefaultClient, &telemetry.Trace{}, &telemetry.Metric{})
}

func TestAviationStackClientRequest(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"flight":{"iata":"AA1234"}}]}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).Flights(context.Background(), "secret-key", "AA1234")
	require.NoError(t, err)
	require.Len(t, resp.Records(), 1)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/v1/flights", got.URL.Path)
	assert.Equal(t, "secret-key", got.URL.Query().Get("access_key"))
	assert.Equal(t, "AA1234", got.URL.Query().Get("flight_iata"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
}

func TestAviationStackClientNon2xx(t *testing.T) {
	for _, status := range []int{http.StatusMovedPermanently, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusBadGateway} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// body 仍是合法的 data，但非 2xx 一律不解析
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"data":[{"flight":{}}]}`))
		}))

		client := newTestClient(srv.URL)
		client.httpClient = &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}}
		_, err := client.Flights(context.Background(), "k", "AA1")
		srv.Close()

		var upErr *UpstreamError
		require.True(t, errors.As(err, &upErr), "status %d", status)
		assert.Equal(t, status, upErr.StatusCode)
	}
}

func TestAviationStackClientMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Flights(context.Background(), "k", "AA1")
	require.Error(t, err)
	var upErr *UpstreamError
	assert.False(t, errors.As(err, &upErr))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAviationStackClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	conf := &config.Configuration{}
	conf.AviationStack.BaseURL = srv.URL
	conf.AviationStack.TimeoutMs = 50
	client := NewAviationStackClient(conf, &http.Client{}, &telemetry.Trace{}, &telemetry.Metric{})

	_, err := client.Flights(context.Background(), "super-secret", "AA1")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret")

	_, appErr := HTTPResult(Outcome{}, err)
	require.NotNil(t, appErr)
	assert.Equal(t, cErr.GATEWAY_TIMEOUT, appErr.ErrorCode())
}

func TestAviationStackClientTransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).Flights(context.Background(), "super-secret", "AA1")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret")
}

func TestAviationStackClientDecompress(t *testing.T) {
	body := []byte(`{"data":[{"flight":{"iata":"LH890"}}]}`)

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, _ = gw.Write(body)
	require.NoError(t, gw.Close())

	var br bytes.Buffer
	bw := brotli.NewWriter(&br)
	_, _ = bw.Write(body)
	require.NoError(t, bw.Close())

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zs := enc.EncodeAll(body, nil)
	require.NoError(t, enc.Close())

	tests := []struct {
		encoding string
		payload  []byte
	}{
		{"gzip", gz.Bytes()},
		{"br", br.Bytes()},
		{"zstd", zs},
		{"", body},
	}
	for _, tt := range tests {
		t.Run("encoding="+tt.encoding, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.True(t, strings.Contains(r.Header.Get("Accept-Encoding"), "br"))
				if tt.encoding != "" {
					w.Header().Set("Content-Encoding", tt.encoding)
				}
				_, _ = w.Write(tt.payload)
			}))
			defer srv.Close()

			resp, err := newTestClient(srv.URL).Flights(context.Background(), "k", "LH890")
			require.NoError(t, err)
			assert.JSONEq(t, string(body), string(resp.Bytes()))
		})
	}
}
