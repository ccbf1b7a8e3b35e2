package flight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flighttracker/config"
	"flighttracker/internal/core"
	"flighttracker/internal/telemetry"
)

// UpstreamError 供應商回應非 2xx；body 不解析
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("aviationstack responded with status: %d", e.StatusCode)
}

type AviationStackClient struct {
	httpClient *http.Client
	baseURL    string
	trace      *telemetry.Trace
	metric     *telemetry.Metric
}

func NewAviationStackClient(
	conf *config.Configuration,
	client *http.Client,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
) *AviationStackClient {
	if client == nil {
		client = http.DefaultClient
	}
	baseURL := core.AviationStackAPIBaseURL
	if conf != nil {
		settings := conf.AviationStackSettings()
		if u := strings.TrimRight(strings.TrimSpace(settings.BaseURL), "/"); u != "" {
			baseURL = u
		}
		if ms := settings.TimeoutMs; ms > 0 {
			c := *client
			c.Timeout = time.Duration(ms) * time.Millisecond
			client = &c
		}
	}
	return &AviationStackClient{
		httpClient: client,
		baseURL:    baseURL,
		trace:      trace,
		metric:     metric,
	}
}

// Flights 單次 GET /v1/flights，不重試
func (c *AviationStackClient) Flights(ctx context.Context, credential, flightNumber string) (resp *UpstreamResponse, err error) {
	endpoint := c.baseURL + string(core.AviationStackFlightsEndpoint)

	ctx, span, end := c.trace.WithSpan(ctx, string(core.SpanAviationStackLookup))
	// URL 不含 query，金鑰不進 trace
	meta := core.TraceUpstreamMeta{
		Provider: string(core.ProviderAviationStack),
		URL:      endpoint,
	}
	defer func() {
		c.trace.ApplyTraceAttributes(span, meta)
		end(err)
	}()

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse aviationstack url: %w", err)
	}
	q := u.Query()
	q.Set(core.AviationStackParamAccessKey, credential)
	q.Set(core.AviationStackParamFlightIATA, flightNumber)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create aviationstack request: %w", redactURL(err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.metric.ObserveUpstream(0, time.Since(start))
		return nil, fmt.Errorf("GET %s: %w", endpoint, redactURL(err))
	}
	defer res.Body.Close()

	meta.StatusCode = res.StatusCode
	meta.ContentEncoding = res.Header.Get("Content-Encoding")

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, res.Body)
		c.metric.ObserveUpstream(res.StatusCode, time.Since(start))
		return nil, &UpstreamError{StatusCode: res.StatusCode}
	}

	raw, err := io.ReadAll(res.Body)
	c.metric.ObserveUpstream(res.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read aviationstack response: %w", err)
	}
	body, err := decompress(raw, res.Header)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress (%s): %w", ErrMalformedResponse, meta.ContentEncoding, err)
	}
	meta.BodyBytes = len(body)

	return ParseUpstreamResponse(body)
}

// redactURL 去掉 *url.Error 內含完整 URL（含 access_key）的部分
func redactURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
