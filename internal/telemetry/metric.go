package telemetry

import (
	"strconv"
	"time"

	"flighttracker/config"
	"flighttracker/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct；未啟用時所有欄位為 nil，各 Observe 方法自動略過
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	TrackOutcomesTotal  *prometheus.CounterVec
	UpstreamDuration    *prometheus.HistogramVec
	RateLimitedTotal    *prometheus.CounterVec
	config              *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	return newMetricWith(config, promauto.With(prometheus.DefaultRegisterer))
}

func newMetricWith(config *config.Configuration, factory promauto.Factory) *Metric {
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	prefix := metricPrefix(config.App.Name)
	return &Metric{
		config: config,
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "API request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		TrackOutcomesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricTrackOutcomesTotal),
				Help: "Flight lookups by entry point and outcome",
			},
			labelNames(core.MetricLabelEntry, core.MetricLabelOutcome),
		),
		UpstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricUpstreamRequestDuration),
				Help:    "Aviation data provider request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelStatus),
		),
		RateLimitedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricRateLimitTotal),
				Help: "Requests rejected by the inbound rate limiter",
			},
			labelNames(core.MetricLabelEndpoint),
		),
	}
}

func (m *Metric) ObserveRequest(endpoint string, status int, d time.Duration) {
	if m == nil || m.HttpRequestsTotal == nil || m.HttpRequestDuration == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.HttpRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (m *Metric) ObserveOutcome(entry core.EntryPoint, outcome string) {
	if m == nil || m.TrackOutcomesTotal == nil {
		return
	}
	m.TrackOutcomesTotal.WithLabelValues(string(entry), outcome).Inc()
}

// ObserveUpstream status 為 0 代表傳輸層失敗（沒有拿到回應）
func (m *Metric) ObserveUpstream(status int, d time.Duration) {
	if m == nil || m.UpstreamDuration == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.UpstreamDuration.WithLabelValues(label).Observe(d.Seconds())
}

func (m *Metric) ObserveRateLimited(endpoint string) {
	if m == nil || m.RateLimitedTotal == nil {
		return
	}
	m.RateLimitedTotal.WithLabelValues(endpoint).Inc()
}

func metricPrefix(appName string) string {
	if appName == "" {
		return ""
	}
	return appName + "_"
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
