package flight

import (
	"context"
	"errors"
	"time"

	"flighttracker/internal/core"
	"flighttracker/internal/database/fluentd/model"
	"flighttracker/internal/telemetry"

	"go.uber.org/zap"
)

type entryKey struct{}

// WithEntry 標記呼叫入口，只用於 metrics/trace 的 label
func WithEntry(ctx context.Context, entry core.EntryPoint) context.Context {
	return context.WithValue(ctx, entryKey{}, entry)
}

func entryFrom(ctx context.Context) core.EntryPoint {
	if v, ok := ctx.Value(entryKey{}).(core.EntryPoint); ok {
		return v
	}
	return core.EntryHTTP
}

// Recorder 查詢稽核紀錄（Fluentd）
type Recorder interface {
	LogTrack(ctx context.Context, track model.TrackLog) error
}

// Pipeline validate → resolve credential → lookup → normalize，依序執行、不保留狀態
type Pipeline struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	metric      *telemetry.Metric
	credentials CredentialResolver
	lookup      Lookup
	recorder    Recorder
}

func NewPipeline(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	credentials CredentialResolver,
	lookup Lookup,
	recorder Recorder,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		logger:      logger,
		trace:       trace,
		metric:      metric,
		credentials: credentials,
		lookup:      lookup,
		recorder:    recorder,
	}
}

// Execute error 只代表非預期失敗（傳輸層、回應不是 JSON），其餘結果都在 Outcome 內
func (p *Pipeline) Execute(ctx context.Context, input any) (Outcome, error) {
	entry := entryFrom(ctx)
	start := time.Now()
	ctx, span, end := p.trace.WithSpan(ctx, string(core.SpanTrackPipeline))

	meta := core.TraceTrackMeta{Entry: string(entry)}
	outcome, err := p.execute(ctx, input, &meta)

	meta.Outcome = outcome.Kind.String()
	if err != nil {
		meta.Outcome = "unexpected"
	}
	p.trace.ApplyTraceAttributes(span, meta)
	p.metric.ObserveOutcome(entry, meta.Outcome)
	end(err)

	if p.recorder != nil {
		var traceID string
		if sc := span.SpanContext(); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		}
		_ = p.recorder.LogTrack(ctx, model.TrackLog{
			TraceID:        traceID,
			Entry:          meta.Entry,
			FlightNumber:   meta.FlightNumber,
			Outcome:        meta.Outcome,
			UpstreamStatus: meta.StatusCode,
			RecordCount:    meta.RecordCount,
			DurationMs:     time.Since(start).Milliseconds(),
		})
	}

	fields := []zap.Field{
		zap.String("entry", meta.Entry),
		zap.String("flight_number", meta.FlightNumber),
		zap.String("outcome", meta.Outcome),
	}
	switch {
	case err != nil:
		p.logger.Error("flight tracking error", append(fields, zap.Error(err))...)
	case outcome.Kind == KindConfigError:
		p.logger.Error("aviationstack api key not configured", fields...)
	case outcome.Kind == KindUpstreamError:
		p.logger.Warn("aviationstack request failed", append(fields, zap.Int("status", outcome.StatusCode))...)
	default:
		p.logger.Debug("flight tracked", append(fields, zap.Int("records", meta.RecordCount))...)
	}
	return outcome, err
}

func (p *Pipeline) execute(ctx context.Context, input any, meta *core.TraceTrackMeta) (Outcome, error) {
	query, violations := Validate(input)
	if len(violations) > 0 {
		return ValidationError(violations), nil
	}
	meta.FlightNumber = query.FlightNumber

	credential, ok := p.credentials.Resolve(ctx)
	if !ok {
		return ConfigError(), nil
	}

	resp, err := p.lookup.Flights(ctx, credential, query.FlightNumber)
	if err != nil {
		var upErr *UpstreamError
		if errors.As(err, &upErr) {
			meta.StatusCode = upErr.StatusCode
			return UpstreamFailure(upErr.StatusCode), nil
		}
		return Outcome{}, err
	}
	meta.RecordCount = len(resp.Records())
	return Normalize(query, resp), nil
}
