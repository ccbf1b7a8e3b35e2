package tool

import (
	"context"

	"flighttracker/internal/core"
	"flighttracker/internal/service/flight"
	"flighttracker/internal/telemetry"
)

const (
	TrackFlightDescription  = "Track flight information and status in real-time"
	FlightNumberDescription = "The flight number to track (IATA format, e.g., AA1234, BA456)"
)

// TrackFlight 提供給 LLM 編排層的 track_flight 工具；MCP 與 Copilot 兩種註冊方式共用 Execute
type TrackFlight struct {
	trace   *telemetry.Trace
	tracker flight.Tracker
}

func NewTrackFlight(trace *telemetry.Trace, tracker flight.Tracker) *TrackFlight {
	return &TrackFlight{trace: trace, tracker: tracker}
}

func (t *TrackFlight) Name() string {
	return string(core.ToolTrackFlight)
}

// Execute 成功回傳供應商原始 payload；失敗只回傳帶訊息的 error
func (t *TrackFlight) Execute(ctx context.Context, args map[string]any) (any, error) {
	ctx, _, end := t.trace.WithSpan(ctx, string(core.SpanToolTrackFlight))
	data, err := flight.ToolResult(t.tracker.Execute(flight.WithEntry(ctx, core.EntryTool), args))
	end(err)
	return data, err
}
