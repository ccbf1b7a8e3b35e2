package tool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"flighttracker/config"

	sdk "github.com/github/copilot-sdk/go"
	"go.uber.org/zap"
)

const SystemPrompt = "You are a helpful assistant that can track flights. When users ask about flight information, use the track_flight tool to get real-time data."

const defaultChatTimeout = 60 * time.Second

// TrackFlightParams Copilot SDK 依 jsonschema tag 產生參數 schema
type TrackFlightParams struct {
	FlightNumber string `json:"flight_number" jsonschema:"The flight number to track (IATA format, e.g., AA1234, BA456)"`
}

// CopilotTool 以 sdk.DefineTool 包裝 Execute；ctx 為整個對話的 ctx
func (t *TrackFlight) CopilotTool(ctx context.Context) sdk.Tool {
	return sdk.DefineTool(t.Name(), TrackFlightDescription,
		func(params TrackFlightParams, inv sdk.ToolInvocation) (any, error) {
			return t.Execute(ctx, map[string]any{"flight_number": params.FlightNumber})
		})
}

// Assistant 單輪對話：建立 session、註冊 track_flight、送出問題並等待回覆
type Assistant struct {
	logger      *zap.Logger
	conf        *config.Configuration
	trackFlight *TrackFlight
}

func NewAssistant(logger *zap.Logger, conf *config.Configuration, trackFlight *TrackFlight) *Assistant {
	return &Assistant{logger: logger, conf: conf, trackFlight: trackFlight}
}

func (a *Assistant) Ask(ctx context.Context, message string) (string, error) {
	settings := a.conf.CopilotSettings()
	logLevel := settings.LogLevel
	if logLevel == "" {
		logLevel = "error"
	}
	timeout := defaultChatTimeout
	if settings.Timeout > 0 {
		timeout = time.Duration(settings.Timeout) * time.Second
	}

	client := sdk.NewClient(&sdk.ClientOptions{LogLevel: logLevel})
	if err := client.Start(); err != nil {
		return "", fmt.Errorf("start copilot client: %w", err)
	}
	defer client.Stop()

	session, err := client.CreateSession(&sdk.SessionConfig{
		Model: settings.Model,
		Tools: []sdk.Tool{a.trackFlight.CopilotTool(ctx)},
		SystemMessage: &sdk.SystemMessageConfig{
			Mode:    "replace",
			Content: SystemPrompt,
		},
	})
	if err != nil {
		return "", fmt.Errorf("create copilot session: %w", err)
	}
	defer session.Destroy()

	var (
		mu       sync.Mutex
		reply    string
		replyErr error
		once     sync.Once
	)
	done := make(chan struct{})
	session.On(func(event sdk.SessionEvent) {
		switch event.Type {
		case "assistant.message":
			if event.Data.Content != nil {
				mu.Lock()
				reply = *event.Data.Content
				mu.Unlock()
			}
		case "session.error":
			msg := "session error"
			if event.Data.Content != nil {
				msg = *event.Data.Content
			}
			mu.Lock()
			replyErr = errors.New(msg)
			mu.Unlock()
			once.Do(func() { close(done) })
		case "session.idle":
			once.Do(func() { close(done) })
		}
	})

	a.logger.Info("copilot chat started", zap.String("model", settings.Model))
	if _, err := session.Send(sdk.MessageOptions{Prompt: message}); err != nil {
		return "", fmt.Errorf("send copilot message: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(timeout):
		return "", fmt.Errorf("chat timed out after %v", timeout)
	case <-done:
		mu.Lock()
		defer mu.Unlock()
		return reply, replyErr
	}
}
