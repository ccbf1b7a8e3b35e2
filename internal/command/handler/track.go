package command

import (
	"encoding/json"
	"errors"

	"flighttracker/internal/tool"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type TrackHandler struct {
	logger      *zap.Logger
	trackFlight *tool.TrackFlight
}

func NewTrackHandler(logger *zap.Logger, trackFlight *tool.TrackFlight) *TrackHandler {
	return &TrackHandler{
		logger:      logger,
		trackFlight: trackFlight,
	}
}

// Track 與 LLM 呼叫工具走同一條路徑，輸出原始 payload 或錯誤訊息
func (handler *TrackHandler) Track(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: track <flight_number>")
	}

	data, err := handler.trackFlight.Execute(cmd.Context(), map[string]any{"flight_number": args[0]})
	if err != nil {
		cmd.PrintErrln("Error:", err.Error())
		return err
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}
