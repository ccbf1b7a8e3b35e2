package command

import (
	"errors"
	"strings"

	"flighttracker/internal/tool"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ExampleQueries chat 指令說明中列出的範例問題
var ExampleQueries = []string{
	"Track flight AA1234",
	"What's the status of United flight UA456?",
	"Is Delta 789 on time?",
	"Show me information for British Airways BA123",
	"Track my flight LH890 from Frankfurt to New York",
}

type ChatHandler struct {
	logger    *zap.Logger
	assistant *tool.Assistant
}

func NewChatHandler(logger *zap.Logger, assistant *tool.Assistant) *ChatHandler {
	return &ChatHandler{
		logger:    logger,
		assistant: assistant,
	}
}

func (handler *ChatHandler) Chat(cmd *cobra.Command, args []string) error {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		cmd.Println("Try one of:")
		for _, q := range ExampleQueries {
			cmd.Println("  -", q)
		}
		return errors.New("message is required")
	}

	reply, err := handler.assistant.Ask(cmd.Context(), message)
	if err != nil {
		handler.logger.Error("chat failed", zap.Error(err))
		return err
	}
	cmd.Println(reply)
	return nil
}
