package tool

import (
	"context"
	"encoding/json"
	"net/http"

	"flighttracker/config"
	cErr "flighttracker/internal/pkg/error"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// MCPTool 可註冊到 MCP server 的工具
type MCPTool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

func (t *TrackFlight) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription(TrackFlightDescription),
		mcp.WithString("flight_number",
			mcp.Required(),
			mcp.Description(FlightNumberDescription),
		),
	)
}

// Handle 失敗以 IsError 的文字結果回傳，讓模型看得到訊息
func (t *TrackFlight) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := t.Execute(ctx, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(cErr.GenericFailureMessage), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// MCPServer Streamable HTTP 形式的 MCP 端點
type MCPServer struct {
	server  *server.MCPServer
	handler *server.StreamableHTTPServer
}

func NewMCPServer(conf *config.Configuration, logger *zap.Logger, trackFlight *TrackFlight) *MCPServer {
	name, version := conf.App.Name, conf.App.Version
	if name == "" {
		name = "flighttracker"
	}
	if version == "" {
		version = "1.0.0"
	}
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(false))
	for _, t := range []MCPTool{trackFlight} {
		s.AddTool(t.Definition(), t.Handle)
		logger.Info("mcp tool registered", zap.String("tool", t.Definition().Name))
	}
	return &MCPServer{server: s, handler: server.NewStreamableHTTPServer(s)}
}

func (m *MCPServer) Handler() http.Handler {
	return m.handler
}
