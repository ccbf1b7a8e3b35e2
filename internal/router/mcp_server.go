package router

import (
	"flighttracker/config"
	"flighttracker/internal/middleware"
	"flighttracker/internal/tool"

	"github.com/gin-gonic/gin"
)

const defaultMCPPath = "/mcp"

// MCPRouter Streamable HTTP 的 MCP 端點，GET/POST/DELETE 都交給 mcp-go 處理
type MCPRouter struct {
	config              *config.Configuration
	mcpServer           *tool.MCPServer
	ratelimitMiddleware *middleware.RateLimit
}

func NewMCPRouter(
	config *config.Configuration,
	mcpServer *tool.MCPServer,
	ratelimitMiddleware *middleware.RateLimit,
) *MCPRouter {
	return &MCPRouter{
		config:              config,
		mcpServer:           mcpServer,
		ratelimitMiddleware: ratelimitMiddleware,
	}
}

func (mcpRouter *MCPRouter) RegisterRoutes(engine *gin.Engine) {
	if !mcpRouter.config.MCP.Enabled {
		return
	}
	path := mcpRouter.config.MCP.Path
	if path == "" {
		path = defaultMCPPath
	}
	h := gin.WrapH(mcpRouter.mcpServer.Handler())
	router := engine.Group(path)
	router.Use(mcpRouter.ratelimitMiddleware.Guard())
	{
		router.GET("", h)
		router.POST("", h)
		router.DELETE("", h)
	}
}
