// Package mcpserver exposes the weather tools over the Model Context Protocol.
package mcpserver

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-mcp/internal/tools"
)

const implementationName = "weather"

type Server struct {
	server *mcp.Server
}

func New(dispatcher *tools.Dispatcher, version string) *Server {
	server := mcp.NewServer(&mcp.Implementation{Name: implementationName, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        tools.AlertsUSName,
		Description: tools.AlertsUSDescription,
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in tools.AlertsInput) (*mcp.CallToolResult, any, error) {
		return textResult(tools.AlertsUSName, dispatcher.GetAlertsUS(ctx, in)), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        tools.ForecastUSName,
		Description: tools.ForecastUSDescription,
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in tools.CoordinatesInput) (*mcp.CallToolResult, any, error) {
		return textResult(tools.ForecastUSName, dispatcher.GetForecastUS(ctx, in)), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        tools.ForecastInternationalName,
		Description: tools.ForecastInternationalDescription,
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in tools.CoordinatesInput) (*mcp.CallToolResult, any, error) {
		return textResult(tools.ForecastInternationalName, dispatcher.GetForecastInternational(ctx, in)), nil, nil
	})

	return &Server{server: server}
}

func textResult(tool, report string) *mcp.CallToolResult {
	log.Debug().Str("tool", tool).Int("bytes", len(report)).Msg("tool call served")

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: report}},
	}
}

// RunStdio serves a single session over stdin/stdout until the client
// disconnects or ctx is done.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a session over an arbitrary transport.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

// Handler serves the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}
