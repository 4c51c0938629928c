package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/uicatalog/pkg/mcplog"
)

// loggingMiddleware records every tool call: a debug slog line always, and a
// JSONL entry when the tool log is enabled.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := mcplog.Now()
			result, err := next(ctx, req)

			entry := mcplog.NewEntry(req.Params.Name, req.GetArguments(), start, result, err)
			s.log.Debug("tool call",
				"tool", entry.Tool,
				"ms", entry.DurationMs,
				"bytes", entry.ResponseBytes,
				"is_error", entry.IsError)

			if werr := s.toolLog.Write(entry); werr != nil {
				s.log.Warn("failed to write tool log", "error", werr)
			}
			return result, err
		}
	}
}
