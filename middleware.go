package wordmcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware wraps every tool handler with per-call logging. Each
// invocation gets its own call ID so overlapping log lines from slow
// conversions stay attributable.
func loggingMiddleware(log *slog.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			callID := uuid.NewString()
			start := time.Now()

			log.Debug("calling tool", "tool", req.Params.Name, "call_id", callID)

			res, err := next(ctx, req)

			duration := time.Since(start)
			switch {
			case err != nil:
				log.Error("tool failed", "tool", req.Params.Name, "call_id", callID, "duration", duration, "error", err)
			case res != nil && res.IsError:
				log.Debug("tool returned error result", "tool", req.Params.Name, "call_id", callID, "duration", duration)
			default:
				log.Debug("tool completed", "tool", req.Params.Name, "call_id", callID, "duration", duration)
			}
			return res, err
		}
	}
}
