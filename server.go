// Package wordmcp assembles the Word document MCP server: the document
// facade, the tool registry and the stdio transport.
package wordmcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/nexxia-ai/wordmcp/document"
	"github.com/nexxia-ai/wordmcp/tools"
)

const (
	ServerName = "Word Document Server"
	Version    = "0.1.0"
)

// NewServer builds the MCP server with the full tool table registered.
// Logging must go to the supplied logger (typically stderr); stdout carries
// the protocol.
func NewServer(svc *document.Service, log *slog.Logger) *server.MCPServer {
	if log == nil {
		log = slog.Default()
	}

	s := server.NewMCPServer(ServerName, Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(loggingMiddleware(log)),
	)
	s.AddTools(tools.Registry(svc)...)
	return s
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
