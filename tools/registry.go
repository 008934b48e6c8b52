package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/nexxia-ai/wordmcp/document"
)

// Registry returns the full tool table, statically constructed around one
// facade instance. The caller passes the table to the transport layer;
// nothing registers itself globally.
func Registry(svc *document.Service) []server.ServerTool {
	return []server.ServerTool{
		NewReadDocumentTool(svc),
		NewDocumentInfoTool(svc),
		NewListDocumentsTool(svc),
		NewCopyDocumentTool(svc),
		NewCreateDocumentTool(svc),
		NewWriteTextTool(svc),
		NewAddHeadingTool(svc),
		NewReplaceTextTool(svc),
		NewExportPDFTool(svc),
	}
}
