package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nexxia-ai/wordmcp/document"
)

const (
	DocumentInfoToolName    = "get_document_info"
	documentInfoDescription = `Get basic information about a Word document.

Returns a JSON summary with the document's title, author, created and
modified timestamps, paragraph and table counts, and file size in KB.
Metadata fields the document does not carry are reported as "Unknown".`
)

func NewDocumentInfoTool(svc *document.Service) server.ServerTool {
	tool := mcp.NewTool(DocumentInfoToolName,
		mcp.WithDescription(documentInfoDescription),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Path to the Word document (.docx extension will be added if missing)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filename, err := req.RequireString("filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		info, err := svc.Info(ctx, filename)
		if err != nil {
			if errors.Is(err, document.ErrNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Error: Document '%s' does not exist", document.WithDocxExtension(filename))), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Error getting document info: %v", err)), nil
		}

		payload, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error getting document info: %v", err)), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	}

	return server.ServerTool{Tool: tool, Handler: handler}
}
