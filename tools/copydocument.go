package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nexxia-ai/wordmcp/document"
)

const (
	CopyDocumentToolName    = "copy_document"
	copyDocumentDescription = `Copy a Word document to create a new version while preserving all formatting.

The source is loaded and re-saved under the target path through the document
library, so all content, styles and formatting carry over. The copy is
refused when the target already exists.`
)

func NewCopyDocumentTool(svc *document.Service) server.ServerTool {
	tool := mcp.NewTool(CopyDocumentToolName,
		mcp.WithDescription(copyDocumentDescription),
		mcp.WithString("source_filename",
			mcp.Required(),
			mcp.Description("Path to the source Word document to copy"),
		),
		mcp.WithString("target_filename",
			mcp.Required(),
			mcp.Description("Path for the new copied document"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source, err := req.RequireString("source_filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		target, err := req.RequireString("target_filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.Copy(ctx, source, target); err != nil {
			switch {
			case errors.Is(err, document.ErrNotFound):
				return mcp.NewToolResultError(fmt.Sprintf("Error: Source document '%s' does not exist", document.WithDocxExtension(source))), nil
			case errors.Is(err, document.ErrAlreadyExists):
				return mcp.NewToolResultError(fmt.Sprintf("Error: Target document '%s' already exists", document.WithDocxExtension(target))), nil
			default:
				return mcp.NewToolResultError(fmt.Sprintf("Error copying document: %v", err)), nil
			}
		}

		return mcp.NewToolResultText(fmt.Sprintf("Document copied successfully from '%s' to '%s'",
			document.WithDocxExtension(source), document.WithDocxExtension(target))), nil
	}

	return server.ServerTool{Tool: tool, Handler: handler}
}
