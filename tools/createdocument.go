package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nexxia-ai/wordmcp/document"
)

const (
	CreateDocumentToolName    = "create_document"
	createDocumentDescription = `Create a new empty Word document.

Optionally stamps a title and author into the document metadata. Fails when
the target path is not writable.`
)

func NewCreateDocumentTool(svc *document.Service) server.ServerTool {
	tool := mcp.NewTool(CreateDocumentToolName,
		mcp.WithDescription(createDocumentDescription),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Name for the new document (.docx extension will be added if missing)"),
		),
		mcp.WithString("title",
			mcp.Description("Optional title for document metadata"),
		),
		mcp.WithString("author",
			mcp.Description("Optional author for document metadata"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filename, err := req.RequireString("filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		title := req.GetString("title", "")
		author := req.GetString("author", "")

		if err := svc.Create(ctx, filename, title, author); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating document: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Document '%s' created successfully", document.WithDocxExtension(filename))), nil
	}

	return server.ServerTool{Tool: tool, Handler: handler}
}
