// Package tools defines the MCP tool surface over the document facade.
// Each tool lives in its own file: a name constant, a description, and a
// constructor returning the tool definition plus its handler. The facade's
// structured errors are rendered to human-readable strings here and nowhere
// else.
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
	ReadDocumentToolName    = "read_document"
	readDocumentDescription = `Read all text content from a Word document.

WHEN TO USE THIS TOOL:
- Use when you need the plain text of an existing .docx file
- Helpful for reviewing a document before editing it

HOW TO USE:
- Provide the path to the document; the .docx extension is added if missing
- The tool returns every non-empty paragraph, one per line

LIMITATIONS:
- Only body paragraphs are returned; table contents, headers and footers are not included
- Formatting is not preserved, only the text`
)

func NewReadDocumentTool(svc *document.Service) server.ServerTool {
	tool := mcp.NewTool(ReadDocumentToolName,
		mcp.WithDescription(readDocumentDescription),
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

		content, err := svc.Read(ctx, filename)
		if err != nil {
			if errors.Is(err, document.ErrNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Error: Document '%s' does not exist", document.WithDocxExtension(filename))), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Error reading document: %v", err)), nil
		}
		return mcp.NewToolResultText(content), nil
	}

	return server.ServerTool{Tool: tool, Handler: handler}
}
