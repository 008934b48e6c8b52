package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nexxia-ai/wordmcp/document"
)

const (
	ListDocumentsToolName    = "list_documents"
	listDocumentsDescription = `List all Word documents in a directory.

Lists every .docx file found in the given directory sorted by name, each
annotated with its size in KB. Defaults to the current directory.`
)

func NewListDocumentsTool(svc *document.Service) server.ServerTool {
	tool := mcp.NewTool(ListDocumentsToolName,
		mcp.WithDescription(listDocumentsDescription),
		mcp.WithString("directory",
			mcp.DefaultString("."),
			mcp.Description("Directory path to search (defaults to current directory)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		directory := req.GetString("directory", ".")

		entries, err := svc.List(ctx, directory)
		if err != nil {
			if errors.Is(err, document.ErrNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Error: Directory '%s' does not exist", directory)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Error listing documents: %v", err)), nil
		}

		if len(entries) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No Word documents found in '%s'", directory)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Found %d Word documents in '%s':\n", len(entries), directory)
		for _, e := range entries {
			fmt.Fprintf(&sb, "  • %s (%.2f KB)\n", e.Name, e.SizeKB)
		}
		return mcp.NewToolResultText(strings.TrimSpace(sb.String())), nil
	}

	return server.ServerTool{Tool: tool, Handler: handler}
}
