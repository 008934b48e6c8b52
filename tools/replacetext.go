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
	ReplaceTextToolName    = "replace_text"
	replaceTextDescription = `Find and replace text in a Word document.

WHEN TO USE THIS TOOL:
- Use to substitute every occurrence of a phrase throughout a document
- Covers body paragraphs and all table cells, preserving run formatting

HOW TO USE:
- Provide the document path, the text to find and the replacement
- The tool reports how many occurrences were replaced
- The file is only rewritten when at least one occurrence was found

LIMITATIONS:
- A match must lie within a single formatting run; text split across a
  formatting boundary mid-phrase is not matched
- Headers and footers are not searched`
)

func NewReplaceTextTool(svc *document.Service) server.ServerTool {
	tool := mcp.NewTool(ReplaceTextToolName,
		mcp.WithDescription(replaceTextDescription),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Path to the Word document (.docx extension will be added if missing)"),
		),
		mcp.WithString("find_text",
			mcp.Required(),
			mcp.Description("Text to search for"),
		),
		mcp.WithString("replace_text",
			mcp.Required(),
			mcp.Description("Text to replace with"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filename, err := req.RequireString("filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		findText, err := req.RequireString("find_text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		replaceWith, err := req.RequireString("replace_text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		count, err := svc.Replace(ctx, filename, findText, replaceWith)
		if err != nil {
			if errors.Is(err, document.ErrNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Error: Document '%s' does not exist", document.WithDocxExtension(filename))), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Error replacing text: %v", err)), nil
		}

		if count == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No occurrences of '%s' found", findText)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Replaced %d occurrence(s) of '%s' with '%s'", count, findText, replaceWith)), nil
	}

	return server.ServerTool{Tool: tool, Handler: handler}
}
