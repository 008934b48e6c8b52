package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nexxia-ai/wordmcp/document"
)

const (
	WriteTextToolName    = "write_text"
	writeTextDescription = `Write text to a Word document.

WHEN TO USE THIS TOOL:
- Use to add a paragraph of text to a document
- Works on existing documents and creates the file when it is missing

HOW TO USE:
- Provide the document path and the text to write
- With append set (the default) the text is added after the existing content
- With append unset a fresh document replaces whatever is at the path

LIMITATIONS:
- Each call writes exactly one paragraph; call repeatedly for multiple paragraphs
- Text is written without any character formatting`
)

func NewWriteTextTool(svc *document.Service) server.ServerTool {
	tool := mcp.NewTool(WriteTextToolName,
		mcp.WithDescription(writeTextDescription),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Path to the Word document (.docx extension will be added if missing)"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text content to write"),
		),
		mcp.WithBoolean("append",
			mcp.DefaultBool(true),
			mcp.Description("If true, append to existing content. If false, replace all content."),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filename, err := req.RequireString("filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := req.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		appendMode := req.GetBool("append", true)

		appended, err := svc.WriteText(ctx, filename, text, appendMode)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error writing to document: %v", err)), nil
		}

		action := "written to"
		if appended {
			action = "appended to"
		}
		return mcp.NewToolResultText(fmt.Sprintf("Text %s '%s' successfully", action, document.WithDocxExtension(filename))), nil
	}

	return server.ServerTool{Tool: tool, Handler: handler}
}
