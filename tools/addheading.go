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
	AddHeadingToolName    = "add_heading"
	addHeadingDescription = `Add a heading to a Word document.

Appends a heading paragraph at the given level (1-6, where 1 is largest).
Creates the document when it does not exist yet.`
)

func NewAddHeadingTool(svc *document.Service) server.ServerTool {
	tool := mcp.NewTool(AddHeadingToolName,
		mcp.WithDescription(addHeadingDescription),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Path to the Word document (.docx extension will be added if missing)"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Heading text"),
		),
		mcp.WithNumber("level",
			mcp.DefaultNumber(1),
			mcp.Description("Heading level (1-6, where 1 is largest)"),
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
		level := req.GetInt("level", 1)

		if err := svc.AddHeading(ctx, filename, text, level); err != nil {
			if errors.Is(err, document.ErrInvalidArgument) {
				return mcp.NewToolResultError("Error: Heading level must be between 1 and 6"), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Error adding heading: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Heading '%s' (level %d) added to '%s'",
			text, level, document.WithDocxExtension(filename))), nil
	}

	return server.ServerTool{Tool: tool, Handler: handler}
}
