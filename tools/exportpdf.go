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
	ExportPDFToolName    = "export_to_pdf"
	exportPDFDescription = `Export a Word document to PDF format.

WHEN TO USE THIS TOOL:
- Use to produce a PDF rendering of an existing document

HOW TO USE:
- Provide the source document path
- Optionally provide a target path; it defaults to the source name with a
  .pdf extension

LIMITATIONS:
- Requires LibreOffice to be installed and reachable as the configured
  converter binary (soffice by default)
- The conversion cannot be interrupted once started, other than by its
  configured timeout`
)

func NewExportPDFTool(svc *document.Service) server.ServerTool {
	tool := mcp.NewTool(ExportPDFToolName,
		mcp.WithDescription(exportPDFDescription),
		mcp.WithString("source_filename",
			mcp.Required(),
			mcp.Description("Path to the source Word document"),
		),
		mcp.WithString("target_filename",
			mcp.Description("Optional path for the PDF output (defaults to same name with .pdf extension)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source, err := req.RequireString("source_filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		target := req.GetString("target_filename", "")

		pdfPath, err := svc.ExportPDF(ctx, source, target)
		if err != nil {
			var convErr *document.ConversionError
			switch {
			case errors.Is(err, document.ErrNotFound):
				return mcp.NewToolResultError(fmt.Sprintf("Error: Source document '%s' does not exist", document.WithDocxExtension(source))), nil
			case errors.Is(err, document.ErrAlreadyExists):
				resolved := document.ResolvePDFTarget(document.WithDocxExtension(source), target)
				return mcp.NewToolResultError(fmt.Sprintf("Error: Target file '%s' already exists", resolved)), nil
			case errors.As(err, &convErr):
				return mcp.NewToolResultError(fmt.Sprintf("Conversion failed: %s", convErr.Output)), nil
			default:
				return mcp.NewToolResultError(fmt.Sprintf("Error during PDF conversion: %v", err)), nil
			}
		}
		return mcp.NewToolResultText(fmt.Sprintf("Document converted to PDF: '%s'", pdfPath)), nil
	}

	return server.ServerTool{Tool: tool, Handler: handler}
}
