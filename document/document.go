// Package document implements the Word document operations behind the MCP
// tool surface. Every operation is self-contained: it opens (or creates) its
// own document handle, applies one mutation or read, saves if anything
// changed and returns a structured result. Handles are never cached or
// shared between calls.
package document

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	docx "github.com/fumiama/go-docx"
)

const (
	// DocxExtension is appended to any filename argument that lacks it.
	DocxExtension = ".docx"

	defaultSoffice        = "soffice"
	defaultConvertTimeout = 2 * time.Minute
)

// Config carries the tunables of the facade. The zero value is usable;
// missing fields fall back to defaults.
type Config struct {
	// Soffice is the LibreOffice binary used for PDF conversion.
	Soffice string

	// ConvertTimeout bounds a single PDF conversion run.
	ConvertTimeout time.Duration

	Logger *slog.Logger
}

// Service performs all document operations. It holds no per-document state.
type Service struct {
	soffice        string
	convertTimeout time.Duration
	log            *slog.Logger
}

func NewService(cfg Config) *Service {
	s := &Service{
		soffice:        cfg.Soffice,
		convertTimeout: cfg.ConvertTimeout,
		log:            cfg.Logger,
	}
	if s.soffice == "" {
		s.soffice = defaultSoffice
	}
	if s.convertTimeout <= 0 {
		s.convertTimeout = defaultConvertTimeout
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// WithDocxExtension normalizes a filename argument so that it always ends
// with the document extension.
func WithDocxExtension(filename string) string {
	if !strings.HasSuffix(filename, DocxExtension) {
		return filename + DocxExtension
	}
	return filename
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// openDocx parses an existing document. The whole package is read into
// memory first: the parser keeps its reader and re-reads package parts when
// the document is written back, so the reader must stay valid after this
// function returns — including when the save targets the same path.
func openDocx(path string) (*docx.Docx, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// newDocx constructs a fresh empty document.
func newDocx() *docx.Docx {
	return docx.New().WithDefaultTheme()
}

// saveDocx serializes the document package to path, then restores the core
// properties the library does not carry through its writer.
func saveDocx(doc *docx.Docx, path string, props *CoreProperties) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create document file: %w", err)
	}

	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close document file: %w", err)
	}

	if props != nil {
		if err := writeCoreProperties(path, *props); err != nil {
			return fmt.Errorf("failed to write core properties: %w", err)
		}
	}
	return nil
}

// bodyParagraphs returns the paragraphs of the document body, in document
// order, excluding paragraphs nested inside table cells.
func bodyParagraphs(doc *docx.Docx) []*docx.Paragraph {
	var paragraphs []*docx.Paragraph
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// bodyTables returns the tables of the document body in document order.
func bodyTables(doc *docx.Docx) []*docx.Table {
	var tables []*docx.Table
	for _, item := range doc.Document.Body.Items {
		if t, ok := item.(*docx.Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// paragraphRuns returns the text runs of a paragraph in order. Content other
// than plain runs (hyperlinks, bookmarks, drawings) is skipped; it carries no
// replaceable literal text at this level.
func paragraphRuns(p *docx.Paragraph) []*docx.Run {
	var runs []*docx.Run
	for _, child := range p.Children {
		if r, ok := child.(*docx.Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// runText concatenates the literal text of a run.
func runText(r *docx.Run) string {
	var sb strings.Builder
	for _, child := range r.Children {
		if t, ok := child.(*docx.Text); ok {
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}

// paragraphText is the visible text of a paragraph: its runs concatenated.
// Text split across run boundaries is visible here but is never matched at
// the run level.
func paragraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, r := range paragraphRuns(p) {
		sb.WriteString(runText(r))
	}
	return sb.String()
}
