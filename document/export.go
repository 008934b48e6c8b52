package document

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const pdfExtension = ".pdf"

// ExportPDF converts a document to PDF through the converter binary running
// headless. When target is empty the PDF lands next to the source with the
// extension swapped. The converter writes <source-basename>.pdf into the
// output directory; when that differs from the requested target the file is
// renamed. Returns the final PDF path.
//
// The conversion is the only blocking external wait in the facade; it is
// bounded by the configured timeout and cannot otherwise be interrupted.
func (s *Service) ExportPDF(ctx context.Context, source, target string) (string, error) {
	source = WithDocxExtension(source)

	if !fileExists(source) {
		return "", fmt.Errorf("%q: %w", source, ErrNotFound)
	}

	target = ResolvePDFTarget(source, target)
	outDir := filepath.Dir(target)

	ctx, cancel := context.WithTimeout(ctx, s.convertTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.soffice, "--headless", "--convert-to", "pdf", source, "--outdir", outDir)

	// Child processes of the converter can keep the output pipes open past
	// the deadline; WaitDelay stops Run from waiting on them forever.
	cmd.WaitDelay = time.Second

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.log.Debug("converting document", "source", source, "outdir", outDir, "converter", s.soffice)
	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = strings.TrimSpace(stdout.String())
		}
		if diag == "" {
			diag = err.Error()
		}
		return "", &ConversionError{Output: diag}
	}

	// The converter names its output after the source, not the target.
	base := strings.TrimSuffix(filepath.Base(source), DocxExtension)
	converted := filepath.Join(outDir, base+pdfExtension)

	if converted != target {
		if fileExists(target) {
			return "", fmt.Errorf("%q: %w", target, ErrAlreadyExists)
		}
		if err := os.Rename(converted, target); err != nil {
			return "", fmt.Errorf("failed to move converted file: %w", err)
		}
	}

	s.log.Debug("document exported", "source", source, "target", target)
	return target, nil
}

// ResolvePDFTarget computes the output path for a PDF export: the source
// with its extension swapped when no target is given, otherwise the given
// target normalized to the PDF extension. Exported so callers can name the
// resolved path in their own messages.
func ResolvePDFTarget(source, target string) string {
	if target == "" {
		return strings.TrimSuffix(source, DocxExtension) + pdfExtension
	}
	if !strings.HasSuffix(strings.ToLower(target), pdfExtension) {
		return target + pdfExtension
	}
	return target
}
