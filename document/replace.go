package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	docx "github.com/fumiama/go-docx"
)

// Replace substitutes every occurrence of find with replacement across the
// document body and all table cells, run by run, and returns the number of
// occurrences replaced. The file is saved only when at least one replacement
// was made.
//
// A match must lie entirely within a single run: text split across run
// boundaries (for example by a formatting change mid-word) is never matched.
// This mirrors how the formatting of each run is preserved and is a known
// limitation, not a defect.
func (s *Service) Replace(ctx context.Context, filename, find, replacement string) (int, error) {
	filename = WithDocxExtension(filename)

	if !fileExists(filename) {
		return 0, fmt.Errorf("%q: %w", filename, ErrNotFound)
	}
	if find == "" {
		return 0, fmt.Errorf("find text must not be empty: %w", ErrInvalidArgument)
	}

	doc, err := openDocx(filename)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range bodyParagraphs(doc) {
		count += replaceInParagraph(p, find, replacement)
	}
	for _, table := range bodyTables(doc) {
		for _, row := range table.TableRows {
			for _, cell := range row.TableCells {
				for _, p := range cell.Paragraphs {
					count += replaceInParagraph(p, find, replacement)
				}
			}
		}
	}

	if count == 0 {
		return 0, nil
	}

	props, err := readCoreProperties(filename)
	if err != nil {
		return 0, err
	}
	props.Modified = time.Now()

	if err := saveDocx(doc, filename, &props); err != nil {
		return 0, err
	}

	s.log.Debug("text replaced", "filename", filename, "count", count)
	return count, nil
}

// replaceInParagraph rewrites the runs of one paragraph. The paragraph's
// visible text gates the run scan; runs are only rewritten when they contain
// the search text themselves.
func replaceInParagraph(p *docx.Paragraph, find, replacement string) int {
	if !strings.Contains(paragraphText(p), find) {
		return 0
	}

	count := 0
	for _, run := range paragraphRuns(p) {
		for _, child := range run.Children {
			t, ok := child.(*docx.Text)
			if !ok {
				continue
			}
			if n := strings.Count(t.Text, find); n > 0 {
				t.Text = strings.ReplaceAll(t.Text, find, replacement)
				count += n
			}
		}
	}
	return count
}
