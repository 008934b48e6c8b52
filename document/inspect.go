package document

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Info summarizes a document. Timestamp fields hold "Unknown" when the
// package carries no core properties.
type Info struct {
	Filename       string  `json:"filename"`
	Title          string  `json:"title"`
	Author         string  `json:"author"`
	Created        string  `json:"created"`
	Modified       string  `json:"modified"`
	ParagraphCount int     `json:"paragraph_count"`
	TableCount     int     `json:"table_count"`
	FileSizeKB     float64 `json:"file_size_kb"`
}

// ListEntry is one document found by List.
type ListEntry struct {
	Name   string
	SizeKB float64
}

// Read returns all non-empty body paragraph texts joined by newlines.
// The document is not modified.
func (s *Service) Read(ctx context.Context, filename string) (string, error) {
	filename = WithDocxExtension(filename)

	if !fileExists(filename) {
		return "", fmt.Errorf("%q: %w", filename, ErrNotFound)
	}

	doc, err := openDocx(filename)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, p := range bodyParagraphs(doc) {
		if text := paragraphText(p); strings.TrimSpace(text) != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// Info collects metadata and structure counts for a document.
func (s *Service) Info(ctx context.Context, filename string) (*Info, error) {
	filename = WithDocxExtension(filename)

	stat, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", filename, ErrNotFound)
	}

	doc, err := openDocx(filename)
	if err != nil {
		return nil, err
	}

	props, err := readCoreProperties(filename)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Filename:       filename,
		Title:          props.Title,
		Author:         props.Author,
		Created:        formatTimestamp(props.Created),
		Modified:       formatTimestamp(props.Modified),
		ParagraphCount: len(bodyParagraphs(doc)),
		TableCount:     len(bodyTables(doc)),
		FileSizeKB:     roundKB(stat.Size()),
	}
	if info.Title == "" {
		info.Title = "Untitled"
	}
	if info.Author == "" {
		info.Author = "Unknown"
	}
	return info, nil
}

// List returns every document in directory, sorted lexicographically.
func (s *Service) List(ctx context.Context, directory string) ([]ListEntry, error) {
	if _, err := os.Stat(directory); err != nil {
		return nil, fmt.Errorf("%q: %w", directory, ErrNotFound)
	}

	dirEntries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var entries []ListEntry
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), DocxExtension) {
			continue
		}
		stat, err := os.Stat(filepath.Join(directory, e.Name()))
		if err != nil {
			continue
		}
		entries = append(entries, ListEntry{Name: e.Name(), SizeKB: roundKB(stat.Size())})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.UTC().Format(time.RFC3339)
}

func roundKB(size int64) float64 {
	return math.Round(float64(size)/1024*100) / 100
}
