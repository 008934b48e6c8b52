package document

import (
	"context"
	"fmt"
	"time"

	docx "github.com/fumiama/go-docx"
)

// Create builds a new empty document at filename, optionally stamping title
// and author into its core properties.
func (s *Service) Create(ctx context.Context, filename, title, author string) error {
	filename = WithDocxExtension(filename)

	now := time.Now()
	props := CoreProperties{
		Title:    title,
		Author:   author,
		Created:  now,
		Modified: now,
	}
	if err := saveDocx(newDocx(), filename, &props); err != nil {
		return err
	}

	s.log.Debug("document created", "filename", filename)
	return nil
}

// Copy loads source and re-saves it under target, preserving content,
// formatting and metadata by round-tripping through the document library.
// It never byte-copies.
func (s *Service) Copy(ctx context.Context, source, target string) error {
	source = WithDocxExtension(source)
	target = WithDocxExtension(target)

	if !fileExists(source) {
		return fmt.Errorf("%q: %w", source, ErrNotFound)
	}
	if fileExists(target) {
		return fmt.Errorf("%q: %w", target, ErrAlreadyExists)
	}

	doc, err := openDocx(source)
	if err != nil {
		return err
	}
	props, err := readCoreProperties(source)
	if err != nil {
		return err
	}

	if err := saveDocx(doc, target, &props); err != nil {
		return err
	}

	s.log.Debug("document copied", "source", source, "target", target)
	return nil
}

// WriteText appends one paragraph holding text. With append set and an
// existing file the current content is kept; otherwise a fresh document
// replaces whatever is at the path. The returned flag reports whether the
// text was appended to existing content.
func (s *Service) WriteText(ctx context.Context, filename, text string, append bool) (bool, error) {
	filename = WithDocxExtension(filename)

	now := time.Now()
	appended := append && fileExists(filename)

	var doc *docx.Docx
	var props CoreProperties
	if appended {
		opened, err := openDocx(filename)
		if err != nil {
			return false, err
		}
		props, err = readCoreProperties(filename)
		if err != nil {
			return false, err
		}
		doc = opened
	} else {
		doc = newDocx()
		props.Created = now
	}
	props.Modified = now

	doc.AddParagraph().AddText(text)

	if err := saveDocx(doc, filename, &props); err != nil {
		return false, err
	}

	s.log.Debug("text written", "filename", filename, "appended", appended)
	return appended, nil
}

// AddHeading appends a heading paragraph at the given level. Levels outside
// [1,6] are rejected before any file is touched.
func (s *Service) AddHeading(ctx context.Context, filename, text string, level int) error {
	if level < 1 || level > 6 {
		return fmt.Errorf("heading level must be between 1 and 6: %w", ErrInvalidArgument)
	}

	filename = WithDocxExtension(filename)

	now := time.Now()
	var doc *docx.Docx
	var props CoreProperties
	if fileExists(filename) {
		opened, err := openDocx(filename)
		if err != nil {
			return err
		}
		props, err = readCoreProperties(filename)
		if err != nil {
			return err
		}
		doc = opened
	} else {
		doc = newDocx()
		props.Created = now
	}
	props.Modified = now

	doc.AddParagraph().Style(fmt.Sprintf("Heading%d", level)).AddText(text)

	if err := saveDocx(doc, filename, &props); err != nil {
		return err
	}

	s.log.Debug("heading added", "filename", filename, "level", level)
	return nil
}
