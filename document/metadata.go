package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Core-property handling works on the raw document package. The object
// library regenerates docProps/core.xml from its own template on every save,
// so title, author and timestamps live here, read and written by rewriting
// the zip entry directly.

const (
	corePropsPath    = "docProps/core.xml"
	contentTypesPath = "[Content_Types].xml"
	packageRelsPath  = "_rels/.rels"

	corePropsContentType = `<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`
	corePropsRel         = `<Relationship Id="rIdCoreProps" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>`
)

// CoreProperties is the document metadata stored in docProps/core.xml.
// Zero-valued fields are absent in the file.
type CoreProperties struct {
	Title    string
	Author   string
	Created  time.Time
	Modified time.Time
}

type corePropsXML struct {
	XMLName  xml.Name `xml:"coreProperties"`
	Title    string   `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creator  string   `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Created  string   `xml:"http://purl.org/dc/terms/ created"`
	Modified string   `xml:"http://purl.org/dc/terms/ modified"`
}

// readCoreProperties extracts the core properties of the document at path.
// A package without a docProps/core.xml part yields zero properties, not an
// error.
func readCoreProperties(path string) (CoreProperties, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return CoreProperties{}, fmt.Errorf("failed to open document package: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != corePropsPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return CoreProperties{}, fmt.Errorf("failed to open core properties: %w", err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return CoreProperties{}, fmt.Errorf("failed to read core properties: %w", err)
		}

		var parsed corePropsXML
		if err := xml.Unmarshal(data, &parsed); err != nil {
			return CoreProperties{}, fmt.Errorf("failed to parse core properties: %w", err)
		}
		return CoreProperties{
			Title:    parsed.Title,
			Author:   parsed.Creator,
			Created:  parseW3CDTF(parsed.Created),
			Modified: parseW3CDTF(parsed.Modified),
		}, nil
	}
	return CoreProperties{}, nil
}

// writeCoreProperties rewrites the document package at path with the given
// core properties, adding the part (and its content-type override and
// package relationship) when the package lacks one.
func writeCoreProperties(path string, props CoreProperties) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open document package: %w", err)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	wrotePart := false

	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			r.Close()
			return fmt.Errorf("failed to open package entry %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			r.Close()
			return fmt.Errorf("failed to read package entry %s: %w", f.Name, err)
		}

		switch f.Name {
		case corePropsPath:
			content = renderCoreProperties(props)
			wrotePart = true
		case contentTypesPath:
			content = ensureFragment(content, corePropsContentType, "</Types>")
		case packageRelsPath:
			content = ensureFragment(content, corePropsRel, "</Relationships>")
		}

		header := f.FileHeader
		fw, err := w.CreateHeader(&header)
		if err != nil {
			r.Close()
			return fmt.Errorf("failed to create package entry %s: %w", f.Name, err)
		}
		if _, err := fw.Write(content); err != nil {
			r.Close()
			return fmt.Errorf("failed to write package entry %s: %w", f.Name, err)
		}
	}
	r.Close()

	if !wrotePart {
		fw, err := w.Create(corePropsPath)
		if err != nil {
			return fmt.Errorf("failed to create core properties entry: %w", err)
		}
		if _, err := fw.Write(renderCoreProperties(props)); err != nil {
			return fmt.Errorf("failed to write core properties entry: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize document package: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ensureFragment inserts fragment before the closing tag unless the content
// already references the core-properties part.
func ensureFragment(content []byte, fragment, closing string) []byte {
	s := string(content)
	if strings.Contains(s, corePropsPath) || !strings.Contains(s, closing) {
		return content
	}
	return []byte(strings.Replace(s, closing, fragment+closing, 1))
}

// renderCoreProperties serializes core properties with the prefixed
// namespaces Word expects. encoding/xml cannot emit prefixed namespaces, so
// the part is built from a literal skeleton.
func renderCoreProperties(props CoreProperties) []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString("\n")
	sb.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	if props.Title != "" {
		sb.WriteString("<dc:title>")
		sb.WriteString(escapeXML(props.Title))
		sb.WriteString("</dc:title>")
	}
	if props.Author != "" {
		sb.WriteString("<dc:creator>")
		sb.WriteString(escapeXML(props.Author))
		sb.WriteString("</dc:creator>")
	}
	if !props.Created.IsZero() {
		sb.WriteString(`<dcterms:created xsi:type="dcterms:W3CDTF">`)
		sb.WriteString(props.Created.UTC().Format(time.RFC3339))
		sb.WriteString("</dcterms:created>")
	}
	if !props.Modified.IsZero() {
		sb.WriteString(`<dcterms:modified xsi:type="dcterms:W3CDTF">`)
		sb.WriteString(props.Modified.UTC().Format(time.RFC3339))
		sb.WriteString("</dcterms:modified>")
	}
	sb.WriteString("</cp:coreProperties>")
	return []byte(sb.String())
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// parseW3CDTF accepts the timestamp formats seen in core.xml parts in the
// wild. Unparseable or empty values come back as the zero time.
func parseW3CDTF(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z0700", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
