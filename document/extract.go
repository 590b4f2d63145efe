package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

// Page is a unit of extracted text with its 1-based page number.
// For PPTX files the page number is the slide number.
type Page struct {
	Number int
	Text   string
}

// Extraction is the result of extracting a document.
type Extraction struct {
	Kind  core.FileKind
	Pages []Page
	Brand core.BrandElements
}

// PageCount returns the number of extracted pages.
func (e *Extraction) PageCount() int {
	return len(e.Pages)
}

// Text returns the full extracted text with pages joined by newlines.
func (e *Extraction) Text() string {
	parts := make([]string, 0, len(e.Pages))
	for _, p := range e.Pages {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// DetectKind determines the true file kind by sniffing magic bytes,
// falling back to the file extension for plain text.
func DetectKind(name string, data []byte) (core.FileKind, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty file %q", ErrEmptyFile, name)
	}

	if isPDF(data) {
		return core.FileKindPDF, nil
	}
	if isZip(data) {
		kind, err := detectOpenXMLKind(data)
		if err != nil {
			return 0, err
		}
		return kind, nil
	}
	if isProbablyText(data) {
		return core.FileKindText, nil
	}

	ext := strings.ToLower(filepath.Ext(name))
	return 0, fmt.Errorf("%w: name=%s ext=%s", ErrUnsupportedFormat, name, ext)
}

// Extract sniffs the file kind and extracts page-attributed text and
// brand elements.
func Extract(name string, data []byte) (*Extraction, error) {
	kind, err := DetectKind(name, data)
	if err != nil {
		return nil, err
	}

	var pages []Page
	switch kind {
	case core.FileKindPDF:
		pages, err = extractPDF(data)
	case core.FileKindPPTX:
		pages, err = extractPPTX(data)
	case core.FileKindDOCX:
		pages, err = extractDOCX(data)
	case core.FileKindText:
		pages = []Page{{Number: 1, Text: collapseWhitespace(string(data))}}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, kind)
	}
	if err != nil {
		return nil, err
	}

	extraction := &Extraction{Kind: kind, Pages: pages}
	extraction.Brand = ExtractBrandElements(extraction.Text())
	return extraction, nil
}

// isPDF reports whether the data starts with the PDF magic bytes.
func isPDF(b []byte) bool {
	// PDF starts with "%PDF-"
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

// isZip reports whether the data starts with a ZIP local file header.
func isZip(b []byte) bool {
	// ZIP local file header: PK\x03\x04
	return len(b) >= 4 && b[0] == 'P' && b[1] == 'K' && b[2] == 3 && b[3] == 4
}

// isProbablyText reports whether the data looks like plain text:
// mostly printable or whitespace bytes and no NULs.
func isProbablyText(b []byte) bool {
	sample := b
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	good := 0
	for _, c := range sample {
		if c == 0x00 {
			return false
		}
		if c == '\n' || c == '\r' || c == '\t' || (c >= 0x20 && c <= 0x7E) || c >= 0x80 {
			good++
		}
	}
	// allow some binary noise
	return float64(good)/float64(len(sample)) > 0.9
}

// collapseWhitespace normalizes all runs of whitespace to single spaces.
func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
