package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

// detectOpenXMLKind determines whether a ZIP container holds a DOCX or
// PPTX by inspecting its entries.
func detectOpenXMLKind(zipBytes []byte) (core.FileKind, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return 0, fmt.Errorf("openxml container: %w", err)
	}

	hasWord := false
	hasPpt := false
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			hasWord = true
		}
		if strings.HasPrefix(f.Name, "ppt/") {
			hasPpt = true
		}
	}

	switch {
	case hasWord && !hasPpt:
		return core.FileKindDOCX, nil
	case hasPpt && !hasWord:
		return core.FileKindPPTX, nil
	default:
		return 0, fmt.Errorf("%w: zip does not look like docx or pptx", ErrUnsupportedFormat)
	}
}

// extractPPTX extracts text from a presentation, one Page per slide.
// Slides are ordered by their numeric slide number, not ZIP entry order.
func extractPPTX(zipBytes []byte) ([]Page, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("pptx container: %w", err)
	}

	type slide struct {
		number int
		text   string
	}
	var slides []slide

	for _, f := range zr.File {
		number, ok := slideNumber(f.Name)
		if !ok {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}

		// Slide text runs live in <a:t> elements
		slides = append(slides, slide{
			number: number,
			text:   collapseWhitespace(extractTextFromXML(b, "t")),
		})
	}

	if len(slides) == 0 {
		return nil, fmt.Errorf("%w: pptx without slides", ErrNoText)
	}

	slices.SortFunc(slides, func(a, b slide) int {
		return a.number - b.number
	})

	pages := make([]Page, 0, len(slides))
	extracted := false
	for _, s := range slides {
		if s.text != "" {
			extracted = true
		}
		pages = append(pages, Page{Number: s.number, Text: s.text})
	}
	if !extracted {
		return nil, fmt.Errorf("%w: pptx with %d slides", ErrNoText, len(slides))
	}
	return pages, nil
}

// slideNumber parses N from "ppt/slides/slideN.xml".
func slideNumber(name string) (int, bool) {
	if !strings.HasPrefix(name, "ppt/slides/slide") || !strings.HasSuffix(name, ".xml") {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// extractDOCX extracts text from a word document as a single page.
func extractDOCX(zipBytes []byte) ([]Page, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("docx container: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		break
	}
	if docXML == nil {
		return nil, fmt.Errorf("%w: docx without word/document.xml", ErrNoText)
	}

	// Word text runs live in <w:t> elements
	text := collapseWhitespace(extractTextFromXML(docXML, "t"))
	if text == "" {
		return nil, fmt.Errorf("%w: docx without text runs", ErrNoText)
	}
	return []Page{{Number: 1, Text: text}}, nil
}

// extractTextFromXML collects character data from all elements with the
// given local name, joined by spaces.
func extractTextFromXML(xmlBytes []byte, local string) string {
	dec := xml.NewDecoder(bytes.NewReader(xmlBytes))
	var out strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != local {
			continue
		}
		var v string
		if err := dec.DecodeElement(&v, &se); err != nil {
			continue
		}
		if v != "" {
			out.WriteString(v)
			out.WriteString(" ")
		}
	}
	return out.String()
}
