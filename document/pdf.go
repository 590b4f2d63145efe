package document

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts text from a PDF, one Page per PDF page.
// Pages that fail to parse are skipped; an entirely image-based PDF
// yields ErrNoText.
func extractPDF(data []byte) ([]Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("pdf reader: %w", err)
	}

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)
	extracted := false

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages may fail to parse; keep the page number so
			// later pages stay correctly attributed.
			slog.Debug("skipping unparseable pdf page", "page", i, "err", err)
			pages = append(pages, Page{Number: i})
			continue
		}

		text = collapseWhitespace(text)
		if text != "" {
			extracted = true
		}
		pages = append(pages, Page{Number: i, Text: text})
	}

	if !extracted {
		return nil, fmt.Errorf("%w: pdf with %d pages", ErrNoText, numPages)
	}
	return pages, nil
}
