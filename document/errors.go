package document

import "errors"

var (
	// ErrEmptyFile indicates the uploaded file has no content.
	ErrEmptyFile = errors.New("empty file")

	// ErrUnsupportedFormat indicates the file format cannot be extracted.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNoText indicates extraction produced no text, e.g. an image-only
	// PDF or an OOXML container without text parts.
	ErrNoText = errors.New("no text extracted")
)
