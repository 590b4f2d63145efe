// Copyright 2025 PlaybookWiz Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Kind must be a known FileKind
//   - Status must be a known DocumentStatus
//   - UploadedAt must not be in the future
//
// NOT validated (populated by the pipeline):
//   - PageCount, ChunkCount, Brand, ProcessedAt
//   - ID (0 is valid from database sequences)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyName)
	}

	if err := ValidateFileKind(doc.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if err := ValidateDocumentStatus(doc.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if !IsValidTimestamp(doc.UploadedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Contents must not be empty
//   - DocumentId must not be zero
//   - PageNumber must be >= 1
//
// NOT validated (populated by processors):
//   - Vector (can be empty until the embedding step runs)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Contents == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}

	if chunk.DocumentId == 0 {
		return fmt.Errorf("%w: document id is zero", ErrInvalidChunk)
	}

	if chunk.PageNumber < 1 {
		return fmt.Errorf("%w: page number %d", ErrInvalidChunk, chunk.PageNumber)
	}

	return nil
}

// ValidateQuestion validates a Question according to domain rules.
func ValidateQuestion(q *Question) error {
	if q == nil {
		return fmt.Errorf("%w: question is nil", ErrInvalidQuestion)
	}

	if q.Query == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuestion, ErrEmptyQuery)
	}

	if q.Confidence < 0 || q.Confidence > 1 {
		return fmt.Errorf("%w: confidence %f out of range", ErrInvalidQuestion, q.Confidence)
	}

	return nil
}

// ValidateSession validates an IdeationSession according to domain rules.
func ValidateSession(s *IdeationSession) error {
	if s == nil {
		return fmt.Errorf("%w: session is nil", ErrInvalidSession)
	}

	if s.Topic == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSession, ErrEmptyTopic)
	}

	return nil
}

// ValidateFileKind validates that a FileKind has a valid value.
func ValidateFileKind(kind FileKind) error {
	switch kind {
	case FileKindPDF, FileKindPPTX, FileKindDOCX, FileKindText:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidFileKind, kind)
	}
}

// ValidateDocumentStatus validates that a DocumentStatus has a valid value.
func ValidateDocumentStatus(status DocumentStatus) error {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, status)
	}
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
