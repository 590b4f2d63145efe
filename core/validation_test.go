package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateDocument(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc: &Document{
				Id:         1,
				Name:       "guidelines.pdf",
				Kind:       FileKindPDF,
				Status:     StatusPending,
				UploadedAt: validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid document with ID 0",
			doc: &Document{
				Name:       "deck.pptx",
				Kind:       FileKindPPTX,
				Status:     StatusPending,
				UploadedAt: validTime,
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name: "empty name",
			doc: &Document{
				Kind:       FileKindPDF,
				Status:     StatusPending,
				UploadedAt: validTime,
			},
			wantErr: ErrEmptyName,
		},
		{
			name: "invalid file kind",
			doc: &Document{
				Name:       "guidelines.pdf",
				Kind:       FileKind(42),
				Status:     StatusPending,
				UploadedAt: validTime,
			},
			wantErr: ErrInvalidFileKind,
		},
		{
			name: "invalid status",
			doc: &Document{
				Name:       "guidelines.pdf",
				Kind:       FileKindPDF,
				Status:     DocumentStatus(42),
				UploadedAt: validTime,
			},
			wantErr: ErrInvalidStatus,
		},
		{
			name: "future upload time",
			doc: &Document{
				Name:       "guidelines.pdf",
				Kind:       FileKindPDF,
				Status:     StatusPending,
				UploadedAt: futureTime,
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateChunk(t *testing.T) {
	tests := []struct {
		name    string
		chunk   *Chunk
		wantErr error
	}{
		{
			name: "valid chunk",
			chunk: &Chunk{
				Id:         ChunkID(1, 0),
				DocumentId: 1,
				PageNumber: 1,
				Contents:   "Our primary color is #FF5733.",
			},
			wantErr: nil,
		},
		{
			name: "valid chunk without vector",
			chunk: &Chunk{
				DocumentId: 1,
				PageNumber: 3,
				Contents:   "Logo clearance rules.",
				Vector:     nil,
			},
			wantErr: nil,
		},
		{
			name:    "nil chunk",
			chunk:   nil,
			wantErr: ErrInvalidChunk,
		},
		{
			name: "empty contents",
			chunk: &Chunk{
				DocumentId: 1,
				PageNumber: 1,
			},
			wantErr: ErrEmptyContent,
		},
		{
			name: "zero document id",
			chunk: &Chunk{
				PageNumber: 1,
				Contents:   "text",
			},
			wantErr: ErrInvalidChunk,
		},
		{
			name: "zero page number",
			chunk: &Chunk{
				DocumentId: 1,
				Contents:   "text",
			},
			wantErr: ErrInvalidChunk,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChunk(tt.chunk)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateChunk() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateChunk() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuestion(t *testing.T) {
	valid := &Question{Query: "What is our primary color?", Confidence: 0.8}
	if err := ValidateQuestion(valid); err != nil {
		t.Errorf("ValidateQuestion() error = %v, want nil", err)
	}

	if err := ValidateQuestion(nil); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("ValidateQuestion(nil) error = %v, want %v", err, ErrInvalidQuestion)
	}

	if err := ValidateQuestion(&Question{Confidence: 0.5}); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("ValidateQuestion() error = %v, want %v", err, ErrEmptyQuery)
	}

	if err := ValidateQuestion(&Question{Query: "q", Confidence: 1.5}); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("ValidateQuestion() error = %v, want %v", err, ErrInvalidQuestion)
	}
}

func TestValidateSession(t *testing.T) {
	if err := ValidateSession(&IdeationSession{Topic: "summer campaign"}); err != nil {
		t.Errorf("ValidateSession() error = %v, want nil", err)
	}

	if err := ValidateSession(nil); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("ValidateSession(nil) error = %v, want %v", err, ErrInvalidSession)
	}

	if err := ValidateSession(&IdeationSession{}); !errors.Is(err, ErrEmptyTopic) {
		t.Errorf("ValidateSession() error = %v, want %v", err, ErrEmptyTopic)
	}
}
