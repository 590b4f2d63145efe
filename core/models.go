package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ChunkID generates the deterministic ID for a chunk of a document.
// Chunk IDs hash the "{documentID}_chunk_{index}" tuple so reprocessing a
// document produces the same chunk IDs.
func ChunkID(documentID ID, chunkIndex int) ID {
	return IDFromContent(fmt.Sprintf("%d_chunk_%d", documentID, chunkIndex))
}

// FileKind identifies the source format of an uploaded document.
type FileKind int

const (
	// FileKindPDF is an Adobe PDF document.
	FileKindPDF FileKind = iota + 1
	// FileKindPPTX is an OOXML PowerPoint presentation (.pptx, also used for .ppt uploads).
	FileKindPPTX
	// FileKindDOCX is an OOXML Word document.
	FileKindDOCX
	// FileKindText is plain text or markdown.
	FileKindText
)

// String returns the lowercase name of the file kind.
func (k FileKind) String() string {
	switch k {
	case FileKindPDF:
		return "pdf"
	case FileKindPPTX:
		return "pptx"
	case FileKindDOCX:
		return "docx"
	case FileKindText:
		return "text"
	default:
		return "unknown"
	}
}

// DocumentStatus tracks a document through the ingestion pipeline.
type DocumentStatus int

const (
	// StatusPending means the document is stored but processing has not started.
	StatusPending DocumentStatus = iota + 1
	// StatusProcessing means extraction/chunking/embedding is in progress.
	StatusProcessing
	// StatusCompleted means the document is fully indexed and searchable.
	StatusCompleted
	// StatusFailed means processing aborted; Document.Error holds the reason.
	StatusFailed
)

// String returns the lowercase name of the status.
func (s DocumentStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseDocumentStatus converts a status name back to its enum value.
// Returns 0 for unrecognized names.
func ParseDocumentStatus(name string) DocumentStatus {
	switch name {
	case "pending":
		return StatusPending
	case "processing":
		return StatusProcessing
	case "completed":
		return StatusCompleted
	case "failed":
		return StatusFailed
	default:
		return 0
	}
}

// BrandElements holds brand identity signals extracted from a document.
type BrandElements struct {
	Colors        []string       // hex (#RRGGBB) and rgb(r,g,b) color mentions, in document order
	KeywordCounts map[string]int // brand vocabulary term -> mention count
}

// Document represents an uploaded brand playbook document.
// Page/chunk counts and brand elements are populated by the ingestion pipeline.
type Document struct {
	Id          ID
	Name        string // original file name, e.g. "brand-guidelines.pdf"
	Kind        FileKind
	Status      DocumentStatus
	Error       string // failure reason when Status == StatusFailed
	SizeBytes   int64
	PageCount   int
	ChunkCount  int
	Brand       BrandElements
	UploadedAt  time.Time // when the file was received
	ProcessedAt time.Time // when processing last finished (zero until then)
	UpdatedAt   time.Time
	Metadata    map[string]string // optional metadata (e.g. "content_type", "storage_path")
}

// Chunk is a bounded, overlapping segment of document text prepared for
// embedding and retrieval. Chunk IDs are content-derived (see ChunkID).
type Chunk struct {
	Id           ID
	DocumentId   ID
	DocumentName string
	PageNumber   int // 1-based page (PDF) or slide (PPTX) number
	ChunkIndex   int // position within the document, 0-based
	Contents     string
	TokenCount   int
	Vector       []float32 // embedding, populated by the pipeline
	InsertedAt   time.Time
	UpdatedAt    time.Time
}

// SourceRef attributes part of a generated answer to a stored chunk.
type SourceRef struct {
	ChunkId      ID
	DocumentId   ID
	DocumentName string
	PageNumber   int
	Relevance    float32
	Excerpt      string // passage text truncated to 200 chars
}

// Question records a question/answer exchange, including the sources that
// backed the answer and any feedback the user left afterwards.
type Question struct {
	Id          ID
	SessionId   string // conversation/session identifier, opaque UUID string
	Query       string
	Answer      string
	Confidence  float32
	Provider    string // "openai" or "anthropic"
	Sources     []SourceRef
	HasFeedback bool
	Helpful     bool
	Feedback    string
	AskedAt     time.Time
	UpdatedAt   time.Time
}

// Idea is a single creative idea produced during ideation.
type Idea struct {
	Title       string
	Description string
	Persona     string // persona key that produced the idea, empty for direct generation
}

// IdeationSession groups the ideas generated for one topic so they can be
// enhanced, evaluated and refined in later calls.
type IdeationSession struct {
	Id        ID
	Topic     string
	Personas  []string // persona keys used, empty for direct generation
	Ideas     []Idea
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Checkpoint tracks the last entity processed by a named processor so that
// maintenance jobs can resume after interruption.
type Checkpoint struct {
	ProcessorType string
	LastId        ID
	UpdatedAt     time.Time
}

// SimilarityMatch represents a chunk match from vector similarity search.
type SimilarityMatch struct {
	ChunkId ID
	Score   float32
}

// SearchResult represents a retrieval result with the full chunk and relevance score.
type SearchResult struct {
	Chunk *Chunk
	Score float32
}
