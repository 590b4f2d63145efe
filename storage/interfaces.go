package storage

import (
	"context"
	"time"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing uploaded documents.
type DocumentRepository interface {
	Repository

	// AddDocuments adds one or more documents to storage.
	// For documents with ID=0, generates new IDs from sequence.
	// Sets UploadedAt timestamp if not already set.
	// Returns the documents with generated IDs and timestamps populated.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// UpdateDocuments updates existing documents.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any document doesn't exist.
	UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// DeleteDocument removes a document and all of its chunks in a
	// single transaction. Returns the number of chunks removed, or
	// ErrNotFound if the document doesn't exist.
	DeleteDocument(ctx context.Context, id core.ID) (int, error)

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// ListDocuments retrieves documents ordered by upload time descending.
	// status filters by DocumentStatus when non-zero.
	// skip/limit paginate; limit <= 0 means no limit.
	ListDocuments(ctx context.Context, status core.DocumentStatus, skip, limit int) ([]*core.Document, error)

	// CountDocuments returns the number of stored documents, optionally
	// filtered by status (0 = all).
	CountDocuments(ctx context.Context, status core.DocumentStatus) (int, error)
}

// ChunkRepository provides operations for managing document chunks.
type ChunkRepository interface {
	Repository

	// AddChunks adds one or more chunks to storage.
	// Uses content-based IDs (core.ChunkID of document ID and index).
	// Sets InsertedAt timestamp if not already set.
	// Returns the chunks with timestamps populated.
	AddChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// UpdateChunks updates existing chunks.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any chunk doesn't exist.
	UpdateChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// DeleteDocumentChunks removes all chunks belonging to a document.
	// Returns the number of chunks removed.
	DeleteDocumentChunks(ctx context.Context, documentID core.ID) (int, error)

	// GetChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error)

	// GetChunks retrieves multiple chunks by their IDs.
	// Returns only the chunks that exist (no error for missing chunks).
	GetChunks(ctx context.Context, ids ...core.ID) ([]*core.Chunk, error)

	// GetDocumentChunks retrieves all chunks for a document ordered by
	// chunk index.
	GetDocumentChunks(ctx context.Context, documentID core.ID) ([]*core.Chunk, error)

	// CountChunks returns the total number of stored chunks.
	CountChunks(ctx context.Context) (int, error)

	// FindSimilar finds chunks similar to the given vector.
	// When documentIDs is non-empty, only chunks from those documents are
	// considered. Returns chunks with similarity >= minSimilarity, up to
	// limit results, ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int, documentIDs ...core.ID) ([]*core.SearchResult, error)
}

// QuestionRepository provides operations for question/answer history.
type QuestionRepository interface {
	Repository

	// AddQuestions adds question records to storage.
	// For records with ID=0, generates new IDs from sequence.
	// Sets AskedAt timestamp if not already set.
	AddQuestions(ctx context.Context, questions ...*core.Question) ([]*core.Question, error)

	// UpdateQuestions updates existing question records (e.g. feedback).
	// Returns ErrNotFound if any record doesn't exist.
	UpdateQuestions(ctx context.Context, questions ...*core.Question) ([]*core.Question, error)

	// DeleteQuestion removes a question record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	DeleteQuestion(ctx context.Context, id core.ID) error

	// GetQuestion retrieves a single question record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetQuestion(ctx context.Context, id core.ID) (*core.Question, error)

	// GetRecentQuestions retrieves question records ordered by AskedAt
	// descending. skip/limit paginate; limit <= 0 means no limit.
	// sessionID filters by session when non-empty.
	GetRecentQuestions(ctx context.Context, sessionID string, skip, limit int) ([]*core.Question, error)

	// GetQuestionsByDateRange retrieves records where start <= AskedAt < end,
	// ordered by AskedAt ascending.
	GetQuestionsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Question, error)
}

// SessionRepository provides operations for ideation sessions.
type SessionRepository interface {
	Repository

	// AddSessions adds ideation sessions to storage.
	// For sessions with ID=0, generates new IDs from sequence.
	AddSessions(ctx context.Context, sessions ...*core.IdeationSession) ([]*core.IdeationSession, error)

	// UpdateSessions updates existing sessions (e.g. enhanced ideas).
	// Returns ErrNotFound if any session doesn't exist.
	UpdateSessions(ctx context.Context, sessions ...*core.IdeationSession) ([]*core.IdeationSession, error)

	// DeleteSession removes a session by ID.
	// Returns ErrNotFound if the session doesn't exist.
	DeleteSession(ctx context.Context, id core.ID) error

	// GetSession retrieves a single session by ID.
	// Returns ErrNotFound if the session doesn't exist.
	GetSession(ctx context.Context, id core.ID) (*core.IdeationSession, error)

	// ListSessions retrieves sessions ordered by creation time descending.
	// skip/limit paginate; limit <= 0 means no limit.
	ListSessions(ctx context.Context, skip, limit int) ([]*core.IdeationSession, error)
}

// CheckpointRepository provides operations for processor checkpoints.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint for a processor type.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a processor type.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, processorType string) (*core.Checkpoint, error)
}
