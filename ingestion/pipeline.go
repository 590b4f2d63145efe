package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/tom2tomtomtom/playbookwiz/ai"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/document"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// checkpointType identifies this pipeline's checkpoint records.
const checkpointType = "ingest"

// Pipeline orchestrates document processing: extraction, chunking,
// embedding, and persistence. Processing runs asynchronously on a worker
// pool so uploads return immediately with a pending document.
type Pipeline struct {
	documentRepository   storage.DocumentRepository
	chunkRepository      storage.ChunkRepository
	checkpointRepository storage.CheckpointRepository
	embedder             ai.Embedder
	chunker              *Chunker
	pool                 *ants.Pool
	logger               *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithChunker sets a custom chunker.
func WithChunker(chunker *Chunker) Option {
	return func(p *Pipeline) error {
		if chunker != nil {
			p.chunker = chunker
		}
		return nil
	}
}

// NewPipeline creates a new document processing pipeline.
// checkpointRepository may be nil to disable checkpointing.
func NewPipeline(
	documentRepository storage.DocumentRepository,
	chunkRepository storage.ChunkRepository,
	checkpointRepository storage.CheckpointRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if documentRepository == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documentRepository:   documentRepository,
		chunkRepository:      chunkRepository,
		checkpointRepository: checkpointRepository,
		embedder:             provider.Embedder(),
		chunker:              NewChunker(),
		pool:                 pool,
		logger:               slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest registers an uploaded file and processes it asynchronously.
// The returned document is in StatusPending; its status advances as the
// worker extracts, chunks, and embeds the content. Errors during async
// processing are recorded on the document, not returned here.
func (p *Pipeline) Ingest(ctx context.Context, name string, data []byte) (*core.Document, error) {
	kind, err := document.DetectKind(name, data)
	if err != nil {
		return nil, err
	}

	doc := &core.Document{
		Name:      name,
		Kind:      kind,
		Status:    core.StatusPending,
		SizeBytes: int64(len(data)),
	}

	added, err := p.documentRepository.AddDocuments(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc = added[0]

	p.logger.Info("document registered", "id", doc.Id, "name", doc.Name, "kind", doc.Kind, "bytes", doc.SizeBytes)

	if err := p.pool.Submit(func() {
		if err := p.Process(context.Background(), doc.Id, data); err != nil {
			p.logger.Error("error processing document", "id", doc.Id, "err", err)
		}
	}); err != nil {
		return nil, err
	}

	return doc, nil
}

// Process extracts, chunks, and embeds a document synchronously.
// On failure the document is marked StatusFailed with the error recorded.
// Reprocessing a document replaces its previous chunks.
func (p *Pipeline) Process(ctx context.Context, documentID core.ID, data []byte) error {
	doc, err := p.documentRepository.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}

	doc.Status = core.StatusProcessing
	doc.Error = ""
	if _, err := p.documentRepository.UpdateDocuments(ctx, doc); err != nil {
		return err
	}

	if err := p.process(ctx, doc, data); err != nil {
		doc.Status = core.StatusFailed
		doc.Error = err.Error()
		if _, updateErr := p.documentRepository.UpdateDocuments(ctx, doc); updateErr != nil {
			p.logger.Error("error recording document failure", "id", doc.Id, "err", updateErr)
		}
		return err
	}

	return nil
}

// process runs the extraction and embedding steps for a document.
func (p *Pipeline) process(ctx context.Context, doc *core.Document, data []byte) error {
	started := time.Now()

	extraction, err := document.Extract(doc.Name, data)
	if err != nil {
		return err
	}

	chunks := p.chunker.ChunkPages(doc.Id, doc.Name, extraction.Pages)
	if len(chunks) == 0 {
		return fmt.Errorf("document %d produced no chunks", doc.Id)
	}

	if err := p.embedChunks(ctx, chunks); err != nil {
		return err
	}

	// Replace any chunks from a previous processing run
	if _, err := p.chunkRepository.DeleteDocumentChunks(ctx, doc.Id); err != nil {
		return err
	}
	if _, err := p.chunkRepository.AddChunks(ctx, chunks...); err != nil {
		return err
	}

	doc.Status = core.StatusCompleted
	doc.PageCount = extraction.PageCount()
	doc.ChunkCount = len(chunks)
	doc.Brand = extraction.Brand
	doc.ProcessedAt = time.Now().UTC()
	if _, err := p.documentRepository.UpdateDocuments(ctx, doc); err != nil {
		return err
	}

	p.saveCheckpoint(ctx, doc.Id)

	p.logger.Info("document processed",
		"id", doc.Id,
		"pages", doc.PageCount,
		"chunks", doc.ChunkCount,
		"elapsed", time.Since(started))
	return nil
}

// Reprocess regenerates embeddings for a document's existing chunks.
// Useful after switching embedding models.
func (p *Pipeline) Reprocess(ctx context.Context, documentID core.ID) error {
	doc, err := p.documentRepository.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}

	chunks, err := p.chunkRepository.GetDocumentChunks(ctx, documentID)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return fmt.Errorf("%w: document %d has no chunks", ErrDocumentNotReady, documentID)
	}

	doc.Status = core.StatusProcessing
	doc.Error = ""
	if _, err := p.documentRepository.UpdateDocuments(ctx, doc); err != nil {
		return err
	}

	if err := p.embedChunks(ctx, chunks); err != nil {
		doc.Status = core.StatusFailed
		doc.Error = err.Error()
		if _, updateErr := p.documentRepository.UpdateDocuments(ctx, doc); updateErr != nil {
			p.logger.Error("error recording document failure", "id", doc.Id, "err", updateErr)
		}
		return err
	}

	if _, err := p.chunkRepository.UpdateChunks(ctx, chunks...); err != nil {
		return err
	}

	doc.Status = core.StatusCompleted
	doc.ProcessedAt = time.Now().UTC()
	_, err = p.documentRepository.UpdateDocuments(ctx, doc)
	return err
}

// embedChunks generates normalized embeddings for all chunks in a batch.
func (p *Pipeline) embedChunks(ctx context.Context, chunks []*core.Chunk) error {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Contents
	}

	p.logger.Debug("generating embeddings for chunks", "chunks", len(texts))
	embeddings, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	if len(embeddings) != len(chunks) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(chunks), len(embeddings))
	}

	for i := range embeddings {
		chunks[i].Vector = normalizeVector(embeddings[i])
	}
	return nil
}

// saveCheckpoint records the last processed document ID.
func (p *Pipeline) saveCheckpoint(ctx context.Context, id core.ID) {
	if p.checkpointRepository == nil {
		return
	}
	err := p.checkpointRepository.SaveCheckpoint(ctx, &core.Checkpoint{
		ProcessorType: checkpointType,
		LastId:        id,
	})
	if err != nil {
		p.logger.Error("error saving ingest checkpoint", "err", err)
	}
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// normalizeVector scales a vector to unit length so dot products equal
// cosine similarity. Zero vectors are returned unchanged.
func normalizeVector(v []float32) []float32 {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	if sumSquares == 0 {
		return v
	}
	norm := float32(1.0 / math.Sqrt(sumSquares))
	normalized := make([]float32, len(v))
	for i, x := range v {
		normalized[i] = x * norm
	}
	return normalized
}
