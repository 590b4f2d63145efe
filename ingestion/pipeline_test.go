package ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tom2tomtomtom/playbookwiz/ai/mock"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage/badger"
)

func newTestPipeline(t *testing.T) (*Pipeline, *badger.Repositories) {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	t.Cleanup(func() { repos.Close() })

	pipeline, err := NewPipeline(repos.Documents, repos.Chunks, repos.Checkpoints, mock.NewMockProvider())
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}
	t.Cleanup(pipeline.Release)

	return pipeline, repos
}

func TestPipelineRequiresDependencies(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	if _, err := NewPipeline(nil, repos.Chunks, nil, mock.NewMockProvider()); !errors.Is(err, ErrDocumentRepositoryRequired) {
		t.Fatalf("Expected ErrDocumentRepositoryRequired, got %v", err)
	}
	if _, err := NewPipeline(repos.Documents, nil, nil, mock.NewMockProvider()); !errors.Is(err, ErrChunkRepositoryRequired) {
		t.Fatalf("Expected ErrChunkRepositoryRequired, got %v", err)
	}
	if _, err := NewPipeline(repos.Documents, repos.Chunks, nil, nil); !errors.Is(err, ErrAIProviderRequired) {
		t.Fatalf("Expected ErrAIProviderRequired, got %v", err)
	}
}

func TestProcessTextDocument(t *testing.T) {
	pipeline, repos := newTestPipeline(t)
	ctx := context.Background()

	data := []byte("Our brand voice is confident. The primary color is #0047AB. Use the logo with clear space.")
	added, err := repos.Documents.AddDocuments(ctx, &core.Document{
		Name:      "notes.txt",
		Kind:      core.FileKindText,
		Status:    core.StatusPending,
		SizeBytes: int64(len(data)),
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}
	docID := added[0].Id

	if err := pipeline.Process(ctx, docID, data); err != nil {
		t.Fatalf("Failed to process document: %v", err)
	}

	doc, err := repos.Documents.GetDocument(ctx, docID)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	if doc.Status != core.StatusCompleted {
		t.Fatalf("Expected completed status, got %v (error: %s)", doc.Status, doc.Error)
	}
	if doc.PageCount != 1 {
		t.Fatalf("Expected 1 page, got %d", doc.PageCount)
	}
	if doc.ChunkCount != 1 {
		t.Fatalf("Expected 1 chunk, got %d", doc.ChunkCount)
	}
	if len(doc.Brand.Colors) != 1 || doc.Brand.Colors[0] != "#0047AB" {
		t.Fatalf("Expected brand color extracted, got %v", doc.Brand.Colors)
	}
	if doc.ProcessedAt.IsZero() {
		t.Fatal("Expected ProcessedAt to be set")
	}

	chunks, err := repos.Chunks.GetDocumentChunks(ctx, docID)
	if err != nil {
		t.Fatalf("Failed to get chunks: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if len(chunks[0].Vector) == 0 {
		t.Fatal("Expected chunk to have an embedding")
	}

	// Vectors are normalized for dot-product similarity
	var sumSquares float32
	for _, v := range chunks[0].Vector {
		sumSquares += v * v
	}
	if sumSquares < 0.99 || sumSquares > 1.01 {
		t.Fatalf("Expected unit vector, got norm^2 = %f", sumSquares)
	}

	cp, err := repos.Checkpoints.LoadCheckpoint(ctx, "ingest")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if cp == nil || cp.LastId != docID {
		t.Fatalf("Expected checkpoint at %d, got %+v", docID, cp)
	}
}

func TestProcessFailureRecordsError(t *testing.T) {
	pipeline, repos := newTestPipeline(t)
	ctx := context.Background()

	// Claims PDF but has no valid structure
	data := []byte("%PDF-1.4 garbage")
	added, err := repos.Documents.AddDocuments(ctx, &core.Document{
		Name: "broken.pdf", Kind: core.FileKindPDF, Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	if err := pipeline.Process(ctx, added[0].Id, data); err == nil {
		t.Fatal("Expected processing error")
	}

	doc, err := repos.Documents.GetDocument(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	if doc.Status != core.StatusFailed {
		t.Fatalf("Expected failed status, got %v", doc.Status)
	}
	if doc.Error == "" {
		t.Fatal("Expected error to be recorded on document")
	}
}

func TestIngestAsync(t *testing.T) {
	pipeline, repos := newTestPipeline(t)
	ctx := context.Background()

	doc, err := pipeline.Ingest(ctx, "notes.txt", []byte("A short brand note."))
	if err != nil {
		t.Fatalf("Failed to ingest: %v", err)
	}
	if doc.Id == 0 {
		t.Fatal("Expected document ID assigned")
	}

	// Wait for the worker to finish
	deadline := time.Now().Add(5 * time.Second)
	for {
		current, err := repos.Documents.GetDocument(ctx, doc.Id)
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}
		if current.Status == core.StatusCompleted {
			break
		}
		if current.Status == core.StatusFailed {
			t.Fatalf("Processing failed: %s", current.Error)
		}
		if time.Now().After(deadline) {
			t.Fatalf("Timed out waiting for processing, status %v", current.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestIngestRejectsUnsupported(t *testing.T) {
	pipeline, _ := newTestPipeline(t)

	_, err := pipeline.Ingest(context.Background(), "blob.bin", []byte{0x00, 0x01, 0xFF, 0x00})
	if err == nil {
		t.Fatal("Expected error for unsupported file")
	}
}

func TestReprocessReembedsChunks(t *testing.T) {
	pipeline, repos := newTestPipeline(t)
	ctx := context.Background()

	data := []byte("Brand colors matter. Typography matters too.")
	added, err := repos.Documents.AddDocuments(ctx, &core.Document{
		Name: "notes.txt", Kind: core.FileKindText, Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}
	if err := pipeline.Process(ctx, added[0].Id, data); err != nil {
		t.Fatalf("Failed to process: %v", err)
	}

	// Clear vectors to simulate a model switch
	chunks, err := repos.Chunks.GetDocumentChunks(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get chunks: %v", err)
	}
	for _, chunk := range chunks {
		chunk.Vector = nil
	}
	if _, err := repos.Chunks.UpdateChunks(ctx, chunks...); err != nil {
		t.Fatalf("Failed to clear vectors: %v", err)
	}

	if err := pipeline.Reprocess(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to reprocess: %v", err)
	}

	chunks, err = repos.Chunks.GetDocumentChunks(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get chunks: %v", err)
	}
	for _, chunk := range chunks {
		if len(chunk.Vector) == 0 {
			t.Fatal("Expected reprocessed chunk to have an embedding")
		}
	}
}

func TestReprocessWithoutChunks(t *testing.T) {
	pipeline, repos := newTestPipeline(t)
	ctx := context.Background()

	added, err := repos.Documents.AddDocuments(ctx, &core.Document{
		Name: "pending.txt", Kind: core.FileKindText, Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	if err := pipeline.Reprocess(ctx, added[0].Id); !errors.Is(err, ErrDocumentNotReady) {
		t.Fatalf("Expected ErrDocumentNotReady, got %v", err)
	}
}
