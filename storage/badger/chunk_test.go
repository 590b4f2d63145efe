package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

func TestChunkBasics(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	chunk := &core.Chunk{
		DocumentId:   7,
		DocumentName: "brand-guidelines.pdf",
		PageNumber:   1,
		ChunkIndex:   0,
		Contents:     "Our primary color is cobalt blue.",
		TokenCount:   6,
	}

	added, err := repos.Chunks.AddChunks(ctx, chunk)
	if err != nil {
		t.Fatalf("Failed to add chunk: %v", err)
	}

	if added[0].Id != core.ChunkID(7, 0) {
		t.Fatalf("Expected content-based ID %d, got %d", core.ChunkID(7, 0), added[0].Id)
	}

	retrieved, err := repos.Chunks.GetChunk(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get chunk: %v", err)
	}

	if retrieved.Contents != chunk.Contents {
		t.Fatalf("Expected '%s', got '%s'", chunk.Contents, retrieved.Contents)
	}
}

func TestGetDocumentChunksOrder(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	// Insert out of order; retrieval must be in chunk index order
	chunks := []*core.Chunk{
		{DocumentId: 3, PageNumber: 2, ChunkIndex: 2, Contents: "third"},
		{DocumentId: 3, PageNumber: 1, ChunkIndex: 0, Contents: "first"},
		{DocumentId: 3, PageNumber: 1, ChunkIndex: 1, Contents: "second"},
		{DocumentId: 4, PageNumber: 1, ChunkIndex: 0, Contents: "other document"},
	}

	_, err = repos.Chunks.AddChunks(ctx, chunks...)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	results, err := repos.Chunks.GetDocumentChunks(ctx, 3)
	if err != nil {
		t.Fatalf("Failed to get document chunks: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(results))
	}

	expected := []string{"first", "second", "third"}
	for i, want := range expected {
		if results[i].Contents != want {
			t.Fatalf("Chunk %d: expected '%s', got '%s'", i, want, results[i].Contents)
		}
	}
}

func TestDeleteDocumentChunks(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	chunks := []*core.Chunk{
		{DocumentId: 5, PageNumber: 1, ChunkIndex: 0, Contents: "one"},
		{DocumentId: 5, PageNumber: 1, ChunkIndex: 1, Contents: "two"},
		{DocumentId: 6, PageNumber: 1, ChunkIndex: 0, Contents: "keep"},
	}

	_, err = repos.Chunks.AddChunks(ctx, chunks...)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	removed, err := repos.Chunks.DeleteDocumentChunks(ctx, 5)
	if err != nil {
		t.Fatalf("Failed to delete document chunks: %v", err)
	}
	if removed != 2 {
		t.Fatalf("Expected 2 chunks removed, got %d", removed)
	}

	_, err = repos.Chunks.GetChunk(ctx, core.ChunkID(5, 0))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	// Other document untouched
	kept, err := repos.Chunks.GetChunk(ctx, core.ChunkID(6, 0))
	if err != nil {
		t.Fatalf("Failed to get kept chunk: %v", err)
	}
	if kept.Contents != "keep" {
		t.Fatalf("Expected 'keep', got '%s'", kept.Contents)
	}

	count, err := repos.Chunks.CountChunks(ctx)
	if err != nil {
		t.Fatalf("Failed to count chunks: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 chunk, got %d", count)
	}
}

func TestFindSimilarChunks(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	chunks := []*core.Chunk{
		{DocumentId: 1, PageNumber: 1, ChunkIndex: 0, Contents: "exact", Vector: []float32{1, 0, 0}},
		{DocumentId: 1, PageNumber: 1, ChunkIndex: 1, Contents: "close", Vector: []float32{0.9, 0.1, 0}},
		{DocumentId: 2, PageNumber: 1, ChunkIndex: 0, Contents: "orthogonal", Vector: []float32{0, 1, 0}},
		{DocumentId: 2, PageNumber: 1, ChunkIndex: 1, Contents: "no vector"},
	}

	_, err = repos.Chunks.AddChunks(ctx, chunks...)
	if err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	query := []float32{1, 0, 0}

	results, err := repos.Chunks.FindSimilar(ctx, query, 0.5, 10)
	if err != nil {
		t.Fatalf("Failed to find similar chunks: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Chunk.Contents != "exact" {
		t.Fatalf("Expected 'exact' first, got '%s'", results[0].Chunk.Contents)
	}
	if results[0].Score < results[1].Score {
		t.Fatal("Expected results sorted by score descending")
	}

	// Restrict to document 2; nothing there passes the threshold
	filtered, err := repos.Chunks.FindSimilar(ctx, query, 0.5, 10, 2)
	if err != nil {
		t.Fatalf("Failed to find similar chunks with filter: %v", err)
	}
	if len(filtered) != 0 {
		t.Fatalf("Expected 0 results for document 2, got %d", len(filtered))
	}

	// Limit applies after sorting
	limited, err := repos.Chunks.FindSimilar(ctx, query, 0.0, 1)
	if err != nil {
		t.Fatalf("Failed to find similar chunks with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(limited))
	}
	if limited[0].Chunk.Contents != "exact" {
		t.Fatalf("Expected 'exact', got '%s'", limited[0].Chunk.Contents)
	}
}
