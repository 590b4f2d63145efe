package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

func TestDocumentBasics(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	doc := &core.Document{
		Name:   "brand-guidelines.pdf",
		Kind:   core.FileKindPDF,
		Status: core.StatusPending,
	}

	added, err := repos.Documents.AddDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	if added[0].UploadedAt.IsZero() {
		t.Fatal("Expected UploadedAt to be set")
	}

	retrieved, err := repos.Documents.GetDocument(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	if retrieved.Name != "brand-guidelines.pdf" {
		t.Fatalf("Expected 'brand-guidelines.pdf', got '%s'", retrieved.Name)
	}
}

func TestDocumentUpdate(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	doc := &core.Document{
		Name:   "deck.pptx",
		Kind:   core.FileKindPPTX,
		Status: core.StatusPending,
	}

	added, err := repos.Documents.AddDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	added[0].Status = core.StatusCompleted
	added[0].PageCount = 14
	added[0].ProcessedAt = time.Now().UTC()

	_, err = repos.Documents.UpdateDocuments(ctx, added[0])
	if err != nil {
		t.Fatalf("Failed to update document: %v", err)
	}

	retrieved, err := repos.Documents.GetDocument(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	if retrieved.Status != core.StatusCompleted {
		t.Fatalf("Expected completed status, got %v", retrieved.Status)
	}
	if retrieved.PageCount != 14 {
		t.Fatalf("Expected 14 pages, got %d", retrieved.PageCount)
	}
}

func TestDocumentUpdateNotFound(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	doc := &core.Document{Id: 999, Name: "missing.pdf", Kind: core.FileKindPDF, Status: core.StatusPending}
	_, err = repos.Documents.UpdateDocuments(ctx, doc)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestDocumentDelete(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	doc := &core.Document{Name: "old.pdf", Kind: core.FileKindPDF, Status: core.StatusCompleted}
	added, err := repos.Documents.AddDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	if _, err := repos.Documents.DeleteDocument(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete document: %v", err)
	}

	_, err = repos.Documents.GetDocument(ctx, added[0].Id)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestDocumentDeleteRemovesChunks(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	doc := &core.Document{Name: "old.pdf", Kind: core.FileKindPDF, Status: core.StatusCompleted}
	added, err := repos.Documents.AddDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	chunks := []*core.Chunk{
		{DocumentId: added[0].Id, DocumentName: "old.pdf", PageNumber: 1, ChunkIndex: 0, Contents: "First passage.", Vector: []float32{1, 0, 0}},
		{DocumentId: added[0].Id, DocumentName: "old.pdf", PageNumber: 2, ChunkIndex: 1, Contents: "Second passage.", Vector: []float32{0, 1, 0}},
	}
	if _, err := repos.Chunks.AddChunks(ctx, chunks...); err != nil {
		t.Fatalf("Failed to add chunks: %v", err)
	}

	removed, err := repos.Documents.DeleteDocument(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to delete document: %v", err)
	}
	if removed != 2 {
		t.Fatalf("Expected 2 chunks removed, got %d", removed)
	}

	// Chunks are gone without any separate chunk deletion call
	remaining, err := repos.Chunks.GetDocumentChunks(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get chunks: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("Expected no chunks after document delete, got %d", len(remaining))
	}

	total, err := repos.Chunks.CountChunks(ctx)
	if err != nil {
		t.Fatalf("Failed to count chunks: %v", err)
	}
	if total != 0 {
		t.Fatalf("Expected 0 chunks total, got %d", total)
	}

	// Similarity search no longer serves passages from the document
	results, err := repos.Chunks.FindSimilar(ctx, []float32{1, 0, 0}, 0, 10)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected no search results after delete, got %d", len(results))
	}
}

func TestListDocuments(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	docs := []*core.Document{
		{Name: "a.pdf", Kind: core.FileKindPDF, Status: core.StatusCompleted, UploadedAt: now.Add(-3 * time.Hour)},
		{Name: "b.pptx", Kind: core.FileKindPPTX, Status: core.StatusFailed, UploadedAt: now.Add(-2 * time.Hour)},
		{Name: "c.pdf", Kind: core.FileKindPDF, Status: core.StatusCompleted, UploadedAt: now.Add(-1 * time.Hour)},
	}

	_, err = repos.Documents.AddDocuments(ctx, docs...)
	if err != nil {
		t.Fatalf("Failed to add documents: %v", err)
	}

	// Most recent first
	all, err := repos.Documents.ListDocuments(ctx, 0, 0, 0)
	if err != nil {
		t.Fatalf("Failed to list documents: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 documents, got %d", len(all))
	}
	if all[0].Name != "c.pdf" {
		t.Fatalf("Expected 'c.pdf' first, got '%s'", all[0].Name)
	}

	// Status filter
	completed, err := repos.Documents.ListDocuments(ctx, core.StatusCompleted, 0, 0)
	if err != nil {
		t.Fatalf("Failed to list completed documents: %v", err)
	}
	if len(completed) != 2 {
		t.Fatalf("Expected 2 completed documents, got %d", len(completed))
	}

	// Pagination
	page, err := repos.Documents.ListDocuments(ctx, 0, 1, 1)
	if err != nil {
		t.Fatalf("Failed to list page: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(page))
	}
	if page[0].Name != "b.pptx" {
		t.Fatalf("Expected 'b.pptx', got '%s'", page[0].Name)
	}
}

func TestCountDocuments(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	docs := []*core.Document{
		{Name: "a.pdf", Kind: core.FileKindPDF, Status: core.StatusCompleted},
		{Name: "b.pdf", Kind: core.FileKindPDF, Status: core.StatusFailed},
		{Name: "c.pdf", Kind: core.FileKindPDF, Status: core.StatusCompleted},
	}

	_, err = repos.Documents.AddDocuments(ctx, docs...)
	if err != nil {
		t.Fatalf("Failed to add documents: %v", err)
	}

	total, err := repos.Documents.CountDocuments(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to count documents: %v", err)
	}
	if total != 3 {
		t.Fatalf("Expected 3 documents, got %d", total)
	}

	failed, err := repos.Documents.CountDocuments(ctx, core.StatusFailed)
	if err != nil {
		t.Fatalf("Failed to count failed documents: %v", err)
	}
	if failed != 1 {
		t.Fatalf("Expected 1 failed document, got %d", failed)
	}
}
