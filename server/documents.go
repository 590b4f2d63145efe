package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/ingestion"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// maxUploadBytes caps uploads at 100 MB.
const maxUploadBytes = 100 << 20

// allowedExtensions lists the upload formats accepted over HTTP.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".ppt":  true,
	".pptx": true,
}

// documentView is the wire form of a document.
type documentView struct {
	ID         core.ID           `json:"id"`
	Name       string            `json:"name"`
	Kind       string            `json:"kind"`
	Status     string            `json:"status"`
	Error      string            `json:"error,omitempty"`
	SizeBytes  int64             `json:"size_bytes"`
	PageCount  int               `json:"page_count"`
	ChunkCount int               `json:"chunk_count"`
	Colors     []string          `json:"brand_colors,omitempty"`
	Keywords   map[string]int    `json:"brand_keywords,omitempty"`
	UploadedAt time.Time         `json:"uploaded_at"`
	Processed  *time.Time        `json:"processed_at,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

func toDocumentView(doc *core.Document) documentView {
	view := documentView{
		ID:         doc.Id,
		Name:       doc.Name,
		Kind:       doc.Kind.String(),
		Status:     doc.Status.String(),
		Error:      doc.Error,
		SizeBytes:  doc.SizeBytes,
		PageCount:  doc.PageCount,
		ChunkCount: doc.ChunkCount,
		Colors:     doc.Brand.Colors,
		Keywords:   doc.Brand.KeywordCounts,
		UploadedAt: doc.UploadedAt,
		Metadata:   doc.Metadata,
	}
	if !doc.ProcessedAt.IsZero() {
		processed := doc.ProcessedAt
		view.Processed = &processed
	}
	return view
}

// uploadDocument receives a multipart playbook file and queues it for
// async processing. Returns the pending document.
func (s *Server) uploadDocument(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing_file", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		respondError(c, http.StatusBadRequest, "unsupported_type",
			fmt.Errorf("unsupported file type %q. Please upload PDF, PPT, or PPTX files", ext))
		return
	}
	if file.Size > maxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "file_too_large",
			fmt.Errorf("file exceeds %d byte limit", maxUploadBytes))
		return
	}

	opened, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "read_failed", err)
		return
	}
	defer opened.Close()

	data, err := io.ReadAll(opened)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "read_failed", err)
		return
	}

	doc, err := s.config.Pipeline.Ingest(c.Request.Context(), file.Filename, data)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ingest_failed", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"document": toDocumentView(doc),
		"message":  "Document uploaded; processing started",
	})
}

// listDocuments returns documents, newest first, with optional status
// filtering and pagination.
func (s *Server) listDocuments(c *gin.Context) {
	status := core.ParseDocumentStatus(c.Query("status"))
	if c.Query("status") != "" && status == 0 {
		respondError(c, http.StatusBadRequest, "invalid_status",
			fmt.Errorf("unknown status %q", c.Query("status")))
		return
	}
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 0)

	docs, err := s.config.Documents.ListDocuments(c.Request.Context(), status, skip, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}

	views := make([]documentView, 0, len(docs))
	for _, doc := range docs {
		views = append(views, toDocumentView(doc))
	}
	respondOK(c, gin.H{"documents": views, "count": len(views)})
}

// getDocument returns one document by ID.
func (s *Server) getDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	doc, err := s.config.Documents.GetDocument(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}
	respondOK(c, toDocumentView(doc))
}

// chunkView is the wire form of a document chunk.
type chunkView struct {
	ID         core.ID `json:"id"`
	PageNumber int     `json:"page_number"`
	ChunkIndex int     `json:"chunk_index"`
	Contents   string  `json:"contents"`
	TokenCount int     `json:"token_count"`
}

// getDocumentContent returns a document's chunks, optionally filtered
// by page number.
func (s *Server) getDocumentContent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := s.config.Documents.GetDocument(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}

	chunks, err := s.config.Chunks.GetDocumentChunks(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}

	page := intQuery(c, "page", 0)
	views := make([]chunkView, 0, len(chunks))
	for _, chunk := range chunks {
		if page > 0 && chunk.PageNumber != page {
			continue
		}
		views = append(views, chunkView{
			ID:         chunk.Id,
			PageNumber: chunk.PageNumber,
			ChunkIndex: chunk.ChunkIndex,
			Contents:   chunk.Contents,
			TokenCount: chunk.TokenCount,
		})
	}
	respondOK(c, gin.H{"document_id": id, "chunks": views, "count": len(views)})
}

// deleteDocument removes a document and its chunks.
func (s *Server) deleteDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := s.config.Documents.DeleteDocument(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "delete_failed", err)
		return
	}

	respondOK(c, gin.H{"deleted": id, "chunks_removed": removed})
}

// reprocessDocument regenerates embeddings for a processed document.
func (s *Server) reprocessDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.config.Pipeline.Reprocess(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respondError(c, http.StatusNotFound, "not_found", err)
		case errors.Is(err, ingestion.ErrDocumentNotReady):
			respondError(c, http.StatusConflict, "not_ready", err)
		default:
			respondError(c, http.StatusInternalServerError, "reprocess_failed", err)
		}
		return
	}

	respondOK(c, gin.H{"reprocessed": id})
}

// pathID parses the :id path parameter, responding 400 on failure.
func pathID(c *gin.Context) (core.ID, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid id %q", raw))
		return 0, false
	}
	return core.ID(id), true
}

// intQuery parses an integer query parameter with a default.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
