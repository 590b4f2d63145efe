package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tom2tomtomtom/playbookwiz/core"
)

// health is a liveness probe.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// healthDetailed reports per-component readiness. Storage is probed with
// a count query; a failure marks the whole response degraded.
func (s *Server) healthDetailed(c *gin.Context) {
	components := gin.H{
		"api":              "healthy",
		"vector_database":  "healthy",
		"embedding_model":  s.config.EmbeddingModel,
		"ideation_service": "healthy",
	}
	status := "healthy"
	httpStatus := http.StatusOK

	if _, err := s.config.Documents.CountDocuments(c.Request.Context(), 0); err != nil {
		components["vector_database"] = "unavailable"
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{"status": status, "components": components})
}

// stats reports corpus-level counters.
func (s *Server) stats(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := s.config.Documents.CountDocuments(ctx, 0)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "stats_failed", err)
		return
	}
	processed, err := s.config.Documents.CountDocuments(ctx, core.StatusCompleted)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "stats_failed", err)
		return
	}
	chunks, err := s.config.Chunks.CountChunks(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "stats_failed", err)
		return
	}

	respondOK(c, gin.H{
		"documents_total":        total,
		"documents_processed":    processed,
		"chunk_count":            chunks,
		"vector_database_status": "operational",
		"embedding_model":        s.config.EmbeddingModel,
	})
}
