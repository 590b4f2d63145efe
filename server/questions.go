package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tom2tomtomtom/playbookwiz/answer"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// askRequest is the body of POST /questions/ask.
type askRequest struct {
	Question    string    `json:"question"`
	SessionID   string    `json:"session_id"`
	DocumentIDs []core.ID `json:"document_ids"`
}

// sourceView is the wire form of a source reference.
type sourceView struct {
	ChunkID      core.ID `json:"chunk_id"`
	DocumentID   core.ID `json:"document_id"`
	DocumentName string  `json:"document_name"`
	PageNumber   int     `json:"page_number"`
	Relevance    float32 `json:"relevance_score"`
	Excerpt      string  `json:"passage"`
}

func toSourceViews(sources []core.SourceRef) []sourceView {
	views := make([]sourceView, 0, len(sources))
	for _, src := range sources {
		views = append(views, sourceView{
			ChunkID:      src.ChunkId,
			DocumentID:   src.DocumentId,
			DocumentName: src.DocumentName,
			PageNumber:   src.PageNumber,
			Relevance:    src.Relevance,
			Excerpt:      src.Excerpt,
		})
	}
	return views
}

// askQuestion answers a question against the uploaded playbooks.
func (s *Server) askQuestion(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	resp, err := s.config.Answerer.Ask(c.Request.Context(), answer.Request{
		Query:       req.Question,
		SessionID:   req.SessionID,
		DocumentIDs: req.DocumentIDs,
	})
	if err != nil {
		if errors.Is(err, answer.ErrEmptyQuery) {
			respondError(c, http.StatusBadRequest, "empty_question", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "ask_failed", err)
		return
	}

	respondOK(c, gin.H{
		"response":        resp.Answer,
		"confidence":      resp.Confidence,
		"sources":         toSourceViews(resp.Sources),
		"processing_time": resp.ProcessingTime.Seconds(),
		"provider_used":   resp.Provider,
		"session_id":      resp.SessionID,
		"question_id":     resp.QuestionID,
	})
}

// questionView is the wire form of a recorded question.
type questionView struct {
	ID          core.ID      `json:"id"`
	SessionID   string       `json:"session_id"`
	Question    string       `json:"question"`
	Answer      string       `json:"answer"`
	Confidence  float32      `json:"confidence"`
	Provider    string       `json:"provider_used,omitempty"`
	Sources     []sourceView `json:"sources"`
	HasFeedback bool         `json:"has_feedback"`
	Helpful     bool         `json:"helpful,omitempty"`
	Feedback    string       `json:"feedback,omitempty"`
	AskedAt     time.Time    `json:"asked_at"`
}

// questionHistory lists answered questions, most recent first.
func (s *Server) questionHistory(c *gin.Context) {
	sessionID := c.Query("session_id")
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 0)

	questions, err := s.config.Answerer.History(c.Request.Context(), sessionID, skip, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "history_failed", err)
		return
	}

	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, questionView{
			ID:          q.Id,
			SessionID:   q.SessionId,
			Question:    q.Query,
			Answer:      q.Answer,
			Confidence:  q.Confidence,
			Provider:    q.Provider,
			Sources:     toSourceViews(q.Sources),
			HasFeedback: q.HasFeedback,
			Helpful:     q.Helpful,
			Feedback:    q.Feedback,
			AskedAt:     q.AskedAt,
		})
	}
	respondOK(c, gin.H{"questions": views, "count": len(views)})
}

// feedbackRequest is the body of POST /questions/feedback.
type feedbackRequest struct {
	QuestionID core.ID `json:"question_id"`
	Helpful    bool    `json:"helpful"`
	Feedback   string  `json:"feedback"`
}

// questionFeedback attaches feedback to an answered question.
func (s *Server) questionFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	updated, err := s.config.Answerer.RecordFeedback(c.Request.Context(), req.QuestionID, req.Helpful, req.Feedback)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "feedback_failed", err)
		return
	}

	respondOK(c, gin.H{"question_id": updated.Id, "has_feedback": updated.HasFeedback})
}

// questionSuggestions returns starter questions.
func (s *Server) questionSuggestions(c *gin.Context) {
	respondOK(c, gin.H{"suggestions": s.config.Answerer.SuggestedQuestions()})
}

// searchRequest is the body of POST /questions/search.
type searchRequest struct {
	Query       string    `json:"query"`
	MaxResults  int       `json:"max_results"`
	DocumentIDs []core.ID `json:"document_ids"`
}

// searchPassages returns raw retrieval results without generation.
func (s *Server) searchPassages(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	results, err := s.config.Searcher.FindSimilar(c.Request.Context(), req.Query, req.MaxResults, req.DocumentIDs...)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "search_failed", err)
		return
	}

	type resultView struct {
		ChunkID      core.ID `json:"chunk_id"`
		DocumentID   core.ID `json:"document_id"`
		DocumentName string  `json:"document_name"`
		PageNumber   int     `json:"page_number"`
		Relevance    float32 `json:"relevance_score"`
		Passage      string  `json:"passage"`
	}

	views := make([]resultView, 0, len(results))
	for _, result := range results {
		views = append(views, resultView{
			ChunkID:      result.Chunk.Id,
			DocumentID:   result.Chunk.DocumentId,
			DocumentName: result.Chunk.DocumentName,
			PageNumber:   result.Chunk.PageNumber,
			Relevance:    result.Score,
			Passage:      result.Chunk.Contents,
		})
	}
	respondOK(c, gin.H{"results": views, "count": len(views)})
}
