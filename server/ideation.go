package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/ideation"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// brandContextLimit caps how much document text is fed into ideation
// prompts as brand context.
const brandContextLimit = 4000

// ideaView is the wire form of a generated idea.
type ideaView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Persona     string `json:"persona,omitempty"`
}

// sessionView is the wire form of an ideation session.
type sessionView struct {
	ID        core.ID    `json:"id"`
	Topic     string     `json:"topic"`
	Personas  []string   `json:"personas,omitempty"`
	Ideas     []ideaView `json:"ideas"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toSessionView(session *core.IdeationSession) sessionView {
	ideas := make([]ideaView, 0, len(session.Ideas))
	for _, idea := range session.Ideas {
		ideas = append(ideas, ideaView{
			Title:       idea.Title,
			Description: idea.Description,
			Persona:     idea.Persona,
		})
	}
	return sessionView{
		ID:        session.Id,
		Topic:     session.Topic,
		Personas:  session.Personas,
		Ideas:     ideas,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

// brandContext assembles document text for ideation prompts, truncated
// to brandContextLimit characters.
func (s *Server) brandContext(c *gin.Context, documentIDs []core.ID) (string, error) {
	if len(documentIDs) == 0 {
		return "", nil
	}
	var parts []byte
	for _, docID := range documentIDs {
		chunks, err := s.config.Chunks.GetDocumentChunks(c.Request.Context(), docID)
		if err != nil {
			return "", err
		}
		for _, chunk := range chunks {
			if len(parts) > 0 {
				parts = append(parts, ' ')
			}
			parts = append(parts, chunk.Contents...)
			if len(parts) >= brandContextLimit {
				return string(parts[:brandContextLimit]), nil
			}
		}
	}
	return string(parts), nil
}

// generateIdeasRequest is the body of POST /ideation/generate.
type generateIdeasRequest struct {
	Topic       string    `json:"topic"`
	Personas    []string  `json:"personas"`
	DocumentIDs []core.ID `json:"document_ids"`
	Count       int       `json:"count"`
}

// generateIdeas runs an ideation session and returns it.
func (s *Server) generateIdeas(c *gin.Context) {
	var req generateIdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	brandContext, err := s.brandContext(c, req.DocumentIDs)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "context_failed", err)
		return
	}

	session, err := s.config.Ideation.GenerateIdeas(c.Request.Context(), ideation.GenerateRequest{
		Topic:    req.Topic,
		Personas: req.Personas,
		Context:  brandContext,
		Count:    req.Count,
	})
	if err != nil {
		switch {
		case errors.Is(err, ideation.ErrEmptyTopic), errors.Is(err, ideation.ErrUnknownPersona):
			respondError(c, http.StatusBadRequest, "invalid_request", err)
		default:
			respondError(c, http.StatusInternalServerError, "generate_failed", err)
		}
		return
	}

	respondOK(c, gin.H{"session": toSessionView(session)})
}

// enhanceIdeasRequest is the body of POST /ideation/enhance.
type enhanceIdeasRequest struct {
	SessionID       core.ID `json:"session_id"`
	EnhancementType string  `json:"enhancement_type"`
}

func (s *Server) enhanceIdeas(c *gin.Context) {
	var req enhanceIdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	session, err := s.config.Ideation.EnhanceIdeas(c.Request.Context(), req.SessionID, req.EnhancementType)
	if err != nil {
		switch {
		case errors.Is(err, ideation.ErrInvalidEnhancement):
			respondError(c, http.StatusBadRequest, "invalid_request", err)
		case errors.Is(err, storage.ErrNotFound):
			respondError(c, http.StatusNotFound, "not_found", err)
		default:
			respondError(c, http.StatusInternalServerError, "enhance_failed", err)
		}
		return
	}

	respondOK(c, gin.H{"session": toSessionView(session)})
}

// evaluateIdeasRequest is the body of POST /ideation/evaluate.
type evaluateIdeasRequest struct {
	SessionID core.ID  `json:"session_id"`
	Criteria  []string `json:"criteria"`
}

func (s *Server) evaluateIdeas(c *gin.Context) {
	var req evaluateIdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	evaluations, err := s.config.Ideation.EvaluateIdeas(c.Request.Context(), req.SessionID, req.Criteria)
	if err != nil {
		switch {
		case errors.Is(err, ideation.ErrInvalidCriterion):
			respondError(c, http.StatusBadRequest, "invalid_request", err)
		case errors.Is(err, storage.ErrNotFound):
			respondError(c, http.StatusNotFound, "not_found", err)
		default:
			respondError(c, http.StatusInternalServerError, "evaluate_failed", err)
		}
		return
	}

	respondOK(c, gin.H{"evaluations": evaluations})
}

// refineIdeasRequest is the body of POST /ideation/refine.
type refineIdeasRequest struct {
	SessionID     core.ID `json:"session_id"`
	SelectedIdeas []int   `json:"selected_ideas"`
	Direction     string  `json:"refinement_direction"`
}

func (s *Server) refineIdeas(c *gin.Context) {
	var req refineIdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	session, err := s.config.Ideation.RefineIdeas(c.Request.Context(), req.SessionID, req.SelectedIdeas, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, ideation.ErrInvalidRefinement), errors.Is(err, ideation.ErrNoIdeasSelected):
			respondError(c, http.StatusBadRequest, "invalid_request", err)
		case errors.Is(err, storage.ErrNotFound):
			respondError(c, http.StatusNotFound, "not_found", err)
		default:
			respondError(c, http.StatusInternalServerError, "refine_failed", err)
		}
		return
	}

	respondOK(c, gin.H{"session": toSessionView(session)})
}

// dialogueRequest is the body of POST /ideation/dialogue.
type dialogueRequest struct {
	Topic       string    `json:"topic"`
	Personas    []string  `json:"personas"`
	DocumentIDs []core.ID `json:"document_ids"`
}

func (s *Server) generateDialogue(c *gin.Context) {
	var req dialogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	brandContext, err := s.brandContext(c, req.DocumentIDs)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "context_failed", err)
		return
	}

	dialogue, err := s.config.Ideation.GenerateDialogue(c.Request.Context(), req.Topic, req.Personas, brandContext)
	if err != nil {
		switch {
		case errors.Is(err, ideation.ErrEmptyTopic), errors.Is(err, ideation.ErrUnknownPersona):
			respondError(c, http.StatusBadRequest, "invalid_request", err)
		default:
			respondError(c, http.StatusInternalServerError, "dialogue_failed", err)
		}
		return
	}

	respondOK(c, gin.H{"dialogue": dialogue, "topic": req.Topic})
}

func (s *Server) listIdeationSessions(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 0)

	sessions, err := s.config.Ideation.ListSessions(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}

	views := make([]sessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, toSessionView(session))
	}
	respondOK(c, gin.H{"sessions": views, "count": len(views)})
}

func (s *Server) getIdeationSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	session, err := s.config.Ideation.GetSession(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "get_failed", err)
		return
	}
	respondOK(c, gin.H{"session": toSessionView(session)})
}

func (s *Server) deleteIdeationSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.config.Ideation.DeleteSession(c.Request.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "delete_failed", err)
		return
	}
	respondOK(c, gin.H{"deleted": id})
}
