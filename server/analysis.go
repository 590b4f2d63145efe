package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tom2tomtomtom/playbookwiz/analysis"
	"github.com/tom2tomtomtom/playbookwiz/core"
)

// competitorsRequest is the body of POST /analysis/competitors.
type competitorsRequest struct {
	DocumentIDs  []core.ID `json:"document_ids"`
	Competitors  []string  `json:"competitors"`
	AnalysisType string    `json:"analysis_type"`
}

// competitorMentionView is the wire form of a competitor mention.
type competitorMentionView struct {
	Name     string `json:"name"`
	Mentions int    `json:"mentions"`
	Snippet  string `json:"snippet,omitempty"`
}

func (s *Server) analyzeCompetitors(c *gin.Context) {
	var req competitorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	report, err := s.config.Analysis.AnalyzeCompetitors(c.Request.Context(), req.DocumentIDs, req.Competitors, req.AnalysisType)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrNoDocuments), errors.Is(err, analysis.ErrNoCompetitors):
			respondError(c, http.StatusBadRequest, "invalid_request", err)
		default:
			respondError(c, http.StatusInternalServerError, "analysis_failed", err)
		}
		return
	}

	mentions := make([]competitorMentionView, 0, len(report.Competitors))
	for _, mention := range report.Competitors {
		mentions = append(mentions, competitorMentionView{
			Name:     mention.Name,
			Mentions: mention.Mentions,
			Snippet:  mention.Snippet,
		})
	}

	respondOK(c, gin.H{
		"competitive_landscape": report.Landscape,
		"analysis_type":         report.AnalysisType,
		"recommendations":       report.Recommendations,
		"competitors":           mentions,
	})
}

// opportunitiesRequest is the body of POST /analysis/opportunities.
type opportunitiesRequest struct {
	DocumentIDs   []core.ID `json:"document_ids"`
	MarketContext string    `json:"market_context"`
	AnalysisDepth string    `json:"analysis_depth"`
}

// opportunityView is the wire form of a surfaced opportunity.
type opportunityView struct {
	Type                     string `json:"type"`
	Title                    string `json:"title"`
	Description              string `json:"description"`
	PotentialImpact          string `json:"potential_impact"`
	ImplementationComplexity string `json:"implementation_complexity"`
	Timeline                 string `json:"timeline"`
}

func (s *Server) identifyOpportunities(c *gin.Context) {
	var req opportunitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	report, err := s.config.Analysis.IdentifyOpportunities(c.Request.Context(), req.DocumentIDs, req.MarketContext, req.AnalysisDepth)
	if err != nil {
		if errors.Is(err, analysis.ErrNoDocuments) {
			respondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "analysis_failed", err)
		return
	}

	opportunities := make([]opportunityView, 0, len(report.Opportunities))
	for _, opp := range report.Opportunities {
		opportunities = append(opportunities, opportunityView{
			Type:                     opp.Type,
			Title:                    opp.Title,
			Description:              opp.Description,
			PotentialImpact:          opp.PotentialImpact,
			ImplementationComplexity: opp.ImplementationComplexity,
			Timeline:                 opp.Timeline,
		})
	}

	respondOK(c, gin.H{
		"opportunities":   opportunities,
		"recommendations": report.Recommendations,
		"analysis_depth":  report.AnalysisDepth,
		"market_context":  report.MarketContext,
	})
}
