package analysis

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

// sentenceBoundary splits text on terminal punctuation followed by whitespace.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// opportunityKeywords flag sentences that read like market opportunities.
var opportunityKeywords = []string{"opportunity", "trend", "gap", "growth", "demand", "innovation"}

// maxRecommendations bounds the "Explore ..." list.
const maxRecommendations = 3

// titleWords is how many leading words become an opportunity title.
const titleWords = 5

// defaultAnalysisDepth is used when the caller does not name one.
const defaultAnalysisDepth = "basic"

// Opportunity is a market opportunity surfaced from document text.
type Opportunity struct {
	Type                     string // always "text_insight" for extracted sentences
	Title                    string
	Description              string
	PotentialImpact          string
	ImplementationComplexity string
	Timeline                 string
}

// OpportunityReport lists surfaced opportunities with strategic
// recommendations.
type OpportunityReport struct {
	Opportunities   []Opportunity
	Recommendations []string
	AnalysisDepth   string
	MarketContext   string
}

// IdentifyOpportunities scans document text for sentences mentioning
// opportunity-related keywords and surfaces them, deduplicated by title.
func (s *Service) IdentifyOpportunities(ctx context.Context, documentIDs []core.ID, marketContext, analysisDepth string) (*OpportunityReport, error) {
	if len(documentIDs) == 0 {
		return nil, ErrNoDocuments
	}
	if analysisDepth == "" {
		analysisDepth = defaultAnalysisDepth
	}

	combined, err := s.combinedText(ctx, documentIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	opportunities := []Opportunity{}

	for _, sentence := range sentenceBoundary.Split(combined, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" || !containsOpportunityKeyword(sentence) {
			continue
		}

		words := strings.Fields(sentence)
		n := titleWords
		if len(words) < n {
			n = len(words)
		}
		title := strings.Join(words[:n], " ")

		if seen[title] {
			continue
		}
		seen[title] = true

		opportunities = append(opportunities, Opportunity{
			Type:                     "text_insight",
			Title:                    title,
			Description:              sentence,
			PotentialImpact:          "medium",
			ImplementationComplexity: "medium",
			Timeline:                 "6-12 months",
		})
	}

	recommendations := make([]string, 0, maxRecommendations)
	for i, opp := range opportunities {
		if i >= maxRecommendations {
			break
		}
		recommendations = append(recommendations, fmt.Sprintf("Explore %s", opp.Title))
	}

	report := &OpportunityReport{
		Opportunities:   opportunities,
		Recommendations: recommendations,
		AnalysisDepth:   analysisDepth,
		MarketContext:   marketContext,
	}

	s.logger.Info("opportunity analysis completed",
		"documents", len(documentIDs),
		"opportunities", len(opportunities))
	return report, nil
}

// containsOpportunityKeyword reports whether a sentence mentions any
// opportunity keyword, case-insensitively.
func containsOpportunityKeyword(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, keyword := range opportunityKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
