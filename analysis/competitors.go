package analysis

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tom2tomtomtom/playbookwiz/core"
)

// snippetRadius is how many characters of context surround the first
// mention of a competitor.
const snippetRadius = 50

// defaultAnalysisType is used when the caller does not name one.
const defaultAnalysisType = "positioning"

// CompetitorMention reports how often a competitor appears in the
// analyzed documents.
type CompetitorMention struct {
	Name     string
	Mentions int
	Snippet  string // context around the first mention, empty when absent
}

// CompetitorReport summarizes competitor presence across documents.
type CompetitorReport struct {
	Landscape       string // e.g. "2 of 3 competitors mentioned"
	AnalysisType    string
	Recommendations []string
	Competitors     []CompetitorMention
}

// AnalyzeCompetitors counts case-insensitive competitor mentions in the
// combined text of the given documents. Unmentioned competitors produce
// research recommendations.
func (s *Service) AnalyzeCompetitors(ctx context.Context, documentIDs []core.ID, competitors []string, analysisType string) (*CompetitorReport, error) {
	if len(documentIDs) == 0 {
		return nil, ErrNoDocuments
	}
	if len(competitors) == 0 {
		return nil, ErrNoCompetitors
	}
	if analysisType == "" {
		analysisType = defaultAnalysisType
	}

	combined, err := s.combinedText(ctx, documentIDs)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(combined)

	mentions := make([]CompetitorMention, 0, len(competitors))
	mentioned := 0
	recommendations := []string{}

	for _, name := range competitors {
		nameLower := strings.ToLower(name)
		count := strings.Count(lower, nameLower)

		var snippet string
		if count > 0 {
			mentioned++
			idx := strings.Index(lower, nameLower)
			start := idx - snippetRadius
			if start < 0 {
				start = 0
			}
			end := idx + snippetRadius
			if end > len(combined) {
				end = len(combined)
			}
			// Keep the window on rune boundaries
			for start > 0 && !utf8.RuneStart(combined[start]) {
				start--
			}
			for end < len(combined) && !utf8.RuneStart(combined[end]) {
				end++
			}
			snippet = combined[start:end]
		} else {
			recommendations = append(recommendations, fmt.Sprintf("Research %s", name))
		}

		mentions = append(mentions, CompetitorMention{
			Name:     name,
			Mentions: count,
			Snippet:  snippet,
		})
	}

	report := &CompetitorReport{
		Landscape:       fmt.Sprintf("%d of %d competitors mentioned", mentioned, len(competitors)),
		AnalysisType:    analysisType,
		Recommendations: recommendations,
		Competitors:     mentions,
	}

	s.logger.Info("competitor analysis completed",
		"documents", len(documentIDs),
		"competitors", len(competitors),
		"mentioned", mentioned)
	return report, nil
}
