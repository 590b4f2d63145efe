package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage/badger"
)

func newTestService(t *testing.T) (*Service, *badger.Repositories) {
	t.Helper()

	repos, err := badger.NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	t.Cleanup(func() { repos.Close() })

	service, err := NewService(repos.Chunks)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	return service, repos
}

func addChunk(t *testing.T, repos *badger.Repositories, docID core.ID, index int, contents string) {
	t.Helper()

	_, err := repos.Chunks.AddChunks(context.Background(), &core.Chunk{
		DocumentId:   docID,
		DocumentName: "playbook.pdf",
		PageNumber:   index + 1,
		ChunkIndex:   index,
		Contents:     contents,
	})
	if err != nil {
		t.Fatalf("Failed to add chunk: %v", err)
	}
}

func TestNewServiceRequiresChunkRepository(t *testing.T) {
	if _, err := NewService(nil); !errors.Is(err, ErrChunkRepositoryRequired) {
		t.Fatalf("Expected ErrChunkRepositoryRequired, got %v", err)
	}
}

func TestAnalyzeCompetitors(t *testing.T) {
	service, repos := newTestService(t)
	ctx := context.Background()

	addChunk(t, repos, 1, 0, "Unlike Acme Corp, our brand leads with warmth. Acme Corp relies on discounts.")
	addChunk(t, repos, 1, 1, "We track Globex closely in the enterprise segment.")

	report, err := service.AnalyzeCompetitors(ctx, []core.ID{1}, []string{"Acme Corp", "Globex", "Initech"}, "")
	if err != nil {
		t.Fatalf("Failed to analyze competitors: %v", err)
	}

	if report.Landscape != "2 of 3 competitors mentioned" {
		t.Fatalf("Expected landscape summary, got '%s'", report.Landscape)
	}
	if report.AnalysisType != "positioning" {
		t.Fatalf("Expected default analysis type, got '%s'", report.AnalysisType)
	}

	if len(report.Competitors) != 3 {
		t.Fatalf("Expected 3 competitor entries, got %d", len(report.Competitors))
	}
	acme := report.Competitors[0]
	if acme.Mentions != 2 {
		t.Fatalf("Expected 2 Acme Corp mentions, got %d", acme.Mentions)
	}
	if !strings.Contains(acme.Snippet, "Acme Corp") {
		t.Fatalf("Expected snippet around first mention, got '%s'", acme.Snippet)
	}

	initech := report.Competitors[2]
	if initech.Mentions != 0 || initech.Snippet != "" {
		t.Fatalf("Expected no Initech mentions, got %+v", initech)
	}

	if len(report.Recommendations) != 1 || report.Recommendations[0] != "Research Initech" {
		t.Fatalf("Expected research recommendation for Initech, got %v", report.Recommendations)
	}
}

func TestAnalyzeCompetitorsCaseInsensitive(t *testing.T) {
	service, repos := newTestService(t)

	addChunk(t, repos, 1, 0, "We compete with ACME corp and acme CORP in every region.")

	report, err := service.AnalyzeCompetitors(context.Background(), []core.ID{1}, []string{"Acme Corp"}, "messaging")
	if err != nil {
		t.Fatalf("Failed to analyze competitors: %v", err)
	}
	if report.Competitors[0].Mentions != 2 {
		t.Fatalf("Expected 2 case-insensitive mentions, got %d", report.Competitors[0].Mentions)
	}
	if report.AnalysisType != "messaging" {
		t.Fatalf("Expected provided analysis type, got '%s'", report.AnalysisType)
	}
}

func TestAnalyzeCompetitorsSnippetValidUTF8(t *testing.T) {
	service, repos := newTestService(t)

	// Multibyte text ahead of the mention so the snippet window opens
	// mid-rune unless clamped to a boundary
	addChunk(t, repos, 1, 0, strings.Repeat("é", 40)+" Acme Corp is gaining ground.")

	report, err := service.AnalyzeCompetitors(context.Background(), []core.ID{1}, []string{"Acme Corp"}, "")
	if err != nil {
		t.Fatalf("Failed to analyze competitors: %v", err)
	}

	snippet := report.Competitors[0].Snippet
	if !utf8.ValidString(snippet) {
		t.Fatalf("Expected valid UTF-8 snippet, got %q", snippet)
	}
	if !strings.Contains(snippet, "Acme Corp") {
		t.Fatalf("Expected snippet around mention, got %q", snippet)
	}
}

func TestAnalyzeCompetitorsValidation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.AnalyzeCompetitors(ctx, nil, []string{"Acme"}, ""); !errors.Is(err, ErrNoDocuments) {
		t.Fatalf("Expected ErrNoDocuments, got %v", err)
	}
	if _, err := service.AnalyzeCompetitors(ctx, []core.ID{1}, nil, ""); !errors.Is(err, ErrNoCompetitors) {
		t.Fatalf("Expected ErrNoCompetitors, got %v", err)
	}
}

func TestIdentifyOpportunities(t *testing.T) {
	service, repos := newTestService(t)

	addChunk(t, repos, 1, 0,
		"The market shows a clear growth trend in sustainable packaging. "+
			"Our logo uses blue. "+
			"There is a gap in premium offerings for younger consumers. "+
			"Demand for personalization keeps rising every quarter. "+
			"Innovation in retail formats opens new channels.")

	report, err := service.IdentifyOpportunities(context.Background(), []core.ID{1}, "EU market", "")
	if err != nil {
		t.Fatalf("Failed to identify opportunities: %v", err)
	}

	if len(report.Opportunities) != 4 {
		t.Fatalf("Expected 4 opportunities, got %d", len(report.Opportunities))
	}

	first := report.Opportunities[0]
	if first.Title != "The market shows a clear" {
		t.Fatalf("Expected 5-word title, got '%s'", first.Title)
	}
	if first.Type != "text_insight" || first.Timeline != "6-12 months" {
		t.Fatalf("Expected default opportunity fields, got %+v", first)
	}

	if len(report.Recommendations) != 3 {
		t.Fatalf("Expected 3 recommendations, got %d", len(report.Recommendations))
	}
	if !strings.HasPrefix(report.Recommendations[0], "Explore ") {
		t.Fatalf("Expected Explore recommendation, got '%s'", report.Recommendations[0])
	}

	if report.MarketContext != "EU market" || report.AnalysisDepth != "basic" {
		t.Fatalf("Expected context and default depth, got %+v", report)
	}
}

func TestIdentifyOpportunitiesDeduplicates(t *testing.T) {
	service, repos := newTestService(t)

	// Same leading 5 words in two sentences
	addChunk(t, repos, 1, 0,
		"There is a growth opportunity in Asia. There is a growth opportunity in Europe too.")

	report, err := service.IdentifyOpportunities(context.Background(), []core.ID{1}, "", "deep")
	if err != nil {
		t.Fatalf("Failed to identify opportunities: %v", err)
	}
	if len(report.Opportunities) != 1 {
		t.Fatalf("Expected deduplicated opportunities, got %d", len(report.Opportunities))
	}
	if report.AnalysisDepth != "deep" {
		t.Fatalf("Expected provided depth, got '%s'", report.AnalysisDepth)
	}
}

func TestIdentifyOpportunitiesNoMatches(t *testing.T) {
	service, repos := newTestService(t)

	addChunk(t, repos, 1, 0, "The logo must keep its clear space. Use blue for headers.")

	report, err := service.IdentifyOpportunities(context.Background(), []core.ID{1}, "", "")
	if err != nil {
		t.Fatalf("Failed to identify opportunities: %v", err)
	}
	if len(report.Opportunities) != 0 || len(report.Recommendations) != 0 {
		t.Fatalf("Expected empty report, got %+v", report)
	}
}

func TestIdentifyOpportunitiesRequiresDocuments(t *testing.T) {
	service, _ := newTestService(t)

	if _, err := service.IdentifyOpportunities(context.Background(), nil, "", ""); !errors.Is(err, ErrNoDocuments) {
		t.Fatalf("Expected ErrNoDocuments, got %v", err)
	}
}
