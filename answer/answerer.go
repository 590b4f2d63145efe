package answer

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tom2tomtomtom/playbookwiz/ai"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/search"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

const (
	// defaultMaxSources is the number of passages retrieved per question.
	defaultMaxSources = 5

	// excerptLength bounds the source excerpt stored with an answer.
	excerptLength = 200

	// maxConfidence caps the reported answer confidence.
	maxConfidence = 0.95

	// confidenceScale stretches average relevance into a confidence score.
	confidenceScale = 1.2

	// floorConfidence is reported when sources exist but the provider
	// returned an empty completion.
	floorConfidence = 0.1
)

// Request describes a question to answer.
type Request struct {
	Query       string
	SessionID   string    // assigned a fresh UUID when empty
	DocumentIDs []core.ID // scope retrieval to these documents when non-empty
}

// Response is a generated answer with source attribution.
type Response struct {
	Answer         string
	Confidence     float32
	Sources        []core.SourceRef
	Query          string
	Provider       string
	SessionID      string
	QuestionID     core.ID
	ProcessingTime time.Duration
}

// providerGenerator is implemented by generators that report which
// provider in a fallback chain produced the completion.
type providerGenerator interface {
	GenerateTextWithProvider(ctx context.Context, systemPrompt, userPrompt string) (string, string, error)
}

// Answerer generates confidence-scored answers from retrieved playbook
// passages and records the exchange for history and feedback.
type Answerer struct {
	searcher           *search.Searcher
	questionRepository storage.QuestionRepository
	generator          ai.Generator
	maxSources         int
	logger             *slog.Logger
}

// Option configures an Answerer.
type Option func(*Answerer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Answerer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithMaxSources sets how many passages are retrieved per question.
// Default is 5.
func WithMaxSources(n int) Option {
	return func(a *Answerer) error {
		if n > 0 {
			a.maxSources = n
		}
		return nil
	}
}

// NewAnswerer creates a new answerer.
// The generator is typically an ai.FallbackGenerator chaining the
// preferred provider with a backup.
func NewAnswerer(
	searcher *search.Searcher,
	questionRepository storage.QuestionRepository,
	generator ai.Generator,
	opts ...Option,
) (*Answerer, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if questionRepository == nil {
		return nil, ErrQuestionRepositoryRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	a := &Answerer{
		searcher:           searcher,
		questionRepository: questionRepository,
		generator:          generator,
		maxSources:         defaultMaxSources,
		logger:             slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Ask retrieves relevant passages, generates an answer and records the
// exchange. When retrieval finds nothing, a canned answer with zero
// confidence is returned without calling a provider.
func (a *Answerer) Ask(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}

	started := time.Now()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	results, err := a.searcher.FindSimilar(ctx, req.Query, a.maxSources, req.DocumentIDs...)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		resp := &Response{
			Answer:         noInformationAnswer,
			Confidence:     0,
			Sources:        []core.SourceRef{},
			Query:          req.Query,
			SessionID:      sessionID,
			ProcessingTime: time.Since(started),
		}
		if err := a.record(ctx, resp); err != nil {
			return nil, err
		}
		return resp, nil
	}

	sources := buildSources(results)

	text, provider, err := a.generate(ctx, systemPrompt, buildUserPrompt(req.Query, results))
	if err != nil {
		a.logger.Error("error generating answer", "query", req.Query, "err", err)
		return nil, err
	}

	resp := &Response{
		Answer:         text,
		Confidence:     scoreConfidence(results, text),
		Sources:        sources,
		Query:          req.Query,
		Provider:       provider,
		SessionID:      sessionID,
		ProcessingTime: time.Since(started),
	}
	if err := a.record(ctx, resp); err != nil {
		return nil, err
	}

	a.logger.Info("question answered",
		"session", resp.SessionID,
		"provider", resp.Provider,
		"confidence", resp.Confidence,
		"sources", len(resp.Sources),
		"elapsed", resp.ProcessingTime)
	return resp, nil
}

// RecordFeedback attaches user feedback to an answered question.
func (a *Answerer) RecordFeedback(ctx context.Context, questionID core.ID, helpful bool, feedback string) (*core.Question, error) {
	question, err := a.questionRepository.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	question.HasFeedback = true
	question.Helpful = helpful
	question.Feedback = feedback

	updated, err := a.questionRepository.UpdateQuestions(ctx, question)
	if err != nil {
		return nil, err
	}
	return updated[0], nil
}

// History lists answered questions, most recent first.
// sessionID filters by session when non-empty.
func (a *Answerer) History(ctx context.Context, sessionID string, skip, limit int) ([]*core.Question, error) {
	return a.questionRepository.GetRecentQuestions(ctx, sessionID, skip, limit)
}

// SuggestedQuestions returns starter questions for an empty chat.
func (a *Answerer) SuggestedQuestions() []string {
	suggestions := make([]string, len(defaultSuggestions))
	copy(suggestions, defaultSuggestions)
	return suggestions
}

// generate calls the generator, preferring the provider-reporting path
// when available.
func (a *Answerer) generate(ctx context.Context, system, user string) (string, string, error) {
	if pg, ok := a.generator.(providerGenerator); ok {
		return pg.GenerateTextWithProvider(ctx, system, user)
	}
	text, err := a.generator.GenerateText(ctx, system, user)
	return text, a.generator.Name(), err
}

// record persists the exchange and fills in the question ID.
func (a *Answerer) record(ctx context.Context, resp *Response) error {
	added, err := a.questionRepository.AddQuestions(ctx, &core.Question{
		SessionId:  resp.SessionID,
		Query:      resp.Query,
		Answer:     resp.Answer,
		Confidence: resp.Confidence,
		Provider:   resp.Provider,
		Sources:    resp.Sources,
	})
	if err != nil {
		return err
	}
	resp.QuestionID = added[0].Id
	return nil
}

// buildSources converts search results into stored source references
// with bounded excerpts.
func buildSources(results []*core.SearchResult) []core.SourceRef {
	sources := make([]core.SourceRef, 0, len(results))
	for _, result := range results {
		excerpt := result.Chunk.Contents
		if len(excerpt) > excerptLength {
			cut := excerptLength
			// Never split a multibyte rune at the cut point
			for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
				cut--
			}
			excerpt = excerpt[:cut] + "..."
		}
		sources = append(sources, core.SourceRef{
			ChunkId:      result.Chunk.Id,
			DocumentId:   result.Chunk.DocumentId,
			DocumentName: result.Chunk.DocumentName,
			PageNumber:   result.Chunk.PageNumber,
			Relevance:    result.Score,
			Excerpt:      excerpt,
		})
	}
	return sources
}

// scoreConfidence derives answer confidence from average passage
// relevance, capped at 0.95. An empty completion drops to the floor.
func scoreConfidence(results []*core.SearchResult, answer string) float32 {
	if strings.TrimSpace(answer) == "" {
		return floorConfidence
	}

	var sum float32
	for _, result := range results {
		sum += result.Score
	}
	avg := sum / float32(len(results))

	confidence := avg * confidenceScale
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return confidence
}
