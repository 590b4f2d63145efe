package search

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/tom2tomtomtom/playbookwiz/ai"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// DefaultMaxHits is the number of passages returned when the caller does
// not ask for a specific count.
const DefaultMaxHits = 5

// defaultMinSimilarity filters out passages with no meaningful relation
// to the query before ranking.
const defaultMinSimilarity = 0.0

// Searcher provides semantic passage retrieval over document chunks.
type Searcher struct {
	chunkRepository storage.ChunkRepository
	embedder        ai.Embedder
	minSimilarity   float32
	logger          *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMinSimilarity sets the similarity threshold below which passages
// are discarded before ranking.
func WithMinSimilarity(threshold float32) Option {
	return func(s *Searcher) error {
		s.minSimilarity = threshold
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	chunkRepository storage.ChunkRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		chunkRepository: chunkRepository,
		embedder:        provider.Embedder(),
		minSimilarity:   defaultMinSimilarity,
		logger:          slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindSimilar searches for passages relevant to the query.
// When documentIDs is non-empty, retrieval is scoped to those documents.
// Returns up to maxHits results, ranked by relevance score.
func (s *Searcher) FindSimilar(ctx context.Context, query string, maxHits int, documentIDs ...core.ID) ([]*core.SearchResult, error) {
	return s.FindSimilarWithMonitor(ctx, query, maxHits, nil, documentIDs...)
}

// FindSimilarWithMonitor searches for passages relevant to the query with monitoring.
// The monitor receives callbacks at each stage of the search process.
// Returns up to maxHits results, ranked by relevance score.
func (s *Searcher) FindSimilarWithMonitor(ctx context.Context, query string, maxHits int, monitor SearchMonitor, documentIDs ...core.ID) ([]*core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if maxHits <= 0 {
		maxHits = DefaultMaxHits
	}

	monitor.Start(query)

	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	embedding = normalizeVector(embedding)
	monitor.AfterEmbedding(len(embedding))

	// Fetch all candidates above the threshold; the verbatim boost below
	// can reorder results, so truncation happens after scoring.
	matches, err := s.chunkRepository.FindSimilar(ctx, embedding, s.minSimilarity, 0, documentIDs...)
	if err != nil {
		s.logger.Error("error querying for similar chunks", "err", err)
		return nil, err
	}
	monitor.AfterSimilaritySearch(matches)

	if len(matches) == 0 {
		return []*core.SearchResult{}, nil
	}

	results := make([]*core.SearchResult, 0, len(matches))
	for _, match := range matches {
		if match == nil || match.Chunk == nil {
			continue
		}

		// Cosine similarity clamped to [0,1]
		score := match.Score
		if score < 0 {
			score = 0
		} else if score > 1 {
			score = 1
		}

		// Apply verbatim match boost
		if containsAllQueryWords(match.Chunk.Contents, query) {
			score += 0.3
			monitor.VerbatimHit(match.Chunk)
		}

		results = append(results, &core.SearchResult{
			Chunk: match.Chunk,
			Score: score,
		})
	}

	// Sort by score descending
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxHits {
		results = results[:maxHits]
	}
	monitor.Finish(results)

	return results, nil
}

// normalizeVector scales the query embedding to unit length so dot
// products against stored chunk vectors equal cosine similarity.
func normalizeVector(v []float32) []float32 {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	if sumSquares == 0 {
		return v
	}
	norm := float32(1.0 / math.Sqrt(sumSquares))
	normalized := make([]float32, len(v))
	for i, x := range v {
		normalized[i] = x * norm
	}
	return normalized
}
