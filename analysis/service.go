package analysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// Service analyzes stored document text for competitor presence and
// market opportunities.
type Service struct {
	chunkRepository storage.ChunkRepository
	logger          *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a new analysis service.
func NewService(chunkRepository storage.ChunkRepository, opts ...Option) (*Service, error) {
	if chunkRepository == nil {
		return nil, ErrChunkRepositoryRequired
	}

	s := &Service{
		chunkRepository: chunkRepository,
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

// combinedText joins the chunk contents of the given documents in chunk
// order, separated by spaces.
func (s *Service) combinedText(ctx context.Context, documentIDs []core.ID) (string, error) {
	var b strings.Builder
	for _, docID := range documentIDs {
		chunks, err := s.chunkRepository.GetDocumentChunks(ctx, docID)
		if err != nil {
			return "", err
		}
		for _, chunk := range chunks {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(chunk.Contents)
		}
	}
	return b.String(), nil
}
