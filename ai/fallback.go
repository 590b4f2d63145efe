package ai

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNoGenerators indicates that a fallback chain has no generators.
var ErrNoGenerators = errors.New("ai: no generators configured")

// FallbackGenerator tries a chain of generators in order, returning the
// first successful completion. The Name of the generator that produced
// the completion is exposed through LastProvider on the result.
type FallbackGenerator struct {
	chain  []Generator
	logger *slog.Logger
}

var _ Generator = (*FallbackGenerator)(nil)

// NewFallbackGenerator creates a generator that tries each generator in
// order until one succeeds.
func NewFallbackGenerator(chain ...Generator) *FallbackGenerator {
	return &FallbackGenerator{
		chain:  chain,
		logger: slog.Default().With("component", "ai-fallback"),
	}
}

// GenerateText tries each generator in the chain until one succeeds.
// Returns the last error if all generators fail.
func (f *FallbackGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	text, _, err := f.GenerateTextWithProvider(ctx, systemPrompt, userPrompt)
	return text, err
}

// GenerateTextWithProvider behaves like GenerateText and additionally
// returns the name of the provider that produced the completion.
func (f *FallbackGenerator) GenerateTextWithProvider(ctx context.Context, systemPrompt, userPrompt string) (string, string, error) {
	if len(f.chain) == 0 {
		return "", "", ErrNoGenerators
	}

	var lastErr error
	for _, g := range f.chain {
		text, err := g.GenerateText(ctx, systemPrompt, userPrompt)
		if err == nil {
			return text, g.Name(), nil
		}
		lastErr = err
		f.logger.Warn("generator failed, trying next provider", "provider", g.Name(), "err", err)
	}
	return "", "", lastErr
}

// Name returns the name of the first generator in the chain.
func (f *FallbackGenerator) Name() string {
	if len(f.chain) == 0 {
		return ""
	}
	return f.chain[0].Name()
}
