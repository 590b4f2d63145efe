// Copyright 2025 PlaybookWiz Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package playbookwiz

import (
	"log/slog"

	"github.com/tom2tomtomtom/playbookwiz/ai"
	"github.com/tom2tomtomtom/playbookwiz/ai/anthropic"
	"github.com/tom2tomtomtom/playbookwiz/ai/openai"
	"github.com/tom2tomtomtom/playbookwiz/analysis"
	"github.com/tom2tomtomtom/playbookwiz/answer"
	"github.com/tom2tomtomtom/playbookwiz/ideation"
	"github.com/tom2tomtomtom/playbookwiz/ingestion"
	"github.com/tom2tomtomtom/playbookwiz/search"
	"github.com/tom2tomtomtom/playbookwiz/server"
	"github.com/tom2tomtomtom/playbookwiz/storage"
	"github.com/tom2tomtomtom/playbookwiz/storage/badger"
)

// Engine wires storage and AI services together and hands out the
// domain services built on top of them.
type Engine struct {
	repos     *badger.Repositories
	provider  ai.AIProvider
	generator *ai.FallbackGenerator
	aiConfig  *ai.Config
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the AI provider configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI
// provider construction. Mainly for tests and local development.
func WithProvider(provider ai.AIProvider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// NewEngine opens the badger store at filePath (empty for in-memory)
// and builds the AI provider stack.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	// Apply options
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	repos, err := badger.NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repos.Close()
			return nil, err
		}
	}

	generator, err := buildGeneratorChain(provider, options.aiConfig)
	if err != nil {
		provider.Close()
		repos.Close()
		return nil, err
	}

	return &Engine{
		repos:     repos,
		provider:  provider,
		generator: generator,
		aiConfig:  options.aiConfig,
		logger:    slog.Default(),
	}, nil
}

// buildGeneratorChain orders chat generators by provider preference.
// Anthropic joins the chain only when an API key is configured.
func buildGeneratorChain(provider ai.AIProvider, config *ai.Config) (*ai.FallbackGenerator, error) {
	chain := []ai.Generator{provider.Generator()}

	if config.AnthropicKey != "" {
		anthropicGen, err := anthropic.NewGenerator(config)
		if err != nil {
			return nil, err
		}
		if config.PreferredProvider == ai.ProviderAnthropic {
			chain = append([]ai.Generator{anthropicGen}, chain...)
		} else {
			chain = append(chain, anthropicGen)
		}
	}

	return ai.NewFallbackGenerator(chain...), nil
}

// Close releases the AI provider and all repositories.
func (e *Engine) Close() error {
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}
	return e.repos.Close()
}

func (e *Engine) DocumentRepository() storage.DocumentRepository {
	return e.repos.Documents
}

func (e *Engine) ChunkRepository() storage.ChunkRepository {
	return e.repos.Chunks
}

func (e *Engine) QuestionRepository() storage.QuestionRepository {
	return e.repos.Questions
}

func (e *Engine) SessionRepository() storage.SessionRepository {
	return e.repos.Sessions
}

func (e *Engine) CheckpointRepository() storage.CheckpointRepository {
	return e.repos.Checkpoints
}

// Generator returns the chat generator chain used for answers, ideation
// and dialogue.
func (e *Engine) Generator() *ai.FallbackGenerator {
	return e.generator
}

func (e *Engine) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(e.repos.Documents, e.repos.Chunks, e.repos.Checkpoints, e.provider, opts...)
}

func (e *Engine) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(e.repos.Chunks, e.provider, opts...)
}

func (e *Engine) NewAnswerer(searcher *search.Searcher, opts ...answer.Option) (*answer.Answerer, error) {
	return answer.NewAnswerer(searcher, e.repos.Questions, e.generator, opts...)
}

func (e *Engine) NewIdeationService(opts ...ideation.Option) (*ideation.Service, error) {
	return ideation.NewService(e.repos.Sessions, e.generator, opts...)
}

func (e *Engine) NewAnalysisService(opts ...analysis.Option) (*analysis.Service, error) {
	return analysis.NewService(e.repos.Chunks, opts...)
}

// NewServer assembles the HTTP API over freshly built services.
func (e *Engine) NewServer(opts ...server.Option) (*server.Server, error) {
	pipeline, err := e.NewIngestionPipeline()
	if err != nil {
		return nil, err
	}
	searcher, err := e.NewSearcher()
	if err != nil {
		return nil, err
	}
	answerer, err := e.NewAnswerer(searcher)
	if err != nil {
		return nil, err
	}
	ideationService, err := e.NewIdeationService()
	if err != nil {
		return nil, err
	}
	analysisService, err := e.NewAnalysisService()
	if err != nil {
		return nil, err
	}

	return server.New(server.Config{
		Documents:      e.repos.Documents,
		Chunks:         e.repos.Chunks,
		Pipeline:       pipeline,
		Searcher:       searcher,
		Answerer:       answerer,
		Ideation:       ideationService,
		Analysis:       analysisService,
		EmbeddingModel: e.aiConfig.EmbeddingModel,
	}, opts...)
}
