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

package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/tom2tomtomtom/playbookwiz/analysis"
	"github.com/tom2tomtomtom/playbookwiz/answer"
	"github.com/tom2tomtomtom/playbookwiz/ideation"
	"github.com/tom2tomtomtom/playbookwiz/ingestion"
	"github.com/tom2tomtomtom/playbookwiz/search"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// Config bundles the services the HTTP server exposes.
type Config struct {
	Documents storage.DocumentRepository
	Chunks    storage.ChunkRepository
	Pipeline  *ingestion.Pipeline
	Searcher  *search.Searcher
	Answerer  *answer.Answerer
	Ideation  *ideation.Service
	Analysis  *analysis.Service

	// EmbeddingModel is reported by the stats endpoint.
	EmbeddingModel string
}

// Server is the PlaybookWiz HTTP API.
type Server struct {
	config Config
	engine *gin.Engine
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// New creates the HTTP server and registers all routes.
func New(config Config, opts ...Option) (*Server, error) {
	if config.Documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if config.Chunks == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if config.Pipeline == nil {
		return nil, ErrPipelineRequired
	}
	if config.Searcher == nil {
		return nil, ErrSearcherRequired
	}
	if config.Answerer == nil {
		return nil, ErrAnswererRequired
	}
	if config.Ideation == nil {
		return nil, ErrIdeationServiceRequired
	}
	if config.Analysis == nil {
		return nil, ErrAnalysisServiceRequired
	}

	s := &Server{
		config: config,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(s.logger))
	s.engine = engine
	s.registerRoutes()

	return s, nil
}

// registerRoutes wires handlers to paths.
func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.health)
	s.engine.GET("/health/detailed", s.healthDetailed)
	s.engine.GET("/stats", s.stats)

	api := s.engine.Group("/api/v1")

	documents := api.Group("/documents")
	documents.POST("/upload", s.uploadDocument)
	documents.GET("", s.listDocuments)
	documents.GET("/:id", s.getDocument)
	documents.GET("/:id/content", s.getDocumentContent)
	documents.DELETE("/:id", s.deleteDocument)
	documents.POST("/:id/reprocess", s.reprocessDocument)

	questions := api.Group("/questions")
	questions.POST("/ask", s.askQuestion)
	questions.GET("/history", s.questionHistory)
	questions.POST("/feedback", s.questionFeedback)
	questions.GET("/suggestions", s.questionSuggestions)
	questions.POST("/search", s.searchPassages)

	ideationGroup := api.Group("/ideation")
	ideationGroup.POST("/generate", s.generateIdeas)
	ideationGroup.POST("/enhance", s.enhanceIdeas)
	ideationGroup.POST("/evaluate", s.evaluateIdeas)
	ideationGroup.POST("/refine", s.refineIdeas)
	ideationGroup.POST("/dialogue", s.generateDialogue)
	ideationGroup.GET("/sessions", s.listIdeationSessions)
	ideationGroup.GET("/sessions/:id", s.getIdeationSession)
	ideationGroup.DELETE("/sessions/:id", s.deleteIdeationSession)

	analysisGroup := api.Group("/analysis")
	analysisGroup.POST("/competitors", s.analyzeCompetitors)
	analysisGroup.POST("/opportunities", s.identifyOpportunities)
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}

// Run starts the server on the given address and blocks.
func (s *Server) Run(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.engine.Run(addr)
}
