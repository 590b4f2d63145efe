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


package ai

import (
	"errors"
	"os"
	"strings"
)

// Provider name constants used for provider preference and attribution.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderMock      = "mock"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "https://api.openai.com/v1", or a local OpenAI-compatible server
	EmbeddingHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "text-embedding-3-small"
	EmbeddingModel string

	// OpenAIModel is the chat model used for answer and idea generation.
	// Example: "gpt-4", "gpt-4o-mini"
	OpenAIModel string

	// AnthropicModel is the chat model used when falling back to Anthropic.
	// Example: "claude-3-sonnet-20240229"
	AnthropicModel string

	// OpenAIKey is the API key for OpenAI. Use "none" for local
	// OpenAI-compatible services that don't require authentication.
	OpenAIKey string

	// AnthropicKey is the API key for Anthropic. Leave empty to disable
	// the Anthropic fallback.
	AnthropicKey string

	// PreferredProvider selects which chat provider is tried first.
	// Must be ProviderOpenAI or ProviderAnthropic. Default: ProviderOpenAI
	PreferredProvider string

	// Temperature controls generation randomness (0.0-2.0). Default: 0.7
	Temperature float64

	// MaxTokens caps generated response length. Default: 1000
	MaxTokens int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithOpenAIModel sets the OpenAI chat model identifier.
func WithOpenAIModel(model string) ConfigOption {
	return func(c *Config) {
		c.OpenAIModel = model
	}
}

// WithAnthropicModel sets the Anthropic chat model identifier.
func WithAnthropicModel(model string) ConfigOption {
	return func(c *Config) {
		c.AnthropicModel = model
	}
}

// WithOpenAIKey sets the OpenAI API key.
func WithOpenAIKey(key string) ConfigOption {
	return func(c *Config) {
		c.OpenAIKey = key
	}
}

// WithAnthropicKey sets the Anthropic API key.
func WithAnthropicKey(key string) ConfigOption {
	return func(c *Config) {
		c.AnthropicKey = key
	}
}

// WithPreferredProvider sets which chat provider is tried first.
func WithPreferredProvider(provider string) ConfigOption {
	return func(c *Config) {
		c.PreferredProvider = provider
	}
}

// WithTemperature sets the generation temperature.
func WithTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

// WithMaxTokens sets the generated response length cap.
func WithMaxTokens(maxTokens int) ConfigOption {
	return func(c *Config) {
		c.MaxTokens = maxTokens
	}
}

// DefaultConfig returns a Config with sensible defaults for the hosted
// OpenAI API with Anthropic fallback disabled.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingHost:     "https://api.openai.com/v1",
		EmbeddingModel:    "text-embedding-3-small",
		OpenAIModel:       "gpt-4",
		AnthropicModel:    "claude-3-sonnet-20240229",
		OpenAIKey:         "none",
		PreferredProvider: ProviderOpenAI,
		Temperature:       0.7,
		MaxTokens:         1000,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//   cfg := NewConfig(
//       WithEmbeddingHost("http://localhost:11434/v1"),
//       WithEmbeddingModel("text-embedding-3-small"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// NewConfigFromEnv creates a Config from environment variables, falling back
// to defaults for anything unset. Recognized variables: OPENAI_API_KEY,
// ANTHROPIC_API_KEY, OPENAI_MODEL, ANTHROPIC_MODEL, EMBEDDING_HOST,
// EMBEDDING_MODEL, AI_PROVIDER.
func NewConfigFromEnv(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := os.Getenv("ANTHROPIC_MODEL"); v != "" {
		cfg.AnthropicModel = v
	}
	if v := os.Getenv("EMBEDDING_HOST"); v != "" {
		cfg.EmbeddingHost = v
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		cfg.EmbeddingModel = v
	}
	if v := os.Getenv("AI_PROVIDER"); v != "" {
		cfg.PreferredProvider = v
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the embedding host if missing,
// which is required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		// Remove trailing slash if present before adding /v1
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
		c.EmbeddingHost = c.EmbeddingHost + "/v1"
	}
	c.PreferredProvider = strings.ToLower(strings.TrimSpace(c.PreferredProvider))
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.OpenAIModel == "" {
		return errors.New("ai config: OpenAIModel is required")
	}
	if c.PreferredProvider != ProviderOpenAI && c.PreferredProvider != ProviderAnthropic {
		return errors.New("ai config: PreferredProvider must be openai or anthropic")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return errors.New("ai config: Temperature must be between 0 and 2")
	}
	if c.MaxTokens < 1 {
		return errors.New("ai config: MaxTokens must be positive")
	}
	return nil
}
