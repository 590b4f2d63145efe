package mock

import (
	"context"
	"fmt"

	"github.com/tom2tomtomtom/playbookwiz/ai"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields or a scripted
// queue of responses.
type MockGenerator struct {
	// GenerateTextFunc is called by GenerateText if set.
	// If nil, returns queued responses or a default echo.
	GenerateTextFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Responses is a queue of scripted responses returned in order.
	// When exhausted, the default echo behavior resumes.
	Responses []string

	// Err, if set, is returned by every GenerateText call.
	Err error

	callCount int
}

var _ ai.Generator = (*MockGenerator)(nil)

// NewMockGenerator creates a mock generator with default echo behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateText returns scripted or default deterministic output.
func (m *MockGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.callCount++

	if m.Err != nil {
		return "", m.Err
	}

	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, systemPrompt, userPrompt)
	}

	if len(m.Responses) > 0 {
		response := m.Responses[0]
		m.Responses = m.Responses[1:]
		return response, nil
	}

	// Default: echo a deterministic summary of the prompt
	return fmt.Sprintf("mock response to: %s", userPrompt), nil
}

// Name identifies the backing provider.
func (m *MockGenerator) Name() string {
	return ai.ProviderMock
}

// CallCount returns the number of times GenerateText was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count, queue, and custom functions.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.GenerateTextFunc = nil
	m.Responses = nil
	m.Err = nil
}
