package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// MockEmbedder is a deterministic ai.Embedder for tests. By default it
// hashes the input text into a unit vector, so identical passages always
// embed identically. Set the function fields to script other behavior.
type MockEmbedder struct {
	// EmbedTextFunc overrides EmbedText when set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc overrides EmbedTexts when set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

// mockVectorDim matches a typical sentence-embedding width.
const mockVectorDim = 384

// NewMockEmbedder creates an embedder with the default hashed-vector
// behavior. Returns the concrete type so tests can inspect call counts.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText embeds a single text.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return hashedVector(text, mockVectorDim), nil
}

// EmbedTexts embeds a batch of texts.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = hashedVector(text, mockVectorDim)
	}
	return vectors, nil
}

// CallCount returns how many embed calls were made.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// hashedVector expands an FNV hash of the text into a unit vector of the
// given dimension. The same text always yields the same vector.
func hashedVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	state := h.Sum32()

	vector := make([]float32, dim)
	var sumSquares float64
	for i := range vector {
		state = state*1664525 + 1013904223 // LCG step
		vector[i] = float32(state%1000) / 1000.0
		sumSquares += float64(vector[i]) * float64(vector[i])
	}

	if sumSquares > 0 {
		norm := float32(1.0 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= norm
		}
	}
	return vector
}
